// Package audit implements the resource audit log using PostgreSQL.
// It provides append-only operations for audit records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/resource-registry/internal/adapter/postgres"
	"github.com/heartmarshall/resource-registry/internal/domain"
	"github.com/heartmarshall/resource-registry/pkg/idx"
)

const table = "resource_audit_log"

var columns = []string{"id", "resource_key", "actor_id", "action", "changes", "created_at"}

type row struct {
	ID          string    `db:"id"`
	ResourceKey string    `db:"resource_key"`
	ActorID     uuid.UUID `db:"actor_id"`
	Action      string    `db:"action"`
	Changes     []byte    `db:"changes"`
	CreatedAt   time.Time `db:"created_at"`
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	ids *idx.Generator
	now func() time.Time
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, ids: idx.NewGenerator(), now: time.Now}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
// A missing ID is minted as a ULID; a zero CreatedAt becomes now.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if !record.Action.IsValid() {
		return domain.AuditRecord{}, fmt.Errorf("audit_record action %q: %w", record.Action, domain.ErrValidation)
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.now().UTC().Truncate(time.Microsecond)
	}
	if record.ID == "" {
		record.ID = r.ids.NewAt(record.CreatedAt)
	}
	if record.Changes == nil {
		record.Changes = map[string]any{}
	}

	changesJSON, err := json.Marshal(record.Changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(record.ID, record.ResourceKey, record.ActorID, string(record.Action), changesJSON, record.CreatedAt).
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build audit insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}

	return record, nil
}

// Log creates an audit record without returning it.
// Satisfies the resource service's auditLogger.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// DeleteOlderThan removes records created before cutoff and returns how
// many were removed.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build audit delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete old audit_records: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByResource returns the history of a resource key, newest first,
// limited to `limit` records.
func (r *Repo) ListByResource(ctx context.Context, key string, limit int) ([]domain.AuditRecord, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"resource_key": key}).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit select: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get audit_records by resource: %w", err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, rw := range rows {
		rec, err := toDomainAuditRecord(rw)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}

	return records, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainAuditRecord(rw row) (domain.AuditRecord, error) {
	record := domain.AuditRecord{
		ID:          rw.ID,
		ResourceKey: rw.ResourceKey,
		ActorID:     rw.ActorID,
		Action:      domain.AuditAction(rw.Action),
		CreatedAt:   rw.CreatedAt,
		Changes:     map[string]any{},
	}

	if len(rw.Changes) > 0 {
		if err := json.Unmarshal(rw.Changes, &record.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rw.ID, err)
		}
	}

	return record, nil
}
