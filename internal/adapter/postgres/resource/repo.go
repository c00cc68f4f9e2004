// Package resource implements the Resource repository using PostgreSQL.
// Statements are built with squirrel and rows are scanned with scany.
package resource

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/resource-registry/internal/adapter/postgres"
	"github.com/heartmarshall/resource-registry/internal/domain"
)

const (
	table  = "resources"
	entity = "resource"
)

var columns = []string{
	"key", "name", "description", "owner_id", "management_group_id",
	"created_at", "created_by", "updated_at", "updated_by",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// sortColumns maps sortable wire field names to columns.
var sortColumns = map[string]string{
	"key":               "key",
	"name":              "name",
	"ownerId":           "owner_id",
	"managementGroupId": "management_group_id",
	"createdAt":         "created_at",
	"updatedAt":         "updated_at",
}

type row struct {
	Key               string     `db:"key"`
	Name              string     `db:"name"`
	Description       *string    `db:"description"`
	OwnerID           uuid.UUID  `db:"owner_id"`
	ManagementGroupID *uuid.UUID `db:"management_group_id"`
	CreatedAt         time.Time  `db:"created_at"`
	CreatedBy         uuid.UUID  `db:"created_by"`
	UpdatedAt         time.Time  `db:"updated_at"`
	UpdatedBy         uuid.UUID  `db:"updated_by"`
}

func (r row) toDomain() domain.Resource {
	return domain.Resource{
		Key: r.Key,
		ResourceData: domain.ResourceData{
			Name:              r.Name,
			Description:       r.Description,
			OwnerID:           r.OwnerID,
			ManagementGroupID: r.ManagementGroupID,
		},
		Audit: domain.Audit{
			CreatedAt: r.CreatedAt,
			CreatedBy: r.CreatedBy,
			UpdatedAt: r.UpdatedAt,
			UpdatedBy: r.UpdatedBy,
		},
	}
}

// Repo provides resource persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new resource repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByKey returns a resource without locking it.
// Returns domain.ErrNotFound if the key does not exist.
func (r *Repo) GetByKey(ctx context.Context, key string) (*domain.Resource, error) {
	return r.get(ctx, key, false)
}

// GetByKeyForUpdate returns a resource and holds an exclusive row lock on it
// until the surrounding transaction ends. Must be called inside RunInTx.
// Returns domain.ErrNotFound if the key does not exist.
func (r *Repo) GetByKeyForUpdate(ctx context.Context, key string) (*domain.Resource, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("resource %s: lock requested outside a transaction", key)
	}
	return r.get(ctx, key, true)
}

func (r *Repo) get(ctx context.Context, key string, lock bool) (*domain.Resource, error) {
	qb := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"key": key})
	if lock {
		qb = qb.Suffix("FOR UPDATE")
	}

	return r.scanOne(ctx, qb, key)
}

// List returns one page of resources matching the filter. The filter must
// already be normalized. It fetches one extra row to decide whether a next
// page exists.
func (r *Repo) List(ctx context.Context, f domain.ListFilter) (*domain.Page[domain.Resource], error) {
	offset, err := decodeCursor(f.PageToken)
	if err != nil {
		return nil, err
	}

	orderBy, err := orderClauses(f.Sort)
	if err != nil {
		return nil, err
	}

	qb := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy(orderBy...).
		Limit(uint64(f.PageSize) + 1)

	if f.OwnerID != nil {
		qb = qb.Where(squirrel.Eq{"owner_id": *f.OwnerID})
	}
	if f.ManagementGroupID != nil {
		qb = qb.Where(squirrel.Eq{"management_group_id": *f.ManagementGroupID})
	}
	if f.Name != nil {
		qb = qb.Where(squirrel.Eq{"name": *f.Name})
	}
	if offset > 0 {
		qb = qb.Offset(uint64(offset))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, "list")
	}

	page := &domain.Page[domain.Resource]{Data: make([]domain.Resource, 0, min(len(rows), f.PageSize))}
	for i, rw := range rows {
		if i == f.PageSize {
			next := encodeCursor(offset + f.PageSize)
			page.Next = &next
			break
		}
		page.Data = append(page.Data, rw.toDomain())
	}

	return page, nil
}

func orderClauses(sorts []domain.Sort) ([]string, error) {
	out := make([]string, 0, len(sorts)+1)
	hasKey := false
	for _, s := range sorts {
		col, ok := sortColumns[s.Field]
		if !ok {
			return nil, domain.NewValidationError("sort", fmt.Sprintf("cannot sort by %q", s.Field))
		}
		dir := domain.SortAsc
		if s.Direction == domain.SortDesc {
			dir = domain.SortDesc
		}
		out = append(out, col+" "+dir.String())
		if col == "key" {
			hasKey = true
		}
	}
	// key is unique, so it makes page boundaries deterministic.
	if !hasKey {
		out = append(out, "key ASC")
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a resource with the audit stamps already set by the caller.
// Returns domain.ErrAlreadyExists if the key is taken.
func (r *Repo) Create(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
	qb := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			res.Key, res.Name, res.Description, res.OwnerID, res.ManagementGroupID,
			res.CreatedAt, res.CreatedBy, res.UpdatedAt, res.UpdatedBy,
		).
		Suffix(returning)

	return r.scanOne(ctx, qb, res.Key)
}

// Update writes every mutable column and the modification stamps.
// Creation stamps are never written. Returns domain.ErrNotFound if the key
// does not exist.
func (r *Repo) Update(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
	qb := postgres.Builder().
		Update(table).
		Set("name", res.Name).
		Set("description", res.Description).
		Set("owner_id", res.OwnerID).
		Set("management_group_id", res.ManagementGroupID).
		Set("updated_at", res.UpdatedAt).
		Set("updated_by", res.UpdatedBy).
		Where(squirrel.Eq{"key": res.Key}).
		Suffix(returning)

	return r.scanOne(ctx, qb, res.Key)
}

// Delete removes a resource. Returns domain.ErrNotFound if the key does not exist.
func (r *Repo) Delete(ctx context.Context, key string) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, key)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, key)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) scanOne(ctx context.Context, qb squirrel.Sqlizer, key string) (*domain.Resource, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, entity, key)
	}

	res := rw.toDomain()
	return &res, nil
}
