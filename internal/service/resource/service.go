package resource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/resource-registry/internal/domain"
)

type resourceRepo interface {
	GetByKey(ctx context.Context, key string) (*domain.Resource, error)
	GetByKeyForUpdate(ctx context.Context, key string) (*domain.Resource, error)
	Create(ctx context.Context, res *domain.Resource) (*domain.Resource, error)
	Update(ctx context.Context, res *domain.Resource) (*domain.Resource, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, filter domain.ListFilter) (*domain.Page[domain.Resource], error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	ListByResource(ctx context.Context, key string, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const DefaultHistoryLimit = 50

// Config holds the listing limits of the service.
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
	HistoryLimit    int
}

// Service provides resource reads and locked writes.
type Service struct {
	resources resourceRepo
	audit     auditLogger
	tx        txManager
	log       *slog.Logger
	cfg       Config
	clock     func() time.Time
}

// NewService creates a new Resource service.
func NewService(
	log *slog.Logger,
	resources resourceRepo,
	audit auditLogger,
	tx txManager,
	cfg Config,
) *Service {
	if cfg.DefaultPageSize < 1 {
		cfg.DefaultPageSize = domain.DefaultPageSize
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = max(domain.MaxPageSize, cfg.DefaultPageSize)
	}
	if cfg.HistoryLimit < 1 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}

	return &Service{
		resources: resources,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "resource"),
		cfg:       cfg,
		clock:     time.Now,
	}
}

// now returns the write timestamp at the precision PostgreSQL stores.
func (s *Service) now() time.Time {
	return s.clock().UTC().Truncate(time.Microsecond)
}

func requireActor(actorID uuid.UUID) error {
	if actorID == uuid.Nil {
		return domain.NewBadRequest("missing user identity")
	}
	return nil
}

func notFound(key string) *domain.Error {
	return domain.NewNotFound(key + " is not found")
}

// fail classifies err for the caller and logs it when it is unexpected.
// Store failures get messages naming the key. It returns a plain nil for a
// nil err.
func (s *Service) fail(ctx context.Context, op, key string, err error) error {
	if err == nil {
		return nil
	}

	var appErr *domain.Error
	if !errors.As(err, &appErr) {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return withCause(notFound(key), err)
		case errors.Is(err, domain.ErrAlreadyExists):
			return withCause(domain.NewConflict(key+" already exists"), err)
		case errors.Is(err, domain.ErrConflict):
			return withCause(domain.NewConflict(key+" is locked by another writer, retry later"), err)
		}
	}

	classified := domain.Classify(err)
	if classified.Kind == domain.KindUnexpected {
		s.log.ErrorContext(ctx, "resource operation failed",
			slog.String("op", op),
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
	return classified
}

func withCause(e *domain.Error, cause error) *domain.Error {
	e.Err = cause
	return e
}

func (s *Service) writeAudit(
	ctx context.Context,
	key string,
	actorID uuid.UUID,
	action domain.AuditAction,
	changes map[string]any,
	at time.Time,
) error {
	if err := s.audit.Log(ctx, domain.AuditRecord{
		ResourceKey: key,
		ActorID:     actorID,
		Action:      action,
		Changes:     changes,
		CreatedAt:   at,
	}); err != nil {
		return fmt.Errorf("audit %s: %w", action, err)
	}
	return nil
}
