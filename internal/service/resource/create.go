package resource

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/resource-registry/internal/domain"
)

// Create stores a new resource stamped with actorID and the current time.
// A taken key yields a Conflict.
func (s *Service) Create(ctx context.Context, res *domain.Resource, actorID uuid.UUID) (*domain.Resource, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}

	var created *domain.Resource
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.insert(txCtx, res, actorID, s.now())
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "create", res.Key, err)
	}

	s.log.InfoContext(ctx, "resource created",
		slog.String("key", created.Key),
		slog.String("actor_id", actorID.String()),
	)
	return created, nil
}

// insert writes res as a new record and logs a CREATE audit entry. It must
// run inside a transaction.
func (s *Service) insert(ctx context.Context, res *domain.Resource, actorID uuid.UUID, at time.Time) (*domain.Resource, error) {
	toStore := *res
	toStore.StampCreated(actorID, at)

	created, err := s.resources.Create(ctx, &toStore)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	changes := domain.Changes(domain.AllMutableFields, domain.ResourceData{}, created.ResourceData)
	if err := s.writeAudit(ctx, created.Key, actorID, domain.AuditActionCreate, changes, at); err != nil {
		return nil, err
	}
	return created, nil
}
