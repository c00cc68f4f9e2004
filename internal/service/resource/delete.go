package resource

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/resource-registry/internal/domain"
)

// Delete removes the resource under key. An absent key yields NotFound and
// leaves the store unchanged.
func (s *Service) Delete(ctx context.Context, key string, actorID uuid.UUID) error {
	if err := requireActor(actorID); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.resources.GetByKeyForUpdate(txCtx, key)
		if err != nil {
			return fmt.Errorf("lock resource: %w", err)
		}

		if err := s.resources.Delete(txCtx, key); err != nil {
			return fmt.Errorf("delete resource: %w", err)
		}

		changes := domain.Changes(domain.AllMutableFields, current.ResourceData, domain.ResourceData{})
		return s.writeAudit(txCtx, key, actorID, domain.AuditActionDelete, changes, s.now())
	})
	if err != nil {
		return s.fail(ctx, "delete", key, err)
	}

	s.log.InfoContext(ctx, "resource deleted",
		slog.String("key", key),
		slog.String("actor_id", actorID.String()),
	)
	return nil
}
