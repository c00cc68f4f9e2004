package resource

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/resource-registry/internal/domain"
)

// Patch copies the fields listed in p into the resource under key while
// holding its row lock. It never creates a resource.
func (s *Service) Patch(ctx context.Context, key string, p domain.Patch, actorID uuid.UUID) error {
	if err := requireActor(actorID); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.resources.GetByKeyForUpdate(txCtx, key)
		if err != nil {
			return fmt.Errorf("lock resource: %w", err)
		}

		now := s.now()
		before := current.ResourceData
		p.Apply(current)
		current.StampUpdated(actorID, now)

		if _, err := s.resources.Update(txCtx, current); err != nil {
			return fmt.Errorf("update resource: %w", err)
		}

		changes := domain.Changes(p.Fields(), before, current.ResourceData)
		return s.writeAudit(txCtx, key, actorID, domain.AuditActionPatch, changes, now)
	})
	if err != nil {
		return s.fail(ctx, "patch", key, err)
	}

	s.log.InfoContext(ctx, "resource patched",
		slog.String("key", key),
		slog.String("actor_id", actorID.String()),
		slog.Any("fields", p.Fields().Names()),
	)
	return nil
}
