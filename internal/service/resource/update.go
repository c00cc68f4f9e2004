package resource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/resource-registry/internal/domain"
)

// Update replaces every mutable field of the resource under key with the
// values of res while holding its row lock. When the key is absent and force
// is set, the resource is created in the same transaction; without force an
// absent key yields NotFound and nothing is written.
func (s *Service) Update(ctx context.Context, key string, res *domain.Resource, force bool, actorID uuid.UUID) error {
	if err := requireActor(actorID); err != nil {
		return err
	}

	created := false
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.resources.GetByKeyForUpdate(txCtx, key)
		if errors.Is(err, domain.ErrNotFound) && force {
			toCreate := *res
			toCreate.Key = key
			if _, err := s.insert(txCtx, &toCreate, actorID, s.now()); err != nil {
				return err
			}
			created = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("lock resource: %w", err)
		}

		// Stamped after the lock is held so stamps follow commit order.
		now := s.now()
		before := current.ResourceData
		current.Replace(res.ResourceData)
		current.StampUpdated(actorID, now)

		if _, err := s.resources.Update(txCtx, current); err != nil {
			return fmt.Errorf("update resource: %w", err)
		}

		changes := domain.Changes(domain.AllMutableFields, before, current.ResourceData)
		return s.writeAudit(txCtx, key, actorID, domain.AuditActionUpdate, changes, now)
	})
	if err != nil {
		return s.fail(ctx, "update", key, err)
	}

	msg := "resource updated"
	if created {
		msg = "resource created by forced update"
	}
	s.log.InfoContext(ctx, msg,
		slog.String("key", key),
		slog.String("actor_id", actorID.String()),
	)
	return nil
}
