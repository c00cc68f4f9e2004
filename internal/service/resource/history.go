package resource

import (
	"context"

	"github.com/heartmarshall/resource-registry/internal/domain"
)

// History returns the newest audit records of key, at most limit of them.
// Records outlive the resource, so a deleted key still has a history.
func (s *Service) History(ctx context.Context, key string, limit int) ([]domain.AuditRecord, error) {
	if limit < 1 || limit > s.cfg.HistoryLimit {
		limit = s.cfg.HistoryLimit
	}

	records, err := s.audit.ListByResource(ctx, key, limit)
	if err != nil {
		return nil, s.fail(ctx, "history", key, err)
	}
	return records, nil
}
