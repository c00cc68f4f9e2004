package resource

import (
	"context"

	"github.com/heartmarshall/resource-registry/internal/domain"
)

// List returns one page of resources. A page size below 1 falls back to the
// configured default and one above the maximum is clamped.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (*domain.Page[domain.Resource], error) {
	filter = filter.Normalize(s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	if err := filter.Validate(); err != nil {
		return nil, s.fail(ctx, "list", "", err)
	}

	page, err := s.resources.List(ctx, filter)
	if err != nil {
		return nil, s.fail(ctx, "list", "", err)
	}
	return page, nil
}
