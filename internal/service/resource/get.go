package resource

import (
	"context"

	"github.com/heartmarshall/resource-registry/internal/domain"
)

// Get returns the resource stored under key. It takes no lock.
func (s *Service) Get(ctx context.Context, key string) (*domain.Resource, error) {
	res, err := s.resources.GetByKey(ctx, key)
	if err != nil {
		return nil, s.fail(ctx, "get", key, err)
	}
	return res, nil
}
