package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/resource-registry/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueKey returns a resource key that no other test uses.
func UniqueKey(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// SeedResource inserts a resource with a unique key and the given owner.
// A nil owner gets a fresh UUID. Returns the stored domain.Resource.
func SeedResource(t *testing.T, pool *pgxpool.Pool, owner uuid.UUID, mutate ...func(*domain.Resource)) domain.Resource {
	t.Helper()
	ctx := context.Background()

	if owner == uuid.Nil {
		owner = uuid.New()
	}
	actor := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)
	desc := "seeded resource"

	res := domain.Resource{
		Key: UniqueKey("res"),
		ResourceData: domain.ResourceData{
			Name:        "Resource " + uniqueSuffix(),
			Description: &desc,
			OwnerID:     owner,
		},
	}
	res.StampCreated(actor, now)
	for _, m := range mutate {
		m(&res)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO resources (key, name, description, owner_id, management_group_id,
		                        created_at, created_by, updated_at, updated_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		res.Key, res.Name, res.Description, res.OwnerID, res.ManagementGroupID,
		res.CreatedAt, res.CreatedBy, res.UpdatedAt, res.UpdatedBy,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedResource insert: %v", err)
	}

	return res
}

// ResourceExists reports whether a row with key exists.
func ResourceExists(t *testing.T, pool *pgxpool.Pool, key string) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM resources WHERE key = $1)`, key,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("testhelper: ResourceExists query: %v", err)
	}
	return exists
}
