package testhelper

import (
	"testing"

	"github.com/google/uuid"
)

func TestSetupTestDB_SeedRoundTrip(t *testing.T) {
	pool := SetupTestDB(t)
	owner := uuid.New()

	res := SeedResource(t, pool, owner)

	if !ResourceExists(t, pool, res.Key) {
		t.Fatalf("seeded resource %q not found", res.Key)
	}
	if res.OwnerID != owner {
		t.Errorf("owner = %s, want %s", res.OwnerID, owner)
	}
	if ResourceExists(t, pool, UniqueKey("missing")) {
		t.Error("unknown key reported as existing")
	}
}

func TestUniqueKey(t *testing.T) {
	a, b := UniqueKey("res"), UniqueKey("res")
	if a == b {
		t.Fatalf("UniqueKey returned %q twice", a)
	}
	if len(a) != len("res-")+8 {
		t.Errorf("unexpected key %q", a)
	}
}
