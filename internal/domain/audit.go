package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction names the mutation an AuditRecord describes.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionPatch  AuditAction = "PATCH"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

// IsValid reports whether a is one of the known actions.
func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionPatch, AuditActionDelete:
		return true
	default:
		return false
	}
}

// AuditRecord is one entry of a resource's mutation history. Records
// outlive the resource they describe.
//
// Changes maps each field that differs to its {"old", "new"} pair. PATCH
// records only consider the fields present in the patch.
type AuditRecord struct {
	ID          string
	ResourceKey string
	ActorID     uuid.UUID
	Action      AuditAction
	Changes     map[string]any
	CreatedAt   time.Time
}
