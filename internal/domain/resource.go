package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	KeyMinLen  = 3
	KeyMaxLen  = 128
	NameMinLen = 3
	NameMaxLen = 255
)

// Audit carries who created and last changed a record, and when.
type Audit struct {
	CreatedAt time.Time
	CreatedBy uuid.UUID
	UpdatedAt time.Time
	UpdatedBy uuid.UUID
}

// StampCreated sets both the creation and the modification stamps.
func (a *Audit) StampCreated(actor uuid.UUID, at time.Time) {
	a.CreatedAt = at
	a.CreatedBy = actor
	a.UpdatedAt = at
	a.UpdatedBy = actor
}

// StampUpdated sets the modification stamps only.
func (a *Audit) StampUpdated(actor uuid.UUID, at time.Time) {
	a.UpdatedAt = at
	a.UpdatedBy = actor
}

// ResourceData holds the mutable attributes of a Resource.
type ResourceData struct {
	Name              string
	Description       *string
	OwnerID           uuid.UUID
	ManagementGroupID *uuid.UUID
}

// Resource is a named, owned record addressed by a caller-assigned key.
type Resource struct {
	Key string
	ResourceData
	Audit
}

// Replace copies every mutable attribute of src. Key and creation stamps
// are left alone.
func (r *Resource) Replace(src ResourceData) {
	Patch{fields: AllMutableFields, data: src}.Apply(r)
}

// Validate checks the shape of a full record as supplied by a caller.
func (r *Resource) Validate() error {
	var errs []FieldError
	errs = append(errs, validateKey(r.Key)...)
	errs = append(errs, validateName("name", r.Name)...)
	if r.OwnerID == uuid.Nil {
		errs = append(errs, FieldError{Field: "ownerId", Message: "required"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

func validateKey(key string) []FieldError {
	if strings.TrimSpace(key) == "" {
		return []FieldError{{Field: "key", Message: "must not be blank"}}
	}
	if n := utf8.RuneCountInString(key); n < KeyMinLen || n > KeyMaxLen {
		return []FieldError{{Field: "key", Message: "size must be between 3 and 128"}}
	}
	return nil
}

func validateName(path, name string) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(name) == "" {
		errs = append(errs, FieldError{Field: path, Message: "must not be blank"})
	}
	if n := utf8.RuneCountInString(name); n < NameMinLen || n > NameMaxLen {
		errs = append(errs, FieldError{Field: path, Message: "size must be between 3 and 255"})
	}
	return errs
}
