package domain

import "github.com/google/uuid"

// Patch is a sparse change: only the fields in the set are copied from data.
// The zero value changes nothing.
type Patch struct {
	fields FieldSet
	data   ResourceData
}

// NewPatch builds a patch from caller-supplied field names. The name list
// must not be empty. Names that are not mutable fields are ignored.
func NewPatch(names []string, data ResourceData) (Patch, error) {
	if len(names) == 0 {
		return Patch{}, NewValidationError("fields", "must not be empty")
	}
	set, _ := ParseFieldSet(names)
	return Patch{fields: set, data: data}, nil
}

// PatchOf builds a patch from an already typed set.
func PatchOf(fields FieldSet, data ResourceData) Patch {
	return Patch{fields: fields, data: data}
}

func (p Patch) Fields() FieldSet { return p.fields }

func (p Patch) Data() ResourceData { return p.data }

// Apply copies the listed fields into target. Unlisted fields are never
// touched, whatever data holds for them.
func (p Patch) Apply(target *Resource) {
	for _, f := range p.fields.Fields() {
		switch f {
		case FieldName:
			target.Name = p.data.Name
		case FieldDescription:
			target.Description = cloneString(p.data.Description)
		case FieldOwnerID:
			target.OwnerID = p.data.OwnerID
		case FieldManagementGroupID:
			target.ManagementGroupID = cloneUUID(p.data.ManagementGroupID)
		}
	}
}

// Validate checks the listed fields only. Paths are reported under "data".
func (p Patch) Validate() error {
	var errs []FieldError
	if p.fields.Has(FieldName) {
		errs = append(errs, validateName("data.name", p.data.Name)...)
	}
	if p.fields.Has(FieldOwnerID) && p.data.OwnerID == uuid.Nil {
		errs = append(errs, FieldError{Field: "data.ownerId", Message: "required"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Changes reports the listed fields whose value differs between before and
// after, as {"field": {"old": ..., "new": ...}}.
func Changes(fields FieldSet, before, after ResourceData) map[string]any {
	changes := make(map[string]any)
	for _, f := range fields.Fields() {
		var oldV, newV any
		switch f {
		case FieldName:
			oldV, newV = before.Name, after.Name
		case FieldDescription:
			oldV, newV = derefString(before.Description), derefString(after.Description)
		case FieldOwnerID:
			oldV, newV = before.OwnerID.String(), after.OwnerID.String()
		case FieldManagementGroupID:
			oldV, newV = uuidString(before.ManagementGroupID), uuidString(after.ManagementGroupID)
		}
		if oldV != newV {
			changes[f.String()] = map[string]any{"old": oldV, "new": newV}
		}
	}
	return changes
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func derefString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func uuidString(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}
