package domain

import "strings"

// Field identifies one mutable attribute of a Resource.
type Field uint8

const (
	FieldName Field = iota
	FieldDescription
	FieldOwnerID
	FieldManagementGroupID

	fieldCount
)

var fieldNames = [fieldCount]string{
	FieldName:              "name",
	FieldDescription:       "description",
	FieldOwnerID:           "ownerId",
	FieldManagementGroupID: "managementGroupId",
}

// String returns the wire name of the field.
func (f Field) String() string {
	if f < fieldCount {
		return fieldNames[f]
	}
	return "unknown"
}

// ParseField resolves a wire name. Matching ignores surrounding whitespace
// but is case-sensitive.
func ParseField(name string) (Field, bool) {
	name = strings.TrimSpace(name)
	for f := Field(0); f < fieldCount; f++ {
		if fieldNames[f] == name {
			return f, true
		}
	}
	return 0, false
}

// FieldSet is a presence set of fields.
type FieldSet uint8

// AllMutableFields is the set a full update copies.
const AllMutableFields = FieldSet(1<<fieldCount - 1)

// NewFieldSet builds a set from fields.
func NewFieldSet(fields ...Field) FieldSet {
	var s FieldSet
	for _, f := range fields {
		s = s.With(f)
	}
	return s
}

// ParseFieldSet builds a set from wire names. Names that do not denote a
// mutable field are returned separately and have no effect on the set.
func ParseFieldSet(names []string) (set FieldSet, unknown []string) {
	for _, n := range names {
		f, ok := ParseField(n)
		if !ok {
			unknown = append(unknown, n)
			continue
		}
		set = set.With(f)
	}
	return set, unknown
}

func (s FieldSet) Has(f Field) bool { return f < fieldCount && s&(1<<f) != 0 }

func (s FieldSet) With(f Field) FieldSet {
	if f >= fieldCount {
		return s
	}
	return s | 1<<f
}

func (s FieldSet) IsEmpty() bool { return s == 0 }

// Fields lists the members in declaration order.
func (s FieldSet) Fields() []Field {
	var out []Field
	for f := Field(0); f < fieldCount; f++ {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Names lists the wire names of the members in declaration order.
func (s FieldSet) Names() []string {
	fields := s.Fields()
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.String()
	}
	return out
}
