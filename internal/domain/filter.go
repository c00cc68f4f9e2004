package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SortDirection is the ordering of a sort term.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

func (d SortDirection) String() string { return string(d) }

func (d SortDirection) IsValid() bool {
	switch d {
	case SortAsc, SortDesc:
		return true
	}
	return false
}

// Sort is one ordering term of a listing.
type Sort struct {
	Field     string
	Direction SortDirection
}

func (s Sort) String() string { return s.Field + ":" + string(s.Direction) }

// ParseSort parses "field[:ASC|DESC]" terms separated by commas. Blank terms
// are skipped, the direction is case-insensitive and defaults to ASC.
func ParseSort(raw string) ([]Sort, error) {
	var out []Sort
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		s, err := parseSortTerm(part)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func parseSortTerm(term string) (Sort, error) {
	field, dir, _ := strings.Cut(term, ":")
	field = strings.TrimSpace(field)
	if field == "" {
		return Sort{}, fmt.Errorf("sort term %q: field must not be empty", term)
	}
	dir = strings.ToUpper(strings.TrimSpace(dir))
	if dir == "" {
		return Sort{Field: field, Direction: SortAsc}, nil
	}
	d := SortDirection(dir)
	if !d.IsValid() {
		return Sort{}, fmt.Errorf("sort term %q: direction must be ASC or DESC", term)
	}
	return Sort{Field: field, Direction: d}, nil
}

// SortableFields are the field names a listing may be ordered by.
var SortableFields = []string{"key", "name", "ownerId", "managementGroupId", "createdAt", "updatedAt"}

func isSortable(field string) bool {
	for _, f := range SortableFields {
		if f == field {
			return true
		}
	}
	return false
}

// ListFilter selects and orders resources for a listing.
type ListFilter struct {
	PageSize          int
	PageToken         string
	OwnerID           *uuid.UUID
	ManagementGroupID *uuid.UUID
	Name              *string
	Sort              []Sort
}

// Normalize applies defaults: a page size below 1 becomes defSize, one above
// maxSize is clamped.
func (f ListFilter) Normalize(defSize, maxSize int) ListFilter {
	if defSize < 1 {
		defSize = DefaultPageSize
	}
	if maxSize < defSize {
		maxSize = defSize
	}
	if f.PageSize < 1 {
		f.PageSize = defSize
	}
	if f.PageSize > maxSize {
		f.PageSize = maxSize
	}
	if f.Sort == nil {
		f.Sort = []Sort{}
	}
	return f
}

// Validate rejects sort terms on fields that cannot be ordered by.
func (f ListFilter) Validate() error {
	var errs []FieldError
	for _, s := range f.Sort {
		if !isSortable(s.Field) {
			errs = append(errs, FieldError{Field: "sort", Message: fmt.Sprintf("cannot sort by %q", s.Field)})
		}
		if !s.Direction.IsValid() {
			errs = append(errs, FieldError{Field: "sort", Message: fmt.Sprintf("invalid direction %q", s.Direction)})
		}
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Page is one slice of a listing. Next is nil on the last page.
type Page[T any] struct {
	Data []T
	Next *string
}
