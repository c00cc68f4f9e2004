package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrValidation     = errors.New("validation error")
	ErrConflict       = errors.New("conflict")
	ErrBadRequest     = errors.New("bad request")
	ErrNotImplemented = errors.New("not implemented")
	ErrUnexpected     = errors.New("unexpected error")
)

// Kind is the closed set of failure categories a caller can observe.
type Kind uint8

const (
	KindUnexpected Kind = iota
	KindBadRequest
	KindValidation
	KindConflict
	KindNotFound
	KindNotImplemented
)

// Kinds lists every Kind. Exhaustiveness tests iterate over it.
var Kinds = []Kind{
	KindUnexpected,
	KindBadRequest,
	KindValidation,
	KindConflict,
	KindNotFound,
	KindNotImplemented,
}

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "BadRequest"
	case KindValidation:
		return "ValidationError"
	case KindConflict:
		return "Conflict"
	case KindNotFound:
		return "NotFound"
	case KindNotImplemented:
		return "NotImplemented"
	case KindUnexpected:
		return "Unexpected"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Code returns the stable machine-readable code of the kind. Unexpected has
// no code of its own: the transport derives it from the response status.
func (k Kind) Code() string {
	switch k {
	case KindBadRequest:
		return "BAD_REQUEST"
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindConflict:
		return "CONFLICT"
	case KindNotFound:
		return "NOT_FOUND"
	case KindNotImplemented:
		return "NOT_IMPLEMENTED"
	case KindUnexpected:
		return ""
	}
	return ""
}

func (k Kind) sentinel() error {
	switch k {
	case KindBadRequest:
		return ErrBadRequest
	case KindValidation:
		return ErrValidation
	case KindConflict:
		return ErrConflict
	case KindNotFound:
		return ErrNotFound
	case KindNotImplemented:
		return ErrNotImplemented
	case KindUnexpected:
		return ErrUnexpected
	}
	return ErrUnexpected
}

// Error is a classified failure. It is what leaves the service layer.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel of the error's kind, so
// errors.Is(err, ErrNotFound) holds for a classified NotFound.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// Envelope is the wire shape of a classified error.
type Envelope struct {
	Code    string            `json:"code"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// Envelope renders the error. fallbackCode is used when the error carries no
// code, which is the case for Unexpected.
func (e *Error) Envelope(fallbackCode string) Envelope {
	code := e.Code
	if code == "" {
		code = fallbackCode
	}
	env := Envelope{Code: code, Message: e.Message}
	if len(e.Details) > 0 {
		env.Details = e.Details
	}
	return env
}

func newError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: kind.Code(), Message: msg, Err: cause}
}

func NewBadRequest(msg string) *Error { return newError(KindBadRequest, msg, nil) }

func NewConflict(msg string) *Error { return newError(KindConflict, msg, nil) }

func NewNotFound(msg string) *Error { return newError(KindNotFound, msg, nil) }

func NewNotImplemented(msg string) *Error { return newError(KindNotImplemented, msg, nil) }

// NewUnexpected wraps an unclassifiable cause. The message stays generic.
func NewUnexpected(cause error) *Error { return newError(KindUnexpected, "", cause) }

// Classify maps any error to exactly one Kind. A nil error yields nil.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		e := newError(KindValidation, "", err)
		e.Details = ve.Details()
		return e
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return newError(KindNotFound, messageOf(err, ErrNotFound), err)
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrConflict):
		return newError(KindConflict, messageOf(err, ErrConflict), err)
	case errors.Is(err, ErrValidation):
		return newError(KindValidation, messageOf(err, ErrValidation), err)
	case errors.Is(err, ErrBadRequest):
		return newError(KindBadRequest, messageOf(err, ErrBadRequest), err)
	case errors.Is(err, ErrNotImplemented):
		return newError(KindNotImplemented, messageOf(err, ErrNotImplemented), err)
	}
	return NewUnexpected(err)
}

// messageOf keeps the caller-facing part of a wrapped sentinel and drops
// the bare sentinel text.
func messageOf(err, sentinel error) string {
	if err == sentinel {
		return ""
	}
	return err.Error()
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Details flattens the errors into a field path -> message map. Messages for
// the same path are joined with "; " in the order they were reported.
func (e *ValidationError) Details() map[string]string {
	if len(e.Errors) == 0 {
		return nil
	}
	grouped := make(map[string][]string, len(e.Errors))
	for _, fe := range e.Errors {
		grouped[fe.Field] = append(grouped[fe.Field], fe.Message)
	}
	out := make(map[string]string, len(grouped))
	for field, msgs := range grouped {
		out[field] = strings.Join(msgs, "; ")
	}
	return out
}

// Fields returns the distinct field paths in sorted order.
func (e *ValidationError) Fields() []string {
	d := e.Details()
	out := make([]string, 0, len(d))
	for f := range d {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
