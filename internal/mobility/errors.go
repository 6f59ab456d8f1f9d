package mobility

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a lookup by identifier found no record.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID indicates a record with the same identifier already exists.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrInvalidRecord indicates a record failed field validation.
	ErrInvalidRecord = errors.New("invalid record")
)

// RecordKind names the kind of record an error refers to.
type RecordKind string

const (
	KindRoute     RecordKind = "route"
	KindIncident  RecordKind = "incident"
	KindPerson    RecordKind = "person"
	KindDriver    RecordKind = "driver"
	KindPassenger RecordKind = "passenger"
)

// NotFoundError reports a failed lookup by identifier.
type NotFoundError struct {
	Kind RecordKind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %q not found", e.Kind, e.ID)
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError reports an invalid field on a record.
type ValidationError struct {
	Kind    RecordKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s %s", e.Kind, e.Field, e.Message)
}

// Is matches ErrInvalidRecord.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRecord
}

// IsNotFound returns true if err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func notFound(kind RecordKind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

func duplicate(kind RecordKind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrDuplicateID)
}

func invalid(kind RecordKind, field, message string) error {
	return &ValidationError{Kind: kind, Field: field, Message: message}
}
