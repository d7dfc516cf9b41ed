package models

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is matched by every *MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError describes a persisted record that failed validation.
type MalformedRecordError struct {
	// Record is the kind of record, e.g. "trip" or "group expense".
	Record string
	// ID identifies the record when it is known.
	ID string
	// Field is the offending field.
	Field string
	// Reason is a short human-readable explanation.
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("malformed %s %q: %s: %s", e.Record, e.ID, e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed %s: %s: %s", e.Record, e.Field, e.Reason)
}

func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

func malformed(record, id, field, reason string) error {
	return &MalformedRecordError{Record: record, ID: id, Field: field, Reason: reason}
}
