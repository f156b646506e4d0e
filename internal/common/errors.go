// Package common defines shared constants and sentinel errors used across
// the file storage service. Callers should use errors.Is / errors.As to
// match these values.
package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Input errors. Never retried automatically.
	ErrValidation       = errors.New("validation error")
	ErrSchemaResolution = errors.New("schema not found")
	ErrSchema           = errors.New("schema mismatch")

	// Repository-level errors.
	ErrNotFound    = errors.New("not found")
	ErrTransaction = errors.New("transaction failed")

	// Object store side effects.
	ErrObjectDelete     = errors.New("object delete failed")
	ErrObjectRelocation = errors.New("object relocation failed")

	// Metadata committed, relocation pending.
	ErrPartialCommit = errors.New("partial commit")

	// Auth errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrUnauthorized = errors.New("unauthorized")
)

// FieldViolation describes one problem with one record of a batch.
type FieldViolation struct {
	Index  int
	Field  string
	Reason string
}

func (v FieldViolation) String() string {
	return fmt.Sprintf("record[%d].%s: %s", v.Index, v.Field, v.Reason)
}

// SchemaError reports every violation found in a batch, not only the first one.
type SchemaError struct {
	Schema     string
	Violations []FieldViolation
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("%s: %s: %s", ErrSchema, e.Schema, strings.Join(parts, "; "))
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// PartialCommitError is returned when metadata rows were committed but the
// objects they point at could not be relocated. Keys lists the source keys
// that still need to be moved by a repair pass.
type PartialCommitError struct {
	Keys    []string
	RefType string
	RefID   *int64
	Err     error
}

func (e *PartialCommitError) Error() string {
	ref := "<none>"
	if e.RefID != nil {
		ref = fmt.Sprintf("%d", *e.RefID)
	}
	return fmt.Sprintf("%s: ref %s/%s: %d key(s) pending relocation [%s]: %v",
		ErrPartialCommit, e.RefType, ref, len(e.Keys), strings.Join(e.Keys, ", "), e.Err)
}

func (e *PartialCommitError) Is(target error) bool {
	return target == ErrPartialCommit || target == ErrObjectRelocation
}

func (e *PartialCommitError) Unwrap() error { return e.Err }

// ObjectDeleteError means the object is still in the store; its metadata row
// was kept.
type ObjectDeleteError struct {
	Key string
	Err error
}

func (e *ObjectDeleteError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s: not deleted", ErrObjectDelete, e.Key)
	}
	return fmt.Sprintf("%s: %s: %v", ErrObjectDelete, e.Key, e.Err)
}

func (e *ObjectDeleteError) Is(target error) bool { return target == ErrObjectDelete }

func (e *ObjectDeleteError) Unwrap() error { return e.Err }
