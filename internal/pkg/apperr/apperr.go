package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a stale or unknown id. Deletes are not idempotent:
// deleting an already-deleted id fails with ErrNotFound too.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ConflictError reports a uniqueness violation (blog slug, subscriber email).
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

func Conflict(field, value string) error {
	return &ConflictError{Field: field, Value: value}
}

// UploadError wraps an asset store failure. The caller must abort the whole
// record operation: no create/update runs after a failed upload.
type UploadError struct {
	Cause error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("asset upload failed: %v", e.Cause)
}

func (e *UploadError) Unwrap() error { return e.Cause }

func Upload(cause error) error {
	return &UploadError{Cause: cause}
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
