package question

import (
	"errors"
	"fmt"
)

// Sentinel errors for question construction and answer checking.
// Use errors.Is to check: errors.Is(err, question.ErrMissingField)
var (
	ErrUnsupportedType = errors.New("unsupported question type")
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidAnswer   = errors.New("invalid answer")
	ErrMalformedRecord = errors.New("malformed question record")
)

// UnsupportedTypeError reports a record whose type tag names no known variant.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported question type: %s", e.Type)
}

func (e *UnsupportedTypeError) Unwrap() error { return ErrUnsupportedType }

// FieldError reports a problem with a single field of a question record.
// Err is one of ErrMissingField, ErrInvalidAnswer or ErrMalformedRecord.
type FieldError struct {
	Field  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("missing required field for question: '%s'", e.Field)
	}
	if e.Reason != "" {
		return fmt.Sprintf("%v: field '%s': %s", e.Err, e.Field, e.Reason)
	}
	return fmt.Sprintf("%v: field '%s'", e.Err, e.Field)
}

func (e *FieldError) Unwrap() error { return e.Err }

// InputError reports learner input that cannot be interpreted for the
// question's kind. The question is left untouched when it is returned.
type InputError struct {
	Input  string
	Reason string
}

func (e *InputError) Error() string { return e.Reason }

func (e *InputError) Unwrap() error { return ErrInvalidAnswer }
