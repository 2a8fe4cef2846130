package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrMissingField      = errors.New("missing field")
	ErrInvalidURL        = errors.New("invalid URL")
	ErrRemoteFetchFailed = errors.New("remote fetch failed")
	ErrCacheDeserialize  = errors.New("cache deserialize failed")
	ErrCacheWrite        = errors.New("cache write failed")
)

// ValidationKind classifies a ValidationError
type ValidationKind int

const (
	MissingField ValidationKind = iota
	InvalidURL
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	switch e.Kind {
	case MissingField:
		return target == ErrMissingField
	case InvalidURL:
		return target == ErrInvalidURL
	}
	return false
}

// LoadError represents a failure to populate the entry store
type LoadError struct {
	Op  string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load entries: %s: %v", e.Op, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
