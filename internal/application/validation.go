package application

import (
	"fmt"
	"strings"

	"webdir/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Kind:    MissingField,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateURL checks that value parses as an absolute URL with a host.
func ValidateURL(fieldName, value string) error {
	if !domain.IsWellFormedURL(value) {
		return &ValidationError{
			Field:   fieldName,
			Kind:    InvalidURL,
			Message: fmt.Sprintf("not a valid URL: %s", value),
		}
	}
	return nil
}

// ValidateEntry checks the fields of an entry read back from storage.
// Description may be empty in stored data.
func ValidateEntry(e domain.Entry) error {
	if err := ValidateRequired("name", e.Name); err != nil {
		return err
	}
	return ValidateRequired("url", e.URL)
}
