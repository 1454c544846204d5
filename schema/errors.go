// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"errors"
	"strings"
)

// ValidationError reports which field failed and which constraint it broke.
type ValidationError struct {
	Path    []string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return e.Field() + ": " + e.Message
}

// Field returns the dotted path of the offending field, or "" for
// constraints that apply to the value as a whole.
func (e *ValidationError) Field() string {
	return strings.Join(e.Path, ".")
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

// At prefixes the path of a validation error with field. Errors that are
// not validation errors are returned unchanged.
func At(field string, err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	path := make([]string, 0, len(ve.Path)+1)
	path = append(path, field)
	path = append(path, ve.Path...)
	return &ValidationError{Path: path, Message: ve.Message}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
