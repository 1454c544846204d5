// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import "strings"

// DecodeEmptyString maps a stored optional string to its form value:
// absence becomes "".
func DecodeEmptyString(raw *string) string {
	if raw == nil {
		return ""
	}
	return *raw
}

// EncodeEmptyString maps a form value to its stored optional string:
// "" and whitespace-only strings become absence, anything else is kept
// unchanged (including surrounding whitespace).
func EncodeEmptyString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// NonEmptyString rejects strings with no visible characters.
func NonEmptyString(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", invalid("Expected a non empty string")
	}
	return s, nil
}
