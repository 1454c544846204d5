// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"fmt"
	"math"
	"strconv"
)

// Entity is implemented by the zero-size marker types that tag keys.
type Entity interface {
	EntityName() string
}

// Key is a primary key tagged with its entity kind. Key[foodKind] and
// Key[planKind] share the int64 representation but are distinct types,
// so one cannot be passed where the other is expected.
type Key[E Entity] int64

// NewKey brands v as a key of kind E. Negative and fractional values fail.
func NewKey[E Entity](v float64) (Key[E], error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, invalid(fmt.Sprintf("Expected an integer %s key, actual %v", kindName[E](), v))
	}
	if v < 0 {
		return 0, invalid(fmt.Sprintf("Expected a non-negative %s key, actual %v", kindName[E](), v))
	}
	if v >= math.MaxInt64 {
		return 0, invalid(fmt.Sprintf("%s key out of range", kindName[E]()))
	}
	return Key[E](int64(v)), nil
}

// ParseKey brands a decimal string, as found in URL paths.
func ParseKey[E Entity](s string) (Key[E], error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, invalid(fmt.Sprintf("Expected an integer %s key, actual %q", kindName[E](), s))
	}
	return NewKey[E](float64(n))
}

// KeyOf brands an id read back from storage.
func KeyOf[E Entity](id int64) (Key[E], error) {
	if id < 0 {
		return 0, invalid(fmt.Sprintf("Expected a non-negative %s key, actual %d", kindName[E](), id))
	}
	return Key[E](id), nil
}

func (k Key[E]) Int64() int64 { return int64(k) }

func (k Key[E]) String() string { return strconv.FormatInt(int64(k), 10) }

// Kind returns the entity name the key is tagged with.
func (k Key[E]) Kind() string { return kindName[E]() }

func kindName[E Entity]() string {
	var e E
	return e.EntityName()
}
