// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"math"

	"github.com/shopspring/decimal"
)

// Quantity is a nutrient amount at its human-facing magnitude
// (grams, kcal or percent). Storage keeps it at ten times that value.
type Quantity float64

const (
	// scaleShift moves the decimal point one place: storage = 10 × quantity.
	scaleShift = 1

	decodePlaces = 1
	encodePlaces = 2

	PositiveMessage = "Quantity must be positive"
)

func checkNonNegative(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid("Expected a finite number")
	}
	if v < 0 {
		return invalid("Expected a non-negative number")
	}
	return nil
}

// round rounds half away from zero on the decimal representation of v.
// Callers only pass non-negative values, so this is round-half-up.
func round(v float64, shift, places int32) float64 {
	return decimal.NewFromFloat(v).Shift(shift).Round(places).InexactFloat64()
}

// NewQuantity accepts a human-facing value as given, rejecting negative
// and non-finite numbers.
func NewQuantity(v float64) (Quantity, error) {
	if err := checkNonNegative(v); err != nil {
		return 0, err
	}
	return Quantity(v), nil
}

// NewOptionalQuantity is NewQuantity with absence passed through.
func NewOptionalQuantity(v *float64) (*Quantity, error) {
	if v == nil {
		return nil, nil
	}
	q, err := NewQuantity(*v)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// DecodeQuantity converts a stored value to its human-facing magnitude:
// raw / 10 rounded to one decimal place (125 -> 12.5).
func DecodeQuantity(raw float64) (Quantity, error) {
	if err := checkNonNegative(raw); err != nil {
		return 0, err
	}
	return Quantity(round(raw, -scaleShift, decodePlaces)), nil
}

// EncodeQuantity converts a quantity to its stored value:
// q × 10 rounded to two decimal places (12.5 -> 125).
func EncodeQuantity(q Quantity) (float64, error) {
	if err := checkNonNegative(float64(q)); err != nil {
		return 0, err
	}
	return round(float64(q), scaleShift, encodePlaces), nil
}

func DecodeOptionalQuantity(raw *float64) (*Quantity, error) {
	if raw == nil {
		return nil, nil
	}
	q, err := DecodeQuantity(*raw)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func EncodeOptionalQuantity(q *Quantity) (*float64, error) {
	if q == nil {
		return nil, nil
	}
	raw, err := EncodeQuantity(*q)
	if err != nil {
		return nil, err
	}
	return &raw, nil
}

// PositiveQuantity fails when q is present and negative. Zero passes.
func PositiveQuantity(q *Quantity) error {
	if q != nil && *q < 0 {
		return invalid(PositiveMessage)
	}
	return nil
}

// Float64 returns q as a plain float64.
func (q Quantity) Float64() float64 { return float64(q) }
