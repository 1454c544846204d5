// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import "fmt"

// Codec pairs the two directions of a transform: Decode turns an input
// shape I into a validated domain value D, Encode lowers D to the storage
// shape R. They are defined independently because they may round to
// different precisions.
type Codec[I, D, R any] struct {
	Name   string
	Decode func(I) (D, error)
	Encode func(D) (R, error)
}

// Transform runs Decode then Encode. A nil direction is a programming
// error and is reported instead of panicking.
func (c Codec[I, D, R]) Transform(in I) (D, R, error) {
	var (
		d D
		r R
	)
	if c.Decode == nil || c.Encode == nil {
		return d, r, fmt.Errorf("codec %s: missing decode or encode", c.Name)
	}
	d, err := c.Decode(in)
	if err != nil {
		return d, r, err
	}
	r, err = c.Encode(d)
	if err != nil {
		return d, r, err
	}
	return d, r, nil
}
