// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "github.com/danielhkuo/nutrilog/schema"

// Field-scoped wrappers around the schema quantity transforms. A record
// decoder collects several of these; the first failure wins.

func quantity(field string, raw float64) (schema.Quantity, error) {
	q, err := schema.NewQuantity(raw)
	return q, schema.At(field, err)
}

func positiveQuantity(field string, raw float64) (schema.Quantity, error) {
	q, err := quantity(field, raw)
	if err != nil {
		return 0, err
	}
	return q, schema.At(field, schema.PositiveQuantity(&q))
}

func optionalQuantity(field string, raw *float64) (*schema.Quantity, error) {
	q, err := schema.NewOptionalQuantity(raw)
	return q, schema.At(field, err)
}

func encode(field string, q schema.Quantity) (float64, error) {
	raw, err := schema.EncodeQuantity(q)
	return raw, schema.At(field, err)
}

func encodeOptional(field string, q *schema.Quantity) (*float64, error) {
	raw, err := schema.EncodeOptionalQuantity(q)
	return raw, schema.At(field, err)
}

func decode(field string, raw float64) (schema.Quantity, error) {
	q, err := schema.DecodeQuantity(raw)
	return q, schema.At(field, err)
}

func decodeOptional(field string, raw *float64) (*schema.Quantity, error) {
	q, err := schema.DecodeOptionalQuantity(raw)
	return q, schema.At(field, err)
}

// collector runs steps until the first error.
type collector struct {
	err error
}

func (c *collector) quantity(dst *schema.Quantity, fn func(string, float64) (schema.Quantity, error), field string, raw float64) {
	if c.err != nil {
		return
	}
	*dst, c.err = fn(field, raw)
}

func (c *collector) optional(dst **schema.Quantity, fn func(string, *float64) (*schema.Quantity, error), field string, raw *float64) {
	if c.err != nil {
		return
	}
	*dst, c.err = fn(field, raw)
}

func (c *collector) raw(dst *float64, field string, q schema.Quantity) {
	if c.err != nil {
		return
	}
	*dst, c.err = encode(field, q)
}

func (c *collector) rawOptional(dst **float64, field string, q *schema.Quantity) {
	if c.err != nil {
		return
	}
	*dst, c.err = encodeOptional(field, q)
}
