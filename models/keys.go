// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "github.com/danielhkuo/nutrilog/schema"

// Entity markers. They only exist to tag keys.

type FoodEntity struct{}

func (FoodEntity) EntityName() string { return "Food" }

type ServingEntity struct{}

func (ServingEntity) EntityName() string { return "Serving" }

type PlanEntity struct{}

func (PlanEntity) EntityName() string { return "Plan" }

// FoodID, ServingID and PlanID wrap the same int64 but do not convert
// into each other implicitly.
type (
	FoodID    = schema.Key[FoodEntity]
	ServingID = schema.Key[ServingEntity]
	PlanID    = schema.Key[PlanEntity]
)

// decodeKey brands a raw JSON number and reports failures under field.
func decodeKey[E schema.Entity](field string, raw float64) (schema.Key[E], error) {
	k, err := schema.NewKey[E](raw)
	return k, schema.At(field, err)
}

// parseKey brands a path parameter and reports failures under "id".
func parseKey[E schema.Entity](raw string) (schema.Key[E], error) {
	k, err := schema.ParseKey[E](raw)
	return k, schema.At("id", err)
}

// storedKey brands an id read back from a row.
func storedKey[E schema.Entity](field string, id int64) (schema.Key[E], error) {
	k, err := schema.KeyOf[E](id)
	return k, schema.At(field, err)
}
