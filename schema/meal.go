// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"fmt"
	"strings"
)

// Meal is the slot of the day a serving was eaten in.
type Meal string

const (
	Breakfast Meal = "breakfast"
	Lunch     Meal = "lunch"
	Dinner    Meal = "dinner"
	Snacks    Meal = "snacks"
)

var meals = []Meal{Breakfast, Lunch, Dinner, Snacks}

// Meals returns the meal kinds in display order.
func Meals() []Meal {
	out := make([]Meal, len(meals))
	copy(out, meals)
	return out
}

// ParseMeal accepts exactly one of the known meal kinds.
func ParseMeal(raw string) (Meal, error) {
	for _, m := range meals {
		if raw == string(m) {
			return m, nil
		}
	}
	quoted := make([]string, len(meals))
	for i, m := range meals {
		quoted[i] = fmt.Sprintf("%q", string(m))
	}
	return "", invalid(fmt.Sprintf("Expected %s, actual %q", strings.Join(quoted, " | "), raw))
}
