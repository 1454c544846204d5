// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import "github.com/shopspring/decimal"

const MacroRatioMessage = "Macros ratio must be 100%"

var hundred = decimal.NewFromInt(100)

// MacroRatio checks that the three macro-nutrient percentages are each
// non-negative and add up to exactly 100. The sum is taken on the decimal
// representation so 33.3 + 33.3 + 33.4 passes.
func MacroRatio(fats, carbohydrates, proteins Quantity) error {
	parts := []struct {
		field string
		value Quantity
	}{
		{"fats_ratio", fats},
		{"carbohydrates_ratio", carbohydrates},
		{"proteins_ratio", proteins},
	}
	sum := decimal.Zero
	for _, p := range parts {
		if err := checkNonNegative(float64(p.value)); err != nil {
			return At(p.field, err)
		}
		sum = sum.Add(decimal.NewFromFloat(float64(p.value)))
	}
	if !sum.Equal(hundred) {
		return invalid(MacroRatioMessage)
	}
	return nil
}
