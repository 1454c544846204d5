// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"github.com/danielhkuo/nutrilog/db"
	"github.com/danielhkuo/nutrilog/schema"
)

type ServingRequest struct {
	FoodID       float64 `json:"food_id"`
	Quantity     float64 `json:"quantity"`
	Meal         string  `json:"meal"`
	DailyLogDate string  `json:"daily_log_date"`
}

type ServingUpdateRequest struct {
	ID       string  `json:"-"`
	Quantity float64 `json:"quantity"`
}

// ServingInsert is a quantity (grams) of a food eaten in a meal on a day.
type ServingInsert struct {
	FoodID       FoodID
	Quantity     schema.Quantity
	Meal         schema.Meal
	DailyLogDate schema.Date
}

type ServingUpdate struct {
	ID       ServingID
	Quantity schema.Quantity
}

type ServingRemove struct {
	ID ServingID
}

// ServingSelectWithFoods is a serving joined with the nutrient values of
// its food (per 100g).
type ServingSelectWithFoods struct {
	ID            ServingID       `json:"id"`
	Meal          schema.Meal     `json:"meal"`
	Quantity      schema.Quantity `json:"quantity"`
	FoodID        FoodID          `json:"food_id"`
	Name          string          `json:"name"`
	Brand         *string         `json:"brand"`
	Calories      schema.Quantity `json:"calories"`
	Fats          schema.Quantity `json:"fats"`
	Carbohydrates schema.Quantity `json:"carbohydrates"`
	Proteins      schema.Quantity `json:"proteins"`
}

var (
	ServingInsertCodec = schema.Codec[ServingRequest, ServingInsert, db.Serving]{
		Name:   "ServingInsert",
		Decode: DecodeServingInsert,
		Encode: EncodeServingInsert,
	}
	ServingUpdateCodec = schema.Codec[ServingUpdateRequest, ServingUpdate, db.Serving]{
		Name:   "ServingUpdate",
		Decode: DecodeServingUpdate,
		Encode: EncodeServingUpdate,
	}
	ServingRemoveCodec = schema.Codec[string, ServingRemove, db.Serving]{
		Name:   "ServingRemove",
		Decode: DecodeServingRemove,
		Encode: func(s ServingRemove) (db.Serving, error) {
			return db.Serving{ID: s.ID.Int64()}, nil
		},
	}
)

func DecodeServingInsert(req ServingRequest) (ServingInsert, error) {
	foodID, err := decodeKey[FoodEntity]("food_id", req.FoodID)
	if err != nil {
		return ServingInsert{}, err
	}
	qty, err := positiveQuantity("quantity", req.Quantity)
	if err != nil {
		return ServingInsert{}, err
	}
	meal, err := schema.ParseMeal(req.Meal)
	if err != nil {
		return ServingInsert{}, schema.At("meal", err)
	}
	date, err := schema.ParseDate(req.DailyLogDate)
	if err != nil {
		return ServingInsert{}, schema.At("daily_log_date", err)
	}
	return ServingInsert{FoodID: foodID, Quantity: qty, Meal: meal, DailyLogDate: date}, nil
}

func EncodeServingInsert(s ServingInsert) (db.Serving, error) {
	qty, err := encode("quantity", s.Quantity)
	if err != nil {
		return db.Serving{}, err
	}
	return db.Serving{
		Meal:         string(s.Meal),
		Quantity:     qty,
		FoodID:       s.FoodID.Int64(),
		DailyLogDate: s.DailyLogDate,
	}, nil
}

func DecodeServingUpdate(req ServingUpdateRequest) (ServingUpdate, error) {
	id, err := parseKey[ServingEntity](req.ID)
	if err != nil {
		return ServingUpdate{}, err
	}
	qty, err := positiveQuantity("quantity", req.Quantity)
	if err != nil {
		return ServingUpdate{}, err
	}
	return ServingUpdate{ID: id, Quantity: qty}, nil
}

func EncodeServingUpdate(s ServingUpdate) (db.Serving, error) {
	qty, err := encode("quantity", s.Quantity)
	if err != nil {
		return db.Serving{}, err
	}
	return db.Serving{ID: s.ID.Int64(), Quantity: qty}, nil
}

func DecodeServingRemove(id string) (ServingRemove, error) {
	key, err := parseKey[ServingEntity](id)
	if err != nil {
		return ServingRemove{}, err
	}
	return ServingRemove{ID: key}, nil
}

func DecodeServingSelectWithFoods(row db.ServingWithFood) (ServingSelectWithFoods, error) {
	id, err := storedKey[ServingEntity]("id", row.ID)
	if err != nil {
		return ServingSelectWithFoods{}, err
	}
	foodID, err := storedKey[FoodEntity]("food_id", row.FoodID)
	if err != nil {
		return ServingSelectWithFoods{}, err
	}
	meal, err := schema.ParseMeal(row.Meal)
	if err != nil {
		return ServingSelectWithFoods{}, schema.At("meal", err)
	}

	s := ServingSelectWithFoods{
		ID:     id,
		Meal:   meal,
		FoodID: foodID,
		Name:   row.Name,
		Brand:  normalizeBrand(row.Brand),
	}
	var c collector
	c.quantity(&s.Quantity, decode, "quantity", row.Quantity)
	c.quantity(&s.Calories, decode, "calories", row.Calories)
	c.quantity(&s.Fats, decode, "fats", row.Fats)
	c.quantity(&s.Carbohydrates, decode, "carbohydrates", row.Carbohydrates)
	c.quantity(&s.Proteins, decode, "proteins", row.Proteins)
	if c.err != nil {
		return ServingSelectWithFoods{}, c.err
	}
	return s, nil
}

func DecodeServings(rows []db.ServingWithFood) ([]ServingSelectWithFoods, error) {
	out := make([]ServingSelectWithFoods, 0, len(rows))
	for _, row := range rows {
		s, err := DecodeServingSelectWithFoods(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Totals are consumed amounts: sum of (value per 100g / 100) × grams.

func TotalCalories(servings []ServingSelectWithFoods) float64 {
	return total(servings, func(s ServingSelectWithFoods) schema.Quantity { return s.Calories })
}

func TotalFats(servings []ServingSelectWithFoods) float64 {
	return total(servings, func(s ServingSelectWithFoods) schema.Quantity { return s.Fats })
}

func TotalCarbohydrates(servings []ServingSelectWithFoods) float64 {
	return total(servings, func(s ServingSelectWithFoods) schema.Quantity { return s.Carbohydrates })
}

func TotalProteins(servings []ServingSelectWithFoods) float64 {
	return total(servings, func(s ServingSelectWithFoods) schema.Quantity { return s.Proteins })
}

func total(servings []ServingSelectWithFoods, per100 func(ServingSelectWithFoods) schema.Quantity) float64 {
	var sum float64
	for _, s := range servings {
		sum += per100(s).Float64() / 100 * s.Quantity.Float64()
	}
	return sum
}

// Totals groups the four daily totals.
type Totals struct {
	Calories      float64 `json:"calories"`
	Fats          float64 `json:"fats"`
	Carbohydrates float64 `json:"carbohydrates"`
	Proteins      float64 `json:"proteins"`
}

func TotalsOf(servings []ServingSelectWithFoods) Totals {
	return Totals{
		Calories:      TotalCalories(servings),
		Fats:          TotalFats(servings),
		Carbohydrates: TotalCarbohydrates(servings),
		Proteins:      TotalProteins(servings),
	}
}
