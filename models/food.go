// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strings"

	"github.com/danielhkuo/nutrilog/db"
	"github.com/danielhkuo/nutrilog/schema"
)

// FoodRequest is the JSON body of a food create or update. Values are per
// 100g at their human-facing magnitude.
type FoodRequest struct {
	Name          string   `json:"name"`
	Brand         *string  `json:"brand,omitempty"`
	Calories      float64  `json:"calories"`
	Carbohydrates float64  `json:"carbohydrates"`
	Proteins      float64  `json:"proteins"`
	Fats          float64  `json:"fats"`
	FatsSaturated *float64 `json:"fats_saturated,omitempty"`
	Salt          *float64 `json:"salt,omitempty"`
	Fibers        *float64 `json:"fibers,omitempty"`
	Sugars        *float64 `json:"sugars,omitempty"`
}

// FoodUpdateRequest carries the food id taken from the URL path.
type FoodUpdateRequest struct {
	ID string `json:"-"`
	FoodRequest
}

// FoodInsert is a validated new food.
type FoodInsert struct {
	Name          string
	Brand         string
	Calories      schema.Quantity
	Carbohydrates schema.Quantity
	Proteins      schema.Quantity
	Fats          schema.Quantity
	FatsSaturated *schema.Quantity
	Salt          *schema.Quantity
	Fibers        *schema.Quantity
	Sugars        *schema.Quantity
}

// FoodUpdate is a validated replacement of an existing food.
type FoodUpdate struct {
	ID FoodID
	FoodInsert
}

// FoodSelect is a food as read back from storage.
type FoodSelect struct {
	ID            FoodID           `json:"id"`
	Name          string           `json:"name"`
	Brand         *string          `json:"brand"`
	Calories      schema.Quantity  `json:"calories"`
	Carbohydrates schema.Quantity  `json:"carbohydrates"`
	Proteins      schema.Quantity  `json:"proteins"`
	Fats          schema.Quantity  `json:"fats"`
	FatsSaturated *schema.Quantity `json:"fats_saturated,omitempty"`
	Salt          *schema.Quantity `json:"salt,omitempty"`
	Fibers        *schema.Quantity `json:"fibers,omitempty"`
	Sugars        *schema.Quantity `json:"sugars,omitempty"`
}

var (
	FoodInsertCodec = schema.Codec[FoodRequest, FoodInsert, db.Food]{
		Name:   "FoodInsert",
		Decode: DecodeFoodInsert,
		Encode: EncodeFoodInsert,
	}
	FoodUpdateCodec = schema.Codec[FoodUpdateRequest, FoodUpdate, db.Food]{
		Name:   "FoodUpdate",
		Decode: DecodeFoodUpdate,
		Encode: EncodeFoodUpdate,
	}
)

// DecodeFoodInsert validates a new food. Calories go through the positive
// check, which lets zero through.
func DecodeFoodInsert(req FoodRequest) (FoodInsert, error) {
	return decodeFood(req, positiveQuantity)
}

// DecodeFoodUpdate validates an update. Calories skip the positive check.
func DecodeFoodUpdate(req FoodUpdateRequest) (FoodUpdate, error) {
	id, err := parseKey[FoodEntity](req.ID)
	if err != nil {
		return FoodUpdate{}, err
	}
	f, err := decodeFood(req.FoodRequest, quantity)
	if err != nil {
		return FoodUpdate{}, err
	}
	return FoodUpdate{ID: id, FoodInsert: f}, nil
}

func decodeFood(req FoodRequest, calories func(string, float64) (schema.Quantity, error)) (FoodInsert, error) {
	name, err := schema.NonEmptyString(req.Name)
	if err != nil {
		return FoodInsert{}, schema.At("name", err)
	}

	f := FoodInsert{
		Name:  name,
		Brand: schema.DecodeEmptyString(req.Brand),
	}
	var c collector
	c.quantity(&f.Calories, calories, "calories", req.Calories)
	c.quantity(&f.Carbohydrates, quantity, "carbohydrates", req.Carbohydrates)
	c.quantity(&f.Proteins, quantity, "proteins", req.Proteins)
	c.quantity(&f.Fats, quantity, "fats", req.Fats)
	c.optional(&f.FatsSaturated, optionalQuantity, "fats_saturated", req.FatsSaturated)
	c.optional(&f.Salt, optionalQuantity, "salt", req.Salt)
	c.optional(&f.Fibers, optionalQuantity, "fibers", req.Fibers)
	c.optional(&f.Sugars, optionalQuantity, "sugars", req.Sugars)
	if c.err != nil {
		return FoodInsert{}, c.err
	}
	return f, nil
}

// EncodeFoodInsert lowers a food to its row. A blank brand is stored as NULL.
func EncodeFoodInsert(f FoodInsert) (db.Food, error) {
	row := db.Food{
		Name:  f.Name,
		Brand: schema.EncodeEmptyString(f.Brand),
	}
	var c collector
	c.raw(&row.Calories, "calories", f.Calories)
	c.raw(&row.Carbohydrates, "carbohydrates", f.Carbohydrates)
	c.raw(&row.Proteins, "proteins", f.Proteins)
	c.raw(&row.Fats, "fats", f.Fats)
	c.rawOptional(&row.FatsSaturated, "fats_saturated", f.FatsSaturated)
	c.rawOptional(&row.Salt, "salt", f.Salt)
	c.rawOptional(&row.Fibers, "fibers", f.Fibers)
	c.rawOptional(&row.Sugars, "sugars", f.Sugars)
	if c.err != nil {
		return db.Food{}, c.err
	}
	return row, nil
}

func EncodeFoodUpdate(f FoodUpdate) (db.Food, error) {
	row, err := EncodeFoodInsert(f.FoodInsert)
	if err != nil {
		return db.Food{}, err
	}
	row.ID = f.ID.Int64()
	return row, nil
}

// DecodeFoodSelect reads a stored food. A blank stored brand reads as null.
func DecodeFoodSelect(row db.Food) (FoodSelect, error) {
	id, err := storedKey[FoodEntity]("id", row.ID)
	if err != nil {
		return FoodSelect{}, err
	}
	name, err := schema.NonEmptyString(row.Name)
	if err != nil {
		return FoodSelect{}, schema.At("name", err)
	}

	f := FoodSelect{ID: id, Name: name, Brand: normalizeBrand(row.Brand)}
	var c collector
	c.quantity(&f.Calories, decode, "calories", row.Calories)
	c.quantity(&f.Carbohydrates, decode, "carbohydrates", row.Carbohydrates)
	c.quantity(&f.Proteins, decode, "proteins", row.Proteins)
	c.quantity(&f.Fats, decode, "fats", row.Fats)
	c.optional(&f.FatsSaturated, decodeOptional, "fats_saturated", row.FatsSaturated)
	c.optional(&f.Salt, decodeOptional, "salt", row.Salt)
	c.optional(&f.Fibers, decodeOptional, "fibers", row.Fibers)
	c.optional(&f.Sugars, decodeOptional, "sugars", row.Sugars)
	if c.err != nil {
		return FoodSelect{}, c.err
	}
	return f, nil
}

func normalizeBrand(brand *string) *string {
	if brand == nil || strings.TrimSpace(*brand) == "" {
		return nil
	}
	return brand
}

// DecodeFoods decodes a list of rows, stopping at the first bad row.
func DecodeFoods(rows []db.Food) ([]FoodSelect, error) {
	out := make([]FoodSelect, 0, len(rows))
	for _, row := range rows {
		f, err := DecodeFoodSelect(row)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
