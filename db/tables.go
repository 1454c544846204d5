// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "github.com/danielhkuo/nutrilog/schema"

// Row types mirror the tables created by the migration catalogue. Numeric
// nutrient columns hold the stored (x10) magnitude.

type Food struct {
	ID            int64    `gorm:"column:id;primaryKey;autoIncrement"`
	Name          string   `gorm:"column:name"`
	Brand         *string  `gorm:"column:brand"`
	Calories      float64  `gorm:"column:calories"`
	Fats          float64  `gorm:"column:fats"`
	FatsSaturated *float64 `gorm:"column:fats_saturated;default:0"`
	Salt          *float64 `gorm:"column:salt;default:0"`
	Carbohydrates float64  `gorm:"column:carbohydrates"`
	Fibers        *float64 `gorm:"column:fibers;default:0"`
	Sugars        *float64 `gorm:"column:sugars;default:0"`
	Proteins      float64  `gorm:"column:proteins"`
}

func (Food) TableName() string { return "food" }

// UpdateColumns lists the columns an update should write: every required
// column plus the optional ones that are present.
func (f Food) UpdateColumns() []string {
	cols := []string{"name", "brand", "calories", "fats", "carbohydrates", "proteins"}
	optional := []struct {
		name  string
		value *float64
	}{
		{"fats_saturated", f.FatsSaturated},
		{"salt", f.Salt},
		{"fibers", f.Fibers},
		{"sugars", f.Sugars},
	}
	for _, o := range optional {
		if o.value != nil {
			cols = append(cols, o.name)
		}
	}
	return cols
}

type Serving struct {
	ID           int64       `gorm:"column:id;primaryKey;autoIncrement"`
	Meal         string      `gorm:"column:meal"`
	Quantity     float64     `gorm:"column:quantity"`
	FoodID       int64       `gorm:"column:food_id"`
	DailyLogDate schema.Date `gorm:"column:daily_log_date"`
}

func (Serving) TableName() string { return "serving" }

// ServingWithFood is a serving joined with the food it refers to.
type ServingWithFood struct {
	ID            int64   `gorm:"column:id"`
	Meal          string  `gorm:"column:meal"`
	Quantity      float64 `gorm:"column:quantity"`
	FoodID        int64   `gorm:"column:food_id"`
	Name          string  `gorm:"column:name"`
	Brand         *string `gorm:"column:brand"`
	Calories      float64 `gorm:"column:calories"`
	Fats          float64 `gorm:"column:fats"`
	Carbohydrates float64 `gorm:"column:carbohydrates"`
	Proteins      float64 `gorm:"column:proteins"`
}

type Plan struct {
	ID                 int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Calories           float64 `gorm:"column:calories"`
	FatsRatio          float64 `gorm:"column:fats_ratio"`
	CarbohydratesRatio float64 `gorm:"column:carbohydrates_ratio"`
	ProteinsRatio      float64 `gorm:"column:proteins_ratio"`
	IsCurrent          bool    `gorm:"column:is_current"`
}

func (Plan) TableName() string { return "plan" }

// PlanWithLogs is a plan plus the number of daily logs that use it.
type PlanWithLogs struct {
	Plan
	Logs int64 `gorm:"column:logs"`
}

type DailyLog struct {
	Date   schema.Date `gorm:"column:date;primaryKey"`
	PlanID int64       `gorm:"column:plan_id"`
}

func (DailyLog) TableName() string { return "daily_log" }

// System is the single-row table holding the migration version.
type System struct {
	Version int `gorm:"column:version"`
}

func (System) TableName() string { return "system" }
