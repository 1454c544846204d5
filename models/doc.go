// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain records and their codecs.

Every write goes through a schema.Codec: the request is decoded into a
validated record, which is then encoded into a db row.

	_, row, err := models.FoodInsertCodec.Transform(req)

# Request Types

Types for parsing incoming JSON (human-facing magnitudes):

  - FoodRequest / FoodUpdateRequest
  - ServingRequest / ServingUpdateRequest
  - PlanRequest / PlanUpdateRequest
  - DailyLogRequest

# Records

  - FoodInsert, FoodUpdate, FoodSelect
  - ServingInsert, ServingUpdate, ServingRemove, ServingSelectWithFoods
  - PlanInsert, PlanUpdate, PlanRemove, PlanSelectDaily, PlanSelectWithLogs
  - DailyLogInsert, DailyLogUpdate, DailyLogSelect

# Keys

FoodID, ServingID and PlanID are schema.Key values tagged with
FoodEntity, ServingEntity and PlanEntity.

# Totals

	TotalCalories(servings) = Σ calories/100 × quantity

and likewise for fats, carbohydrates and proteins.

# Response Types

  - CreatedResponse: id
  - DailyLogResponse: date, plan, servings, totals
  - SystemResponse: version, latest, dialect
  - ErrorResponse: error, message, field
*/
package models
