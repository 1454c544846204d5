// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the nutrilog API.

# Handler Types

Each handler is a struct holding the query service:

  - FoodHandler: Food catalogue (create, search, get, replace)
  - PlanHandler: Plans and the current plan
  - DailyLogHandler: Days bound to a plan, with servings and totals
  - ServingHandler: Servings of food eaten in a meal
  - SystemHandler: Schema version report

Handlers are created via constructor functions:

	foodHandler := handlers.NewFoodHandler(c.Query)

# Writes

Every write goes through query.Write with the entity codec from models.
The request is decoded to a domain value, encoded to its row and logged
before the ORM sees it. A decode failure never reaches storage:

	food, err := query.Write(ctx, h.q, models.FoodInsertCodec, req, insert)

# Errors

Failures are mapped to status codes in one place (writeError):

	validation error          → 400 with the offending field
	record not found          → 404
	unique or foreign key     → 409
	anything else             → 500

# Daily Logs

A serving logged on a day without a daily log starts one with the
current plan. With no current plan the serving is rejected on its
daily_log_date field. The first plan ever created becomes current.
*/
package handlers
