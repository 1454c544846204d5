// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the nutrilog API.

# Route Registration

NewRouter creates a configured http.ServeMux backed by a migrated client:

	mux := router.NewRouter(c)

# Endpoints

Operations:

	GET /health  - Liveness
	GET /metrics - Prometheus exposition
	GET /system  - Schema version, latest version and dialect

Foods (values per 100g):

	POST /foods      - Create food
	GET  /foods?q=   - Search by name
	GET  /foods/{id} - Get food
	PUT  /foods/{id} - Replace food

Plans:

	POST   /plans              - Create plan (first one becomes current)
	GET    /plans              - List plans with daily log counts
	GET    /plans/current      - Current plan
	PUT    /plans/{id}         - Replace targets
	DELETE /plans/{id}         - Remove unused plan
	POST   /plans/{id}/current - Make plan current

Daily logs and servings:

	POST /daily-logs          - Start a day on a plan
	GET  /daily-logs/{date}   - Day with servings and totals
	PUT  /daily-logs/{date}   - Move a day to another plan
	POST   /servings          - Log a serving
	PUT    /servings/{id}     - Change quantity
	DELETE /servings/{id}     - Remove serving

Every API route is wrapped in middleware.WithLogging.
*/
package router
