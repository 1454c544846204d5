// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the nutrilog API server.

nutrilog tracks what you eat against a daily nutrition plan: a catalogue
of foods (values per 100g), plans with a calorie target and macro ratios,
daily logs that follow a plan, and servings of food eaten in each meal.

# Starting the Server

With no configuration the server stores everything in ./v1.db (SQLite):

	go run .

Or against Postgres:

	DATABASE_TYPE=pgx DATABASE_URL=postgres://... go run .

# Configuration

Flags win over environment variables, which win over the .env file:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL or INDEX_DB (-d): SQLite namespace/path or Postgres DSN (default: v1)
  - DATABASE_TYPE (-t): sqlite, postgres (lib/pq) or pgx (default: sqlite)
  - LOG_LEVEL (-log-level), LOG_FORMAT (-log-format), LOG_FILE (-log-file)

# Startup

The client opens storage, applies pending migrations and only then builds
the query service. A failed migration stops the process before it serves
any request.

# Architecture

  - schema: value transforms (quantities, keys, meals, dates, ratios)
  - models: request, domain and row codecs per entity
  - db: storage handle, embedded migration catalogue and runner
  - query: logged, metered query service over the ORM
  - client: process-lifetime owner of storage, runner and service
  - handlers, router, middleware: HTTP surface
  - cliparse: configuration parsing
*/
package main
