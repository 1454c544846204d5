// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns the storage handle and the schema migrations.

# Opening Storage

Open connects to SQLite (default) or Postgres and layers gorm on the same
connection:

	st, err := db.Open(ctx, db.DriverSQLite, "v1", logger) // ./v1.db
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

Drivers: "sqlite" (mattn/go-sqlite3), "postgres" (lib/pq), "pgx"
(jackc/pgx). The connection pool is capped at one connection.

# Migrations

Scripts live in migrations/<dialect>/NNNN_name.sql and are embedded at
build time. The system table holds one integer: how many scripts have run.

	scripts, _ := db.Scripts(st.Dialect)
	runner := db.NewRunner(st.SQL, st.ORM, scripts, logger)
	if err := runner.Apply(ctx); err != nil {
		log.Fatal(err) // *db.MigrationError
	}

Apply is idempotent: scripts below the stored version are skipped, and a
run with nothing pending logs "Database up to date".

# Tables

  - food: nutrient values per 100g
  - plan: daily calorie target and macro ratios
  - daily_log: which plan a calendar day follows
  - serving: a quantity of a food eaten in a meal on a day
  - system: migration version (single row)

# Relationships

	plan 1──* daily_log
	daily_log 1──* serving
	food 1──* serving

Nutrient and ratio columns store ten times the displayed value.
*/
package db
