// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite namespace or path, or Postgres DSN (default: v1)
  - DatabaseType: sqlite, postgres (lib/pq) or pgx (default: sqlite)
  - LogLevel: debug, info, warn or error (default: info)
  - LogFormat: text or json (default: text)
  - LogFile: optional rotated log file
  - EnvFile: dotenv file (default: .env)

# CLI Flags

	-p           Server port
	-d           Storage name
	-t           Database type
	-log-level   Log level
	-log-format  Log format
	-log-file    Log file
	-env-file    Dotenv file

# Environment Variables

Flags fall back to environment variables:

	PORT                     → -p
	DATABASE_URL, INDEX_DB   → -d
	DATABASE_TYPE            → -t
	LOG_LEVEL                → -log-level
	LOG_FORMAT               → -log-format
	LOG_FILE                 → -log-file

CLI flags take precedence over environment variables, and variables
already set in the process take precedence over the dotenv file.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	c, err := client.New(ctx, cfg.DatabaseURL, client.WithDriver(cfg.DatabaseType))
	// ...
	mux := router.NewRouter(c)
*/
package cliparse
