// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client builds the process-lifetime handle.

	c, err := client.New(ctx, cfg.DatabaseURL,
		client.WithDriver(cfg.DatabaseType),
		client.WithLogger(logger),
	)
	if err != nil {
		return err // *db.MigrationError when the schema could not be brought up to date
	}
	defer c.Close()

Construction opens storage, applies migrations, then creates the query
service. No query runs against a schema that is behind.
*/
package client
