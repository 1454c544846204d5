// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// Executor runs raw SQL text. *sql.DB satisfies it.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Runner brings the database up to the latest script in its catalogue.
//
// The stored version is the number of scripts applied so far. Scripts
// below it are never run again, which makes Apply safe to repeat after a
// failure has been fixed.
type Runner struct {
	exec    Executor
	orm     *gorm.DB
	scripts []Script
	log     *slog.Logger
}

func NewRunner(exec Executor, orm *gorm.DB, scripts []Script, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{exec: exec, orm: orm, scripts: scripts, log: log}
}

// Latest is the version the database reaches once every script has run.
func (r *Runner) Latest() int { return len(r.scripts) }

// Version returns the stored version. A database without the system
// table or its row reports 0.
func (r *Runner) Version(ctx context.Context) (int, error) {
	version, _, err := r.readVersion(ctx)
	return version, err
}

// Apply runs every pending script in order, then records the latest
// version. On failure the stored version is left untouched.
func (r *Runner) Apply(ctx context.Context) error {
	version, initialized, err := r.readVersion(ctx)
	if err != nil {
		return &MigrationError{Op: "read version", Version: version, Err: err}
	}

	latest := r.Latest()
	if version > latest {
		return &MigrationError{
			Op:      "read version",
			Version: version,
			Err:     fmt.Errorf("database is at version %d but only %d migrations are known", version, latest),
		}
	}

	for i := version; i < latest; i++ {
		script := r.scripts[i]
		r.log.Debug("applying migration", "index", i, "name", script.Name)
		if _, err := r.exec.ExecContext(ctx, script.SQL); err != nil {
			return &MigrationError{Op: "apply " + script.Name, Version: version, Err: err}
		}
	}

	err = r.orm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !initialized {
			if err := tx.Create(&System{Version: 0}).Error; err != nil {
				return fmt.Errorf("insert version row: %w", err)
			}
		}
		res := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Model(&System{}).
			Update("version", latest)
		if res.Error != nil {
			return fmt.Errorf("update version: %w", res.Error)
		}
		return nil
	})
	if err != nil {
		return &MigrationError{Op: "write version", Version: version, Err: err}
	}

	if version == latest {
		r.log.Info("Database up to date", "version", latest)
	} else {
		r.log.Info(fmt.Sprintf("Migrations done (from %d to %d)", version, latest), "from", version, "to", latest)
	}
	return nil
}

// readVersion reports the stored version and whether the version row
// exists. A missing system table means no script has run yet.
func (r *Runner) readVersion(ctx context.Context) (int, bool, error) {
	var rows []System
	err := r.orm.WithContext(ctx).Limit(1).Find(&rows).Error
	if err != nil {
		if IsMissingTable(err) {
			return 0, false, nil
		}
		return 0, false, &StorageError{Op: "select system", Err: err}
	}
	if len(rows) == 0 {
		return 0, false, nil
	}
	return rows[0].Version, true, nil
}
