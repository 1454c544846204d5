// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	_ "github.com/lib/pq"              // registers the "postgres" database/sql driver
	_ "github.com/mattn/go-sqlite3"    // registers the "sqlite3" database/sql driver
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialect selects the SQL flavor of the migration catalogue.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Driver names accepted by Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres" // lib/pq
	DriverPgx      = "pgx"      // jackc/pgx stdlib
)

// MemoryName opens a private in-memory SQLite database.
const MemoryName = ":memory:"

// sqliteParams are applied by the driver to every connection it opens.
var sqliteParams = []string{
	"_foreign_keys=on",
	"_busy_timeout=5000",
}

// Storage is the process-wide storage handle: the raw SQL connection used
// for migration scripts and the ORM layered on the same connection.
type Storage struct {
	SQL     *sql.DB
	ORM     *gorm.DB
	Dialect Dialect
	Name    string
}

// Open connects to the storage identified by name. For SQLite, name is a
// local namespace ("v1" -> "v1.db"), a file path, or MemoryName. For the
// Postgres drivers it is a DSN.
func Open(ctx context.Context, driver, name string, log *slog.Logger) (*Storage, error) {
	if log == nil {
		log = slog.Default()
	}
	if name == "" {
		return nil, fmt.Errorf("open storage: empty name")
	}

	var (
		sqlDriver string
		dsn       string
		dialect   Dialect
	)
	switch driver {
	case "", DriverSQLite:
		path, err := sqlitePath(name)
		if err != nil {
			return nil, err
		}
		sqlDriver, dsn, dialect = "sqlite3", sqliteDSN(path), DialectSQLite
	case DriverPostgres, DriverPgx:
		sqlDriver, dsn, dialect = driver, name, DialectPostgres
	default:
		return nil, fmt.Errorf("open storage: unknown driver %q", driver)
	}

	conn, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	// Single writer, single connection. This also keeps an in-memory
	// SQLite database alive for the life of the handle.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping storage: %w", err)
	}

	var dialector gorm.Dialector
	if dialect == DialectSQLite {
		dialector = &sqlite.Dialector{Conn: conn}
	} else {
		dialector = postgres.New(postgres.Config{Conn: conn})
	}

	orm, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 newGormLogger(log),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open orm: %w", err)
	}

	log.Debug("storage opened", "driver", sqlDriver, "dialect", dialect, "name", name)

	return &Storage{
		SQL:     conn,
		ORM:     orm,
		Dialect: dialect,
		Name:    name,
	}, nil
}

// Close releases the connection shared by SQL and ORM.
func (s *Storage) Close() error {
	if s == nil || s.SQL == nil {
		return nil
	}
	return s.SQL.Close()
}

// sqlitePath resolves a storage namespace to a database file. A bare name
// such as "v1" becomes "v1.db" in the working directory.
func sqlitePath(name string) (string, error) {
	if name == MemoryName || strings.HasPrefix(name, "file:") {
		return name, nil
	}
	path := name
	if filepath.Ext(path) == "" && !strings.ContainsRune(path, filepath.Separator) {
		path += ".db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", fmt.Errorf("open storage: create parent dir: %w", err)
		}
	}
	return path, nil
}

// sqliteDSN appends the connection parameters to a database path.
func sqliteDSN(path string) string {
	params := sqliteParams
	// WAL has no meaning for an in-memory database.
	if path != MemoryName {
		params = append(params[:len(params):len(params)], "_journal_mode=WAL")
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(params, "&")
}

// gormWriter routes gorm's own diagnostics into slog.
type gormWriter struct {
	log *slog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Debug(fmt.Sprintf(format, args...), "component", "orm")
}

func newGormLogger(log *slog.Logger) logger.Interface {
	return logger.New(gormWriter{log: log}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
