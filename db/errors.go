// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes.
const (
	pgUndefinedTable      = "42P01"
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// StorageError is returned when the storage engine rejects an operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// MigrationError is returned when a migration script, or the version
// read/write around it, fails. Version is the stored version at the time
// of the failure.
type MigrationError struct {
	Op      string
	Version int
	Err     error
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration %s (at version %d): %v", e.Op, e.Version, e.Err)
}

func (e *MigrationError) Unwrap() error { return e.Err }

// IsMissingTable reports whether err means the queried table does not
// exist yet.
func IsMissingTable(err error) bool {
	if err == nil {
		return false
	}
	if sqlstate(err) == pgUndefinedTable {
		return true
	}
	var se sqlite3.Error
	if errors.As(err, &se) {
		return strings.Contains(se.Error(), "no such table")
	}
	return strings.Contains(err.Error(), "no such table")
}

// IsUniqueViolation reports whether err is a unique constraint failure.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique || se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return sqlstate(err) == pgUniqueViolation
}

// IsForeignKeyViolation reports whether err is a foreign key failure.
func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return sqlstate(err) == pgForeignKeyViolation
}

// IsNotFound reports whether err means no matching row.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func sqlstate(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
