// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationFS embed.FS

// Script is one step of schema change. Its position in the catalogue is
// its version: after script i has run the database is at version i+1.
type Script struct {
	Name string
	SQL  string
}

// Scripts returns the embedded migration catalogue for a dialect, ordered
// by file name. New steps are appended as NNNN_name.sql; existing files
// are never edited or removed.
func Scripts(dialect Dialect) ([]Script, error) {
	dir := path.Join("migrations", string(dialect))
	entries, err := fs.ReadDir(migrationFS, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations for %s: %w", dialect, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	scripts := make([]Script, 0, len(names))
	for i, name := range names {
		if want := fmt.Sprintf("%04d_", i); !strings.HasPrefix(name, want) {
			return nil, fmt.Errorf("migration %s: expected prefix %s (catalogue must be contiguous)", name, want)
		}
		body, err := fs.ReadFile(migrationFS, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		scripts = append(scripts, Script{
			Name: strings.TrimSuffix(name, ".sql"),
			SQL:  string(body),
		})
	}
	return scripts, nil
}
