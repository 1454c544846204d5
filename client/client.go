// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danielhkuo/nutrilog/db"
	"github.com/danielhkuo/nutrilog/query"
)

// Client is the process-lifetime handle. It owns the storage connection,
// has run the migrations, and exposes the query service.
type Client struct {
	Storage *db.Storage
	Runner  *db.Runner
	Query   *query.Service
	log     *slog.Logger
}

type config struct {
	driver   string
	log      *slog.Logger
	registry prometheus.Registerer
	scripts  []db.Script
}

type Option func(*config)

// WithDriver selects the database driver (db.DriverSQLite by default).
func WithDriver(driver string) Option {
	return func(c *config) { c.driver = driver }
}

func WithLogger(log *slog.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithRegisterer enables Prometheus metrics for the query service.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *config) { c.registry = reg }
}

// WithScripts replaces the embedded migration catalogue.
func WithScripts(scripts []db.Script) Option {
	return func(c *config) { c.scripts = scripts }
}

// New opens the storage identified by name, brings its schema up to date
// and builds the query service, in that order. On failure everything
// acquired so far is released. A migration failure is returned as
// *db.MigrationError.
func New(ctx context.Context, name string, opts ...Option) (*Client, error) {
	cfg := config{driver: db.DriverSQLite}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = slog.Default()
	}

	st, err := db.Open(ctx, cfg.driver, name, cfg.log)
	if err != nil {
		return nil, err
	}

	c, err := build(ctx, st, cfg)
	if err != nil {
		return nil, errors.Join(err, st.Close())
	}
	return c, nil
}

func build(ctx context.Context, st *db.Storage, cfg config) (*Client, error) {
	scripts := cfg.scripts
	if scripts == nil {
		var err error
		if scripts, err = db.Scripts(st.Dialect); err != nil {
			return nil, err
		}
	}

	runner := db.NewRunner(st.SQL, st.ORM, scripts, cfg.log)
	if err := runner.Apply(ctx); err != nil {
		return nil, err
	}

	opts := []query.Option{query.WithLogger(cfg.log)}
	if cfg.registry != nil {
		rec, err := query.NewPrometheusRecorder(cfg.registry)
		if err != nil {
			return nil, err
		}
		opts = append(opts, query.WithRecorder(rec))
	}

	return &Client{
		Storage: st,
		Runner:  runner,
		Query:   query.NewService(st.ORM, opts...),
		log:     cfg.log,
	}, nil
}

// Close releases the storage handle. It is safe to call more than once.
func (c *Client) Close() error {
	if c == nil || c.Storage == nil {
		return nil
	}
	err := c.Storage.Close()
	c.Storage = nil
	if err == nil {
		c.log.Info("storage closed")
	}
	return err
}
