// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/danielhkuo/nutrilog/db"
	"github.com/danielhkuo/nutrilog/schema"
)

// Error is the single error type surfaced by the service. Err is the
// original cause: a *schema.ValidationError or a *db.StorageError.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("query %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Service runs storage operations against the ORM handle.
type Service struct {
	orm     *gorm.DB
	log     *slog.Logger
	metrics Recorder
}

type Option func(*Service)

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.metrics = r
		}
	}
}

func NewService(orm *gorm.DB, opts ...Option) *Service {
	s := &Service{
		orm:     orm,
		log:     slog.Default(),
		metrics: noopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Query runs fn against the ORM without the transform pipeline. Use it
// for reads and for composite writes (wrap those in tx.Transaction).
func (s *Service) Query(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	start := time.Now()
	err := fn(s.orm.WithContext(ctx))
	s.metrics.Observe(ctx, op, err == nil, time.Since(start))
	if err != nil {
		return &Error{Op: op, Err: storageError(op, err)}
	}
	return nil
}

// Read is Query for functions that produce a value.
func Read[T any](ctx context.Context, s *Service, op string, fn func(tx *gorm.DB) (T, error)) (T, error) {
	var out T
	err := s.Query(ctx, op, func(tx *gorm.DB) error {
		v, err := fn(tx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

// Write decodes in, encodes the result to its row, logs the row and hands
// it to fn. Nothing is logged or executed unless both transforms succeed.
// fn receives a pointer so generated keys land in the row. Write returns
// the decoded value.
func Write[I, D, R any](ctx context.Context, s *Service, codec schema.Codec[I, D, R], in I, fn func(tx *gorm.DB, row *R) error) (D, error) {
	op := codec.Name
	decoded, row, err := codec.Transform(in)
	if err != nil {
		var zero D
		s.metrics.Observe(ctx, op, false, 0)
		return zero, &Error{Op: op, Err: err}
	}

	payload, err := json.Marshal(row)
	if err != nil {
		var zero D
		return zero, &Error{Op: op, Err: fmt.Errorf("marshal payload: %w", err)}
	}
	s.log.Info("write", "op", op, "payload", string(payload))

	err = s.Query(ctx, op, func(tx *gorm.DB) error {
		return fn(tx, &row)
	})
	if err != nil {
		var zero D
		return zero, err
	}
	return decoded, nil
}

// storageError keeps typed causes and wraps everything else reported by
// the executor.
func storageError(op string, err error) error {
	var se *db.StorageError
	if errors.As(err, &se) || schema.IsValidation(err) {
		return err
	}
	return &db.StorageError{Op: op, Err: err}
}
