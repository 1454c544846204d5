// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package query wraps single storage operations: decode, encode, log,
// execute, and report failures as *query.Error.
package query
