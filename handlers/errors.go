// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"gorm.io/gorm"

	"github.com/danielhkuo/nutrilog/db"
	"github.com/danielhkuo/nutrilog/middleware"
	"github.com/danielhkuo/nutrilog/schema"
)

// writeError maps a query failure to a status code. what names the
// record for 404 and 409 messages ("Food", "Plan").
func writeError(w http.ResponseWriter, r *http.Request, err error, what string) {
	var ve *schema.ValidationError
	switch {
	case errors.As(err, &ve):
		middleware.FieldErrorResponse(w, http.StatusBadRequest, ve.Field(), ve.Message)
	case db.IsNotFound(err):
		middleware.ErrorResponse(w, http.StatusNotFound, what+" not found")
	case db.IsUniqueViolation(err):
		middleware.ErrorResponse(w, http.StatusConflict, what+" already exists")
	case db.IsForeignKeyViolation(err):
		middleware.ErrorResponse(w, http.StatusConflict, what+" references a missing record or is still referenced")
	default:
		slog.Error("query failed",
			"error", err,
			"path", r.URL.Path,
			"request_id", middleware.RequestID(r.Context()),
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// requireAffected turns an update or delete that matched nothing into
// gorm.ErrRecordNotFound.
func requireAffected(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
