// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"gorm.io/gorm"

	"github.com/danielhkuo/nutrilog/db"
	"github.com/danielhkuo/nutrilog/middleware"
	"github.com/danielhkuo/nutrilog/models"
	"github.com/danielhkuo/nutrilog/query"
	"github.com/danielhkuo/nutrilog/schema"
)

// NoCurrentPlanMessage is returned when a serving is logged on a day with
// no daily log and there is no current plan to start one with.
const NoCurrentPlanMessage = "No current plan to start the daily log with"

type ServingHandler struct {
	q *query.Service
}

func NewServingHandler(q *query.Service) *ServingHandler {
	return &ServingHandler{q: q}
}

// CreateServing handles POST /servings
// A serving on a day without a daily log starts one with the current plan.
func (h *ServingHandler) CreateServing(w http.ResponseWriter, r *http.Request) {
	var req models.ServingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var id int64
	serving, err := query.Write(r.Context(), h.q, models.ServingInsertCodec, req, func(tx *gorm.DB, row *db.Serving) error {
		return tx.Transaction(func(tx *gorm.DB) error {
			if err := ensureDailyLog(tx, row.DailyLogDate); err != nil {
				return err
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			id = row.ID
			return nil
		})
	})
	if err != nil {
		writeError(w, r, err, "Serving")
		return
	}

	slog.Info("serving created",
		"serving_id", id,
		"food_id", serving.FoodID,
		"meal", serving.Meal,
		"date", models.FormatDate(serving.DailyLogDate),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{ID: id})
}

// UpdateServing handles PUT /servings/{id}
func (h *ServingHandler) UpdateServing(w http.ResponseWriter, r *http.Request) {
	req := models.ServingUpdateRequest{ID: r.PathValue("id")}
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	serving, err := query.Write(r.Context(), h.q, models.ServingUpdateCodec, req, func(tx *gorm.DB, row *db.Serving) error {
		return requireAffected(tx.Model(&db.Serving{}).
			Where("id = ?", row.ID).
			Update("quantity", row.Quantity))
	})
	if err != nil {
		writeError(w, r, err, "Serving")
		return
	}

	slog.Info("serving updated", "serving_id", serving.ID)

	w.WriteHeader(http.StatusNoContent)
}

// DeleteServing handles DELETE /servings/{id}
func (h *ServingHandler) DeleteServing(w http.ResponseWriter, r *http.Request) {
	serving, err := query.Write(r.Context(), h.q, models.ServingRemoveCodec, r.PathValue("id"), func(tx *gorm.DB, row *db.Serving) error {
		return requireAffected(tx.Delete(&db.Serving{}, row.ID))
	})
	if err != nil {
		writeError(w, r, err, "Serving")
		return
	}

	slog.Info("serving removed", "serving_id", serving.ID)

	w.WriteHeader(http.StatusNoContent)
}

func ensureDailyLog(tx *gorm.DB, date schema.Date) error {
	var n int64
	if err := tx.Model(&db.DailyLog{}).Where("date = ?", date).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	plan, err := currentPlan(tx)
	if db.IsNotFound(err) {
		return &schema.ValidationError{Path: []string{"daily_log_date"}, Message: NoCurrentPlanMessage}
	}
	if err != nil {
		return err
	}
	return tx.Create(&db.DailyLog{Date: date, PlanID: plan.ID}).Error
}
