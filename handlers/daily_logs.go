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

type DailyLogHandler struct {
	q *query.Service
}

func NewDailyLogHandler(q *query.Service) *DailyLogHandler {
	return &DailyLogHandler{q: q}
}

// CreateDailyLog handles POST /daily-logs
func (h *DailyLogHandler) CreateDailyLog(w http.ResponseWriter, r *http.Request) {
	var req models.DailyLogRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	log, err := query.Write(r.Context(), h.q, models.DailyLogInsertCodec, req, func(tx *gorm.DB, row *db.DailyLog) error {
		return tx.Create(row).Error
	})
	if err != nil {
		writeError(w, r, err, "Daily log")
		return
	}

	slog.Info("daily log created", "date", models.FormatDate(log.Date), "plan_id", log.PlanID)

	middleware.JSONResponse(w, http.StatusCreated, models.DailyLogCreatedResponse{Date: models.FormatDate(log.Date)})
}

// GetDailyLog handles GET /daily-logs/{date}
// Returns the plan, the servings with their foods, and the day's totals.
func (h *DailyLogHandler) GetDailyLog(w http.ResponseWriter, r *http.Request) {
	date, err := schema.ParseDate(r.PathValue("date"))
	if err != nil {
		writeError(w, r, schema.At("date", err), "Daily log")
		return
	}

	type day struct {
		plan     db.Plan
		servings []db.ServingWithFood
	}

	d, err := query.Read(r.Context(), h.q, "daily_log.get", func(tx *gorm.DB) (day, error) {
		var d day
		var log db.DailyLog
		if err := tx.Where("date = ?", date).First(&log).Error; err != nil {
			return d, err
		}
		if err := tx.First(&d.plan, log.PlanID).Error; err != nil {
			return d, err
		}
		err := tx.Table("serving").
			Select("serving.id, serving.meal, serving.quantity, serving.food_id, " +
				"food.name, food.brand, food.calories, food.fats, food.carbohydrates, food.proteins").
			Joins("JOIN food ON food.id = serving.food_id").
			Where("serving.daily_log_date = ?", date).
			Order("serving.id").
			Scan(&d.servings).Error
		return d, err
	})
	if err != nil {
		writeError(w, r, err, "Daily log")
		return
	}

	plan, err := models.DecodePlanSelectDaily(d.plan)
	if err != nil {
		writeError(w, r, err, "Plan")
		return
	}
	servings, err := models.DecodeServings(d.servings)
	if err != nil {
		writeError(w, r, err, "Serving")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DailyLogResponse{
		Date:     models.FormatDate(date),
		Plan:     plan,
		Servings: servings,
		Totals:   models.TotalsOf(servings),
	})
}

// UpdateDailyLog handles PUT /daily-logs/{date}
// Moves the day to another plan.
func (h *DailyLogHandler) UpdateDailyLog(w http.ResponseWriter, r *http.Request) {
	var req models.DailyLogRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	req.Date = r.PathValue("date")

	log, err := query.Write(r.Context(), h.q, models.DailyLogUpdateCodec, req, func(tx *gorm.DB, row *db.DailyLog) error {
		return requireAffected(tx.Model(&db.DailyLog{}).
			Where("date = ?", row.Date).
			Update("plan_id", row.PlanID))
	})
	if err != nil {
		writeError(w, r, err, "Daily log")
		return
	}

	slog.Info("daily log updated", "date", models.FormatDate(log.Date), "plan_id", log.PlanID)

	w.WriteHeader(http.StatusNoContent)
}
