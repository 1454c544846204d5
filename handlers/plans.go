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

type PlanHandler struct {
	q *query.Service
}

func NewPlanHandler(q *query.Service) *PlanHandler {
	return &PlanHandler{q: q}
}

// CreatePlan handles POST /plans
// The first plan created becomes the current one.
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req models.PlanRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var created db.Plan
	_, err := query.Write(r.Context(), h.q, models.PlanInsertCodec, req, func(tx *gorm.DB, row *db.Plan) error {
		return tx.Transaction(func(tx *gorm.DB) error {
			var current int64
			if err := tx.Model(&db.Plan{}).Where("is_current = ?", true).Count(&current).Error; err != nil {
				return err
			}
			row.IsCurrent = current == 0
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			created = *row
			return nil
		})
	})
	if err != nil {
		writeError(w, r, err, "Plan")
		return
	}

	slog.Info("plan created", "plan_id", created.ID, "is_current", created.IsCurrent)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{ID: created.ID})
}

// ListPlans handles GET /plans
func (h *PlanHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	rows, err := query.Read(r.Context(), h.q, "plan.list", func(tx *gorm.DB) ([]db.PlanWithLogs, error) {
		var rows []db.PlanWithLogs
		err := tx.Model(&db.Plan{}).
			Select("plan.*, COUNT(daily_log.date) AS logs").
			Joins("LEFT JOIN daily_log ON daily_log.plan_id = plan.id").
			Group("plan.id").
			Order("plan.id").
			Scan(&rows).Error
		return rows, err
	})
	if err != nil {
		writeError(w, r, err, "Plan")
		return
	}

	plans, err := models.DecodePlans(rows)
	if err != nil {
		writeError(w, r, err, "Plan")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, plans)
}

// GetCurrentPlan handles GET /plans/current
func (h *PlanHandler) GetCurrentPlan(w http.ResponseWriter, r *http.Request) {
	row, err := query.Read(r.Context(), h.q, "plan.current", currentPlan)
	if err != nil {
		writeError(w, r, err, "Current plan")
		return
	}

	plan, err := models.DecodePlanSelectDaily(row)
	if err != nil {
		writeError(w, r, err, "Plan")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, plan)
}

// UpdatePlan handles PUT /plans/{id}
func (h *PlanHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	req := models.PlanUpdateRequest{ID: r.PathValue("id")}
	if err := middleware.ParseJSONBody(r, &req.PlanRequest); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	plan, err := query.Write(r.Context(), h.q, models.PlanUpdateCodec, req, func(tx *gorm.DB, row *db.Plan) error {
		return requireAffected(tx.Model(&db.Plan{}).
			Where("id = ?", row.ID).
			Select("calories", "fats_ratio", "carbohydrates_ratio", "proteins_ratio").
			Updates(row))
	})
	if err != nil {
		writeError(w, r, err, "Plan")
		return
	}

	slog.Info("plan updated", "plan_id", plan.ID)

	w.WriteHeader(http.StatusNoContent)
}

// DeletePlan handles DELETE /plans/{id}
// Plans still used by a daily log cannot be removed.
func (h *PlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	plan, err := query.Write(r.Context(), h.q, models.PlanRemoveCodec, r.PathValue("id"), func(tx *gorm.DB, row *db.Plan) error {
		return requireAffected(tx.Delete(&db.Plan{}, row.ID))
	})
	if err != nil {
		writeError(w, r, err, "Plan")
		return
	}

	slog.Info("plan removed", "plan_id", plan.ID)

	w.WriteHeader(http.StatusNoContent)
}

// SetCurrentPlan handles POST /plans/{id}/current
// Exactly one plan is current afterwards.
func (h *PlanHandler) SetCurrentPlan(w http.ResponseWriter, r *http.Request) {
	id, err := schema.ParseKey[models.PlanEntity](r.PathValue("id"))
	if err != nil {
		writeError(w, r, schema.At("id", err), "Plan")
		return
	}

	err = h.q.Query(r.Context(), "plan.set_current", func(tx *gorm.DB) error {
		return tx.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&db.Plan{}, id.Int64()).Error; err != nil {
				return err
			}
			if err := tx.Model(&db.Plan{}).Where("is_current = ?", true).Update("is_current", false).Error; err != nil {
				return err
			}
			return tx.Model(&db.Plan{}).Where("id = ?", id.Int64()).Update("is_current", true).Error
		})
	})
	if err != nil {
		writeError(w, r, err, "Plan")
		return
	}

	slog.Info("current plan set", "plan_id", id)

	w.WriteHeader(http.StatusNoContent)
}

func currentPlan(tx *gorm.DB) (db.Plan, error) {
	var row db.Plan
	err := tx.Where("is_current = ?", true).Order("id").First(&row).Error
	return row, err
}
