// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/danielhkuo/nutrilog/db"
	"github.com/danielhkuo/nutrilog/middleware"
	"github.com/danielhkuo/nutrilog/models"
	"github.com/danielhkuo/nutrilog/query"
	"github.com/danielhkuo/nutrilog/schema"
)

// Maximum number of foods returned by a search
const foodSearchLimit = 50

type FoodHandler struct {
	q *query.Service
}

func NewFoodHandler(q *query.Service) *FoodHandler {
	return &FoodHandler{q: q}
}

// CreateFood handles POST /foods
func (h *FoodHandler) CreateFood(w http.ResponseWriter, r *http.Request) {
	var req models.FoodRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var id int64
	food, err := query.Write(r.Context(), h.q, models.FoodInsertCodec, req, func(tx *gorm.DB, row *db.Food) error {
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		id = row.ID
		return nil
	})
	if err != nil {
		writeError(w, r, err, "Food")
		return
	}

	slog.Info("food created", "food_id", id, "name", food.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{ID: id})
}

// ListFoods handles GET /foods?q=
func (h *FoodHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("q"))

	rows, err := query.Read(r.Context(), h.q, "food.list", func(tx *gorm.DB) ([]db.Food, error) {
		var rows []db.Food
		stmt := tx.Order("name").Limit(foodSearchLimit)
		if search != "" {
			stmt = stmt.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
		}
		err := stmt.Find(&rows).Error
		return rows, err
	})
	if err != nil {
		writeError(w, r, err, "Food")
		return
	}

	foods, err := models.DecodeFoods(rows)
	if err != nil {
		writeError(w, r, err, "Food")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, foods)
}

// GetFood handles GET /foods/{id}
func (h *FoodHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	id, err := schema.ParseKey[models.FoodEntity](r.PathValue("id"))
	if err != nil {
		writeError(w, r, schema.At("id", err), "Food")
		return
	}

	row, err := query.Read(r.Context(), h.q, "food.get", func(tx *gorm.DB) (db.Food, error) {
		var row db.Food
		err := tx.First(&row, id.Int64()).Error
		return row, err
	})
	if err != nil {
		writeError(w, r, err, "Food")
		return
	}

	food, err := models.DecodeFoodSelect(row)
	if err != nil {
		writeError(w, r, err, "Food")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, food)
}

// UpdateFood handles PUT /foods/{id}
func (h *FoodHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	req := models.FoodUpdateRequest{ID: r.PathValue("id")}
	if err := middleware.ParseJSONBody(r, &req.FoodRequest); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	food, err := query.Write(r.Context(), h.q, models.FoodUpdateCodec, req, func(tx *gorm.DB, row *db.Food) error {
		return requireAffected(tx.Model(&db.Food{}).
			Where("id = ?", row.ID).
			Select(row.UpdateColumns()).
			Updates(row))
	})
	if err != nil {
		writeError(w, r, err, "Food")
		return
	}

	slog.Info("food updated", "food_id", food.ID)

	w.WriteHeader(http.StatusNoContent)
}
