// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/nutrilog/models"
	"github.com/danielhkuo/nutrilog/testutil"
)

func ptr[T any](v T) *T { return &v }

func TestCreateFood(t *testing.T) {
	c := testutil.NewTestClient(t)
	handler := NewFoodHandler(c.Query)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedField  string
	}{
		{
			name: "valid food",
			body: models.FoodRequest{
				Name: "Oats", Brand: ptr("Quaker"),
				Calories: 389, Carbohydrates: 66.3, Proteins: 16.9, Fats: 6.9,
				Fibers: ptr(10.6),
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "without brand",
			body:           models.FoodRequest{Name: "Apple", Calories: 52, Carbohydrates: 14, Proteins: 0.3, Fats: 0.2},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "empty name",
			body:           models.FoodRequest{Name: "", Calories: 52},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "name",
		},
		{
			name:           "negative calories",
			body:           models.FoodRequest{Name: "Water", Calories: -5},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "calories",
		},
		{
			name:           "negative fats",
			body:           models.FoodRequest{Name: "Odd", Calories: 10, Fats: -1},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "fats",
		},
		{
			name:           "negative optional",
			body:           models.FoodRequest{Name: "Odd", Calories: 10, Salt: ptr(-0.5)},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "salt",
		},
		{
			name:           "zero calories pass",
			body:           models.FoodRequest{Name: "Water", Calories: 0},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid JSON",
			body:           "{not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if s, ok := tt.body.(string); ok {
				req = httptest.NewRequest("POST", "/foods", strings.NewReader(s))
			} else {
				req = testutil.MakeRequest("POST", "/foods", tt.body, nil)
			}
			w := httptest.NewRecorder()

			handler.CreateFood(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusCreated {
				var resp models.CreatedResponse
				testutil.AssertJSON(t, w, &resp)
				assert.Positive(t, resp.ID)
			}
			if tt.expectedField != "" {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				assert.Equal(t, tt.expectedField, resp.Field)
			}
		})
	}
}

func TestCreateFoodStoresScaledValues(t *testing.T) {
	c := testutil.NewTestClient(t)
	handler := NewFoodHandler(c.Query)

	req := testutil.MakeRequest("POST", "/foods", models.FoodRequest{
		Name: "Oats", Brand: ptr("  "), Calories: 389, Carbohydrates: 66.3, Proteins: 16.9, Fats: 6.9,
	}, nil)
	w := httptest.NewRecorder()
	handler.CreateFood(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var raw struct {
		Calories float64
		Brand    *string
	}
	require.NoError(t, c.Storage.ORM.Table("food").Select("calories, brand").Take(&raw).Error)
	assert.Equal(t, 3890.0, raw.Calories)
	assert.Nil(t, raw.Brand)
}

func TestGetFood(t *testing.T) {
	c := testutil.NewTestClient(t)
	handler := NewFoodHandler(c.Query)
	id := testutil.CreateTestFood(t, c, "Rice", 130, 0.3, 28.2, 2.7)

	t.Run("existing food", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/foods/"+strconv.FormatInt(id, 10), nil)
		req.SetPathValue("id", strconv.FormatInt(id, 10))
		w := httptest.NewRecorder()

		handler.GetFood(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var food models.FoodSelect
		testutil.AssertJSON(t, w, &food)
		assert.Equal(t, "Rice", food.Name)
		assert.Nil(t, food.Brand)
		assert.Equal(t, 130.0, food.Calories.Float64())
		assert.Equal(t, 28.2, food.Carbohydrates.Float64())
		require.NotNil(t, food.Sugars)
		assert.Zero(t, food.Sugars.Float64())
	})

	t.Run("missing food", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/foods/999", nil)
		req.SetPathValue("id", "999")
		w := httptest.NewRecorder()

		handler.GetFood(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("zero id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/foods/0", nil)
		req.SetPathValue("id", "0")
		w := httptest.NewRecorder()

		handler.GetFood(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/foods/abc", nil)
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()

		handler.GetFood(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		var resp models.ErrorResponse
		testutil.AssertJSON(t, w, &resp)
		assert.Equal(t, "id", resp.Field)
	})
}

func TestListFoods(t *testing.T) {
	c := testutil.NewTestClient(t)
	handler := NewFoodHandler(c.Query)
	testutil.CreateTestFood(t, c, "Rice", 130, 0.3, 28.2, 2.7)
	testutil.CreateTestFood(t, c, "Brown rice", 112, 0.8, 23.5, 2.3)
	testutil.CreateTestFood(t, c, "Apple", 52, 0.2, 14, 0.3)

	tests := []struct {
		query    string
		expected []string
	}{
		{"", []string{"Apple", "Brown rice", "Rice"}},
		{"?q=RICE", []string{"Brown rice", "Rice"}},
		{"?q=banana", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/foods"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.ListFoods(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			var foods []models.FoodSelect
			testutil.AssertJSON(t, w, &foods)
			names := make([]string, 0, len(foods))
			for _, f := range foods {
				names = append(names, f.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestUpdateFood(t *testing.T) {
	c := testutil.NewTestClient(t)
	handler := NewFoodHandler(c.Query)
	id := testutil.CreateTestFood(t, c, "Rice", 130, 0.3, 28.2, 2.7)
	idStr := strconv.FormatInt(id, 10)

	t.Run("replaces values", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/foods/"+idStr, models.FoodRequest{
			Name: "White rice", Brand: ptr("Uncle Ben's"), Calories: 0, Carbohydrates: 28, Proteins: 2.7, Fats: 0.3,
			Sugars: ptr(0.1),
		}, nil)
		req.SetPathValue("id", idStr)
		w := httptest.NewRecorder()

		handler.UpdateFood(w, req)

		testutil.AssertStatus(t, w, http.StatusNoContent)

		get := httptest.NewRequest("GET", "/foods/"+idStr, nil)
		get.SetPathValue("id", idStr)
		w = httptest.NewRecorder()
		handler.GetFood(w, get)

		var food models.FoodSelect
		testutil.AssertJSON(t, w, &food)
		assert.Equal(t, "White rice", food.Name)
		require.NotNil(t, food.Brand)
		assert.Equal(t, "Uncle Ben's", *food.Brand)
		assert.Zero(t, food.Calories.Float64())
		require.NotNil(t, food.Sugars)
		assert.Equal(t, 0.1, food.Sugars.Float64())
	})

	t.Run("empty brand clears it", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/foods/"+idStr, models.FoodRequest{
			Name: "White rice", Brand: ptr(""), Calories: 130, Carbohydrates: 28, Proteins: 2.7, Fats: 0.3,
		}, nil)
		req.SetPathValue("id", idStr)
		w := httptest.NewRecorder()

		handler.UpdateFood(w, req)
		testutil.AssertStatus(t, w, http.StatusNoContent)

		var raw struct{ Brand *string }
		require.NoError(t, c.Storage.ORM.Table("food").Select("brand").Where("id = ?", id).Take(&raw).Error)
		assert.Nil(t, raw.Brand)
	})

	t.Run("missing food", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/foods/999", models.FoodRequest{Name: "Ghost", Calories: 1}, nil)
		req.SetPathValue("id", "999")
		w := httptest.NewRecorder()

		handler.UpdateFood(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("zero id", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/foods/0", models.FoodRequest{Name: "Ghost", Calories: 1}, nil)
		req.SetPathValue("id", "0")
		w := httptest.NewRecorder()

		handler.UpdateFood(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
		var resp models.ErrorResponse
		testutil.AssertJSON(t, w, &resp)
		assert.Equal(t, "Food not found", resp.Message)
	})

	t.Run("negative value", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/foods/"+idStr, models.FoodRequest{Name: "Rice", Calories: -1}, nil)
		req.SetPathValue("id", idStr)
		w := httptest.NewRecorder()

		handler.UpdateFood(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}
