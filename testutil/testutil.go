// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/nutrilog/client"
	"github.com/danielhkuo/nutrilog/cliparse"
	"github.com/danielhkuo/nutrilog/db"
	"github.com/danielhkuo/nutrilog/schema"
)

// NewTestClient opens a private in-memory database with the full schema
// applied. It is closed when the test ends.
func NewTestClient(t *testing.T) *client.Client {
	t.Helper()

	c, err := client.New(context.Background(), db.MemoryName,
		client.WithLogger(slog.New(slog.DiscardHandler)),
	)
	if err != nil {
		t.Fatalf("Failed to open test client: %v", err)
	}
	t.Cleanup(func() { c.Close() })

	return c
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  db.MemoryName,
		DatabaseType: db.DriverSQLite,
		LogLevel:     slog.LevelInfo,
		LogFormat:    "text",
	}
}

// CreateTestFood inserts a food with the given per-100g values and returns
// its ID. Values are in display units; they are stored x10.
func CreateTestFood(t *testing.T, c *client.Client, name string, calories, fats, carbohydrates, proteins float64) int64 {
	t.Helper()

	row := db.Food{
		Name:          name,
		Calories:      stored(calories),
		Fats:          stored(fats),
		Carbohydrates: stored(carbohydrates),
		Proteins:      stored(proteins),
	}
	if err := c.Storage.ORM.Create(&row).Error; err != nil {
		t.Fatalf("Failed to create test food: %v", err)
	}

	return row.ID
}

// CreateTestPlan inserts a plan and returns its ID. Ratios are percents.
func CreateTestPlan(t *testing.T, c *client.Client, calories, fats, carbohydrates, proteins float64, current bool) int64 {
	t.Helper()

	row := db.Plan{
		Calories:           stored(calories),
		FatsRatio:          stored(fats),
		CarbohydratesRatio: stored(carbohydrates),
		ProteinsRatio:      stored(proteins),
		IsCurrent:          current,
	}
	if err := c.Storage.ORM.Create(&row).Error; err != nil {
		t.Fatalf("Failed to create test plan: %v", err)
	}

	return row.ID
}

// CreateTestDailyLog starts the day (YYYY-MM-DD) on the given plan.
func CreateTestDailyLog(t *testing.T, c *client.Client, date string, planID int64) {
	t.Helper()

	d, err := schema.ParseDate(date)
	if err != nil {
		t.Fatalf("Invalid test date %q: %v", date, err)
	}
	if err := c.Storage.ORM.Create(&db.DailyLog{Date: d, PlanID: planID}).Error; err != nil {
		t.Fatalf("Failed to create test daily log: %v", err)
	}
}

// CreateTestServing logs grams of a food in a meal and returns the
// serving ID. The daily log must exist.
func CreateTestServing(t *testing.T, c *client.Client, date string, foodID int64, meal string, grams float64) int64 {
	t.Helper()

	d, err := schema.ParseDate(date)
	if err != nil {
		t.Fatalf("Invalid test date %q: %v", date, err)
	}
	row := db.Serving{Meal: meal, Quantity: stored(grams), FoodID: foodID, DailyLogDate: d}
	if err := c.Storage.ORM.Create(&row).Error; err != nil {
		t.Fatalf("Failed to create test serving: %v", err)
	}

	return row.ID
}

func stored(v float64) float64 {
	q, err := schema.NewQuantity(v)
	if err != nil {
		panic(err)
	}
	raw, err := schema.EncodeQuantity(q)
	if err != nil {
		panic(err)
	}
	return raw
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
