// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/nutrilog/models"
)

func TestWithLogging_PreservesResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"created food", http.StatusCreated, `{"id":7}`},
		{"plan ratios rejected", http.StatusBadRequest, `{"error":"Bad Request","field":"fats_ratio"}`},
		{"serving gone", http.StatusNotFound, `{"error":"Not Found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			w := httptest.NewRecorder()
			handler(w, httptest.NewRequest("POST", "/foods", nil))

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestJSONResponse(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		data     interface{}
		expected string
	}{
		{"created", http.StatusCreated, models.CreatedResponse{ID: 42}, `{"id":42}`},
		{"daily log created", http.StatusCreated, models.DailyLogCreatedResponse{Date: "2024-03-01"}, `{"date":"2024-03-01"}`},
		{"totals", http.StatusOK, models.Totals{Calories: 395.2, Fats: 7.5}, `{"calories":395.2,"fats":7.5,"carbohydrates":0,"proteins":0}`},
		{"empty list", http.StatusOK, []models.CreatedResponse{}, `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tt.status, tt.data)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expected, w.Body.String())
		})
	}
}

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		status  int
		message string
		want    string
	}{
		{http.StatusNotFound, "Plan not found", `{"error":"Not Found","message":"Plan not found"}`},
		{http.StatusConflict, "Food already exists", `{"error":"Conflict","message":"Food already exists"}`},
		{http.StatusInternalServerError, "Database error", `{"error":"Internal Server Error","message":"Database error"}`},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tt.status, tt.message)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String(), "field is omitted when empty")
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("serving request", func(t *testing.T) {
		body := `{"food_id":3,"quantity":80.5,"meal":"lunch","daily_log_date":"2024-03-01","note":"ignored"}`
		req := httptest.NewRequest("POST", "/servings", strings.NewReader(body))

		var parsed models.ServingRequest
		require.NoError(t, ParseJSONBody(req, &parsed))
		assert.Equal(t, models.ServingRequest{FoodID: 3, Quantity: 80.5, Meal: "lunch", DailyLogDate: "2024-03-01"}, parsed)
	})

	for name, body := range map[string]string{
		"malformed":  `{"date":`,
		"empty":      ``,
		"wrong type": `{"plan_id":"one"}`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/daily-logs", strings.NewReader(body))

			var parsed models.DailyLogRequest
			assert.Error(t, ParseJSONBody(req, &parsed))
		})
	}
}

func TestCORS(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("handled"))
	}))

	tests := []struct {
		name       string
		method     string
		origin     string
		wantOrigin string
		wantBody   string
	}{
		{"preflight", "OPTIONS", "http://localhost:5173", "http://localhost:5173", ""},
		{"reflects origin", "PUT", "https://example.com", "https://example.com", "handled"},
		{"no origin", "GET", "", "*", "handled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/plans/1", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), RequestIDHeader)
			assert.Equal(t, RequestIDHeader, w.Header().Get("Access-Control-Expose-Headers"))
			for _, m := range []string{"GET", "POST", "PUT", "DELETE"} {
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), m)
			}
		})
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"first forwarded hop", map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18"}, "127.0.0.1:1", "203.0.113.195"},
		{"forwarded wins over real ip", map[string]string{"X-Forwarded-For": "192.168.1.100", "X-Real-IP": "203.0.113.50"}, "10.0.0.1:1", "192.168.1.100"},
		{"real ip", map[string]string{"X-Real-IP": "203.0.113.50"}, "10.0.0.1:1", "203.0.113.50"},
		{"remote addr port stripped", nil, "192.168.1.50:54321", "192.168.1.50"},
		{"remote addr without port", nil, "192.168.1.50", "192.168.1.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/daily-logs/2024-03-01", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, GetClientIP(req))
		})
	}
}

func TestWithLogging_RecordsStatusAndSize(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	handler := WithRequestID(WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write(bytes.Repeat([]byte("x"), 2048))
	}))

	req := httptest.NewRequest("POST", "/foods", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	logs := buf.String()
	if !strings.Contains(logs, "status=201") {
		t.Errorf("Expected status in log, got: %s", logs)
	}
	if !strings.Contains(logs, `size="2.0 kB"`) {
		t.Errorf("Expected humanized size in log, got: %s", logs)
	}
	if !strings.Contains(logs, "remote=203.0.113.7") {
		t.Errorf("Expected client IP in log, got: %s", logs)
	}
	if !strings.Contains(logs, "request_id="+w.Header().Get(RequestIDHeader)) {
		t.Errorf("Expected request id in log, got: %s", logs)
	}
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	WithLogging(func(w http.ResponseWriter, r *http.Request) {})(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

	if !strings.Contains(buf.String(), "status=200") {
		t.Errorf("Expected status=200 when handler writes nothing, got: %s", buf.String())
	}
}

func TestWithRequestID(t *testing.T) {
	var seen string
	handler := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		if _, err := uuid.Parse(seen); err != nil {
			t.Fatalf("Expected a UUID, got %q", seen)
		}
		if w.Header().Get(RequestIDHeader) != seen {
			t.Error("Expected the id to be echoed on the response")
		}
	})

	t.Run("keeps caller id", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(RequestIDHeader, id)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		if seen != id {
			t.Errorf("Expected %s, got %s", id, seen)
		}
	})

	t.Run("replaces malformed id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid\nX-Evil: 1")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		if strings.Contains(seen, "evil") || seen == "" {
			t.Errorf("Expected a fresh id, got %q", seen)
		}
	})

	if RequestID(context.Background()) != "" {
		t.Error("Expected empty id outside a request")
	}
}

func TestFieldErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	FieldErrorResponse(w, http.StatusBadRequest, "calories", "Quantity must be positive")

	body := strings.TrimSpace(w.Body.String())
	expected := `{"error":"Bad Request","message":"Quantity must be positive","field":"calories"}`
	if body != expected {
		t.Errorf("Expected %s, got %s", expected, body)
	}
}
