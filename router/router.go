// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/nutrilog/client"
	"github.com/danielhkuo/nutrilog/handlers"
	"github.com/danielhkuo/nutrilog/middleware"
)

func NewRouter(c *client.Client) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	foodHandler := handlers.NewFoodHandler(c.Query)
	planHandler := handlers.NewPlanHandler(c.Query)
	dailyLogHandler := handlers.NewDailyLogHandler(c.Query)
	servingHandler := handlers.NewServingHandler(c.Query)
	systemHandler := handlers.NewSystemHandler(c)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /system", middleware.WithLogging(systemHandler.GetSystem))

	// Food catalogue
	mux.HandleFunc("POST /foods", middleware.WithLogging(foodHandler.CreateFood))
	mux.HandleFunc("GET /foods", middleware.WithLogging(foodHandler.ListFoods))
	mux.HandleFunc("GET /foods/{id}", middleware.WithLogging(foodHandler.GetFood))
	mux.HandleFunc("PUT /foods/{id}", middleware.WithLogging(foodHandler.UpdateFood))

	// Plans
	mux.HandleFunc("POST /plans", middleware.WithLogging(planHandler.CreatePlan))
	mux.HandleFunc("GET /plans", middleware.WithLogging(planHandler.ListPlans))
	mux.HandleFunc("GET /plans/current", middleware.WithLogging(planHandler.GetCurrentPlan))
	mux.HandleFunc("PUT /plans/{id}", middleware.WithLogging(planHandler.UpdatePlan))
	mux.HandleFunc("DELETE /plans/{id}", middleware.WithLogging(planHandler.DeletePlan))
	mux.HandleFunc("POST /plans/{id}/current", middleware.WithLogging(planHandler.SetCurrentPlan))

	// Daily logs
	mux.HandleFunc("POST /daily-logs", middleware.WithLogging(dailyLogHandler.CreateDailyLog))
	mux.HandleFunc("GET /daily-logs/{date}", middleware.WithLogging(dailyLogHandler.GetDailyLog))
	mux.HandleFunc("PUT /daily-logs/{date}", middleware.WithLogging(dailyLogHandler.UpdateDailyLog))

	// Servings
	mux.HandleFunc("POST /servings", middleware.WithLogging(servingHandler.CreateServing))
	mux.HandleFunc("PUT /servings/{id}", middleware.WithLogging(servingHandler.UpdateServing))
	mux.HandleFunc("DELETE /servings/{id}", middleware.WithLogging(servingHandler.DeleteServing))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("nutrilog API v1"))
	})

	return mux
}
