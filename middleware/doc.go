// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /foods", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, size, duration_ms, request_id). Sizes are humanized ("2.0 kB").

# Request IDs

	server := http.Server{
		Handler: middleware.WithRequestID(middleware.CORS(mux)),
	}

Incoming X-Request-ID values are kept when they are UUIDs; otherwise a new
one is generated. Handlers read it with middleware.RequestID(ctx).

# CORS Middleware

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type and X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "plan not found")
	middleware.FieldErrorResponse(w, http.StatusBadRequest, "calories", "Quantity must be positive")

Parse JSON request bodies:

	var req models.FoodRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for the remote attribute of request logs.
*/
package middleware
