// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/nutrilog/client"
	"github.com/danielhkuo/nutrilog/middleware"
	"github.com/danielhkuo/nutrilog/models"
)

type SystemHandler struct {
	c *client.Client
}

func NewSystemHandler(c *client.Client) *SystemHandler {
	return &SystemHandler{c: c}
}

// GetSystem handles GET /system
func (h *SystemHandler) GetSystem(w http.ResponseWriter, r *http.Request) {
	version, err := h.c.Runner.Version(r.Context())
	if err != nil {
		writeError(w, r, err, "System")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SystemResponse{
		Version: version,
		Latest:  h.c.Runner.Latest(),
		Dialect: string(h.c.Storage.Dialect),
	})
}
