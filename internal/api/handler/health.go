package handler

import (
	"net/http"

	"github.com/ligafc/matchday/internal/api/middleware"
	"github.com/ligafc/matchday/internal/api/response"
)

// SessionCounter reports the number of live sessions.
type SessionCounter interface {
	Count() int
}

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	sessions SessionCounter
	version  string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(sessions SessionCounter, version string) *HealthHandler {
	return &HealthHandler{
		sessions: sessions,
		version:  version,
	}
}

type healthData struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Sessions int    `json:"sessions"`
}

// ServeHTTP handles the health check request.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	data := healthData{
		Status:   "healthy",
		Version:  h.version,
		Sessions: h.sessions.Count(),
	}

	response.Success(w, http.StatusOK, data, requestID)
}
