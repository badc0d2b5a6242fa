package core

import (
	"net/http"
	"time"
)

// healthResponse is the JSON response body for the liveness endpoint.
type healthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
}

// HandleHealth reports service liveness. The engine has no external
// dependencies to probe, so the endpoint always reports healthy once the
// process is serving; it exists for load balancer checks and the consuming
// backend's status passthrough.
//
// This endpoint is public (no authentication required) and is mounted at
// GET /health.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:    "healthy",
		Service:   s.Config.Service,
		Version:   s.Config.Build.Version,
		Uptime:    time.Since(s.startedAt).Truncate(time.Second).String(),
		Timestamp: time.Now().UTC(),
	}
	JSON(w, r, http.StatusOK, resp)
}
