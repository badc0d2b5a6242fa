// Package handlers contains the HTTP handler implementations for the AtmosAI
// insights API.
//
// This file implements the insights handler. It covers:
//   - Weather analysis (POST /v1/insights/analyze-weather)
//   - Alert generation (POST /v1/insights/generate-alerts)
//   - Event recommendations (POST /v1/insights/event-recommendations)
//   - Health insights (POST /v1/insights/health-insights)
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"atmosai/internal/core"
	"atmosai/internal/engine"
	"atmosai/internal/types"
)

// InsightsServiceInterface defines the service contract for the insights
// handler. Matches the engine service but is defined locally to avoid tight
// coupling per the handler injection pattern.
type InsightsServiceInterface interface {
	AnalyzeWeather(snap types.Snapshot) engine.WeatherAnalysis
	GenerateAlerts(snap types.Snapshot, loc types.Location) engine.AlertBundle
	RecommendEvents(snap types.Snapshot) engine.EventRecommendations
	AssessHealth(snap types.Snapshot) engine.HealthInsights
}

// InsightsHandler maps HTTP requests to the insights engine.
type InsightsHandler struct {
	service   InsightsServiceInterface
	validator *core.Validator
	logger    *slog.Logger
}

// NewInsightsHandler creates a new InsightsHandler with the provided
// dependencies.
func NewInsightsHandler(
	svc InsightsServiceInterface,
	val *core.Validator,
	logger *slog.Logger,
) *InsightsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &InsightsHandler{
		service:   svc,
		validator: val,
		logger:    logger,
	}
}

// RegisterRoutes mounts the insights endpoints onto the mux.
// All routes assume Authentication Middleware is already applied.
func (h *InsightsHandler) RegisterRoutes(r chi.Router) {
	r.Post("/analyze-weather", h.HandleAnalyzeWeather)
	r.Post("/generate-alerts", h.HandleGenerateAlerts)
	r.Post("/event-recommendations", h.HandleEventRecommendations)
	r.Post("/health-insights", h.HandleHealthInsights)
}

// AnalyzeWeatherRequest is the request body for POST /v1/insights/analyze-weather.
type AnalyzeWeatherRequest struct {
	WeatherData     *types.WeatherData     `json:"weather_data" validate:"required"`
	UserPreferences *types.UserPreferences `json:"user_preferences,omitempty"`
	Location        *types.Location        `json:"location,omitempty"`
}

// GenerateAlertsRequest is the request body for POST /v1/insights/generate-alerts.
type GenerateAlertsRequest struct {
	WeatherData *types.WeatherData `json:"weather_data" validate:"required"`
	Location    *types.Location    `json:"location" validate:"required"`
}

// EventRecommendationsRequest is the request body for
// POST /v1/insights/event-recommendations. EventType and Date are accepted
// for wire compatibility; recommendations derive from the weather alone.
type EventRecommendationsRequest struct {
	WeatherData *types.WeatherData `json:"weather_data" validate:"required"`
	EventType   string             `json:"event_type,omitempty"`
	Date        string             `json:"date,omitempty"`
	Location    *types.Location    `json:"location,omitempty"`
}

// HealthInsightsRequest is the request body for POST /v1/insights/health-insights.
// UserHealthData is accepted opaquely and never interpreted.
type HealthInsightsRequest struct {
	WeatherData    *types.WeatherData `json:"weather_data" validate:"required"`
	UserHealthData map[string]any     `json:"user_health_data,omitempty"`
	Location       *types.Location    `json:"location,omitempty"`
}

// HandleAnalyzeWeather handles POST /v1/insights/analyze-weather.
//  1. Decode and validate the request body.
//  2. Resolve the current conditions into a snapshot.
//  3. Return the full analysis.
func (h *InsightsHandler) HandleAnalyzeWeather(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeWeatherRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		core.Error(w, r, err)
		return
	}

	snap := req.WeatherData.Current.Snapshot()
	result := h.service.AnalyzeWeather(snap)

	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: result})
}

// HandleGenerateAlerts handles POST /v1/insights/generate-alerts.
// The location is required: every alert carries the place it applies to.
func (h *InsightsHandler) HandleGenerateAlerts(w http.ResponseWriter, r *http.Request) {
	var req GenerateAlertsRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		core.Error(w, r, err)
		return
	}

	snap := req.WeatherData.Current.Snapshot()
	result := h.service.GenerateAlerts(snap, *req.Location)

	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: result})
}

// HandleEventRecommendations handles POST /v1/insights/event-recommendations.
func (h *InsightsHandler) HandleEventRecommendations(w http.ResponseWriter, r *http.Request) {
	var req EventRecommendationsRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		core.Error(w, r, err)
		return
	}

	snap := req.WeatherData.Current.Snapshot()
	result := h.service.RecommendEvents(snap)

	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: result})
}

// HandleHealthInsights handles POST /v1/insights/health-insights.
func (h *InsightsHandler) HandleHealthInsights(w http.ResponseWriter, r *http.Request) {
	var req HealthInsightsRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		core.Error(w, r, err)
		return
	}

	snap := req.WeatherData.Current.Snapshot()
	result := h.service.AssessHealth(snap)

	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: result})
}
