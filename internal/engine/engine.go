// Package engine implements the deterministic weather insights engine: the
// per-factor threshold classifier, the count-based risk aggregator, the alert
// synthesizer, and the advisory derivations (health tips, activity
// suggestions, event recommendations, health assessments).
//
// Every derivation is a pure function of the resolved weather snapshot.
// Reading the clock is the only side effect, isolated behind the Clock
// interface so tests can assert on deterministic output.
package engine

import (
	"log/slog"
	"time"

	"atmosai/internal/types"
)

// Static confidence scalars attached to each operation's response. They are
// fixed labels, not computed from data.
const (
	analysisConfidence = 0.85
	alertConfidence    = 0.90
	eventConfidence    = 0.88
	healthConfidence   = 0.87
)

// Clock supplies the current time for response timestamps and alert validity
// windows.
type Clock interface {
	Now() time.Time
}

// systemClock is the production Clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// Service is the stateless facade over the engine derivations. It is
// constructed once at process start and is safe for concurrent use: it holds
// no mutable state, and concurrent requests share nothing.
type Service struct {
	logger *slog.Logger
	clock  Clock
}

// NewService creates the engine service. A nil clock selects the system
// clock; a nil logger selects slog.Default().
func NewService(logger *slog.Logger, clock Clock) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = systemClock{}
	}
	return &Service{logger: logger, clock: clock}
}

// WeatherAnalysis is the payload of the analyze-weather operation.
type WeatherAnalysis struct {
	Analysis            Analysis          `json:"analysis"`
	HealthTips          []string          `json:"health_tips"`
	ActivitySuggestions []string          `json:"activity_suggestions"`
	RiskAssessment      types.OverallRisk `json:"risk_assessment"`
	Confidence          float64           `json:"confidence"`
	Timestamp           time.Time         `json:"timestamp"`
}

// AnalyzeWeather classifies every factor of the snapshot, aggregates the
// overall risk, and derives health tips and activity suggestions.
func (s *Service) AnalyzeWeather(snap types.Snapshot) WeatherAnalysis {
	now := s.clock.Now()

	analysis := AnalyzeConditions(snap)
	analysis.Timestamp = now

	s.logger.Debug("weather analysis completed",
		slog.String("overall_risk", string(analysis.OverallRisk.Level)),
	)

	return WeatherAnalysis{
		Analysis:            analysis,
		HealthTips:          HealthTips(analysis),
		ActivitySuggestions: ActivitySuggestions(analysis.OverallRisk.Level),
		RiskAssessment:      analysis.OverallRisk,
		Confidence:          analysisConfidence,
		Timestamp:           now,
	}
}

// SeverityDistribution counts generated alerts by display severity.
type SeverityDistribution struct {
	Severe   int `json:"severe"`
	Moderate int `json:"moderate"`
	Info     int `json:"info"`
}

// AlertBundle is the payload of the generate-alerts operation.
type AlertBundle struct {
	Alerts               []types.Alert        `json:"alerts"`
	TotalAlerts          int                  `json:"total_alerts"`
	SeverityDistribution SeverityDistribution `json:"severity_distribution"`
	Confidence           float64              `json:"confidence"`
	Timestamp            time.Time            `json:"timestamp"`
}

// GenerateAlerts synthesizes alerts for the snapshot at the given location.
func (s *Service) GenerateAlerts(snap types.Snapshot, loc types.Location) AlertBundle {
	alerts := s.SynthesizeAlerts(snap, loc)

	var dist SeverityDistribution
	for _, a := range alerts {
		switch a.Type {
		case types.AlertSevere:
			dist.Severe++
		case types.AlertModerate:
			dist.Moderate++
		case types.AlertInfo:
			dist.Info++
		}
	}

	s.logger.Debug("alerts generated",
		slog.Int("total", len(alerts)),
		slog.String("location", loc.Name),
	)

	return AlertBundle{
		Alerts:               alerts,
		TotalAlerts:          len(alerts),
		SeverityDistribution: dist,
		Confidence:           alertConfidence,
		Timestamp:            s.clock.Now(),
	}
}

// EventRecommendations is the payload of the event-recommendations operation.
type EventRecommendations struct {
	EventRecommendation
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// RecommendEvents derives event guidance for the snapshot.
func (s *Service) RecommendEvents(snap types.Snapshot) EventRecommendations {
	return EventRecommendations{
		EventRecommendation: RecommendEvents(snap),
		Confidence:          eventConfidence,
		Timestamp:           s.clock.Now(),
	}
}

// HealthInsights is the payload of the health-insights operation.
type HealthInsights struct {
	HealthAssessment
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// AssessHealth derives health guidance for the snapshot.
func (s *Service) AssessHealth(snap types.Snapshot) HealthInsights {
	return HealthInsights{
		HealthAssessment: AssessHealth(snap),
		Confidence:       healthConfidence,
		Timestamp:        s.clock.Now(),
	}
}
