package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atmosai/internal/types"
)

func TestAnalyzeWeather_StampsClockAndConfidence(t *testing.T) {
	svc := newTestService()
	snap := types.Snapshot{Temperature: 70, Humidity: 50, Condition: "clear"}

	got := svc.AnalyzeWeather(snap)

	assert.Equal(t, testNow, got.Timestamp)
	assert.Equal(t, testNow, got.Analysis.Timestamp)
	assert.Equal(t, 0.85, got.Confidence)
	assert.Equal(t, got.Analysis.OverallRisk, got.RiskAssessment)
}

func TestAnalyzeWeather_Deterministic(t *testing.T) {
	svc := newTestService()
	snap := types.Snapshot{
		Temperature: 95,
		Humidity:    85,
		UVIndex:     7,
		AQI:         60,
		WindSpeed:   20,
		Condition:   "clear",
	}

	a := svc.AnalyzeWeather(snap)
	b := svc.AnalyzeWeather(snap)
	assert.Equal(t, a, b)
}

func TestAnalyzeWeather_DerivedGuidanceMatchesRisk(t *testing.T) {
	svc := newTestService()
	snap := types.Snapshot{Temperature: 95, Humidity: 50, UVIndex: 9, Condition: "clear"}

	got := svc.AnalyzeWeather(snap)

	// Two high factors: overall high.
	require.Equal(t, types.RiskHigh, got.RiskAssessment.Level)
	assert.Equal(t, ActivitySuggestions(types.RiskHigh), got.ActivitySuggestions)
	assert.NotEmpty(t, got.HealthTips)
}

func TestGenerateAlerts_BundleAccounting(t *testing.T) {
	svc := newTestService()
	snap := types.Snapshot{
		Temperature: 95,
		Humidity:    50,
		UVIndex:     9,
		AQI:         160,
		WindSpeed:   35,
		Condition:   "clear",
	}

	got := svc.GenerateAlerts(snap, testLocation())

	require.Len(t, got.Alerts, 4)
	assert.Equal(t, 4, got.TotalAlerts)
	// Severe weather + severe AQI; moderate temperature; info UV.
	assert.Equal(t, SeverityDistribution{Severe: 2, Moderate: 1, Info: 1}, got.SeverityDistribution)
	assert.Equal(t, 0.90, got.Confidence)
	assert.Equal(t, testNow, got.Timestamp)
}

func TestGenerateAlerts_EmptyBundle(t *testing.T) {
	svc := newTestService()
	snap := types.Snapshot{Temperature: 70, Humidity: 50, Condition: "clear"}

	got := svc.GenerateAlerts(snap, testLocation())

	assert.NotNil(t, got.Alerts)
	assert.Empty(t, got.Alerts)
	assert.Equal(t, 0, got.TotalAlerts)
	assert.Equal(t, SeverityDistribution{}, got.SeverityDistribution)
}

func TestRecommendEvents_Payload(t *testing.T) {
	svc := newTestService()

	got := svc.RecommendEvents(types.Snapshot{Temperature: 70, Condition: "clear"})

	assert.Equal(t, 0.88, got.Confidence)
	assert.Equal(t, testNow, got.Timestamp)
	assert.Equal(t, "Outdoor sports", got.SuitableActivities[0])
}

func TestAssessHealth_Payload(t *testing.T) {
	svc := newTestService()

	got := svc.AssessHealth(types.Snapshot{Temperature: 70, Humidity: 50})

	assert.Equal(t, 0.87, got.Confidence)
	assert.Equal(t, testNow, got.Timestamp)
	assert.Equal(t, generalHealthTips, got.GeneralTips)
}

func TestNewService_Defaults(t *testing.T) {
	svc := NewService(nil, nil)
	require.NotNil(t, svc.logger)
	require.NotNil(t, svc.clock)
	assert.False(t, svc.clock.Now().IsZero())
}
