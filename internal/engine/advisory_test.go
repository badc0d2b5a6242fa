package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atmosai/internal/types"
)

func TestHealthTips_EmptyWhenAllContributorsLow(t *testing.T) {
	a := AnalyzeConditions(types.CurrentConditions{}.Snapshot())

	tips := HealthTips(a)
	assert.NotNil(t, tips)
	assert.Empty(t, tips)
}

func TestHealthTips_CollectsNonLowFactorsInOrder(t *testing.T) {
	// UV moderate and temperature high, air quality low. Tips come from UV
	// first, then temperature. Wind and humidity never contribute.
	a := AnalyzeConditions(types.Snapshot{
		Temperature: 95,
		Humidity:    50,
		UVIndex:     7,
		AQI:         10,
		WindSpeed:   40,
	})

	tips := HealthTips(a)
	require.NotEmpty(t, tips)
	assert.Equal(t, "Apply sunscreen", tips[0])
	assert.LessOrEqual(t, len(tips), maxHealthTips)
}

func TestHealthTips_CappedAtFive(t *testing.T) {
	// All three contributing factors non-low: 4 + 4 + 4 recommendations,
	// truncated to 5.
	a := AnalyzeConditions(types.Snapshot{
		Temperature: 95,
		Humidity:    50,
		UVIndex:     9,
		AQI:         120,
	})

	tips := HealthTips(a)
	assert.Len(t, tips, maxHealthTips)
	// UV recommendations come first and survive the truncation intact.
	assert.Equal(t, "Avoid sun 10am-4pm", tips[0])
}

func TestActivitySuggestions_PerLevel(t *testing.T) {
	low := ActivitySuggestions(types.RiskLow)
	require.Len(t, low, 4)
	assert.Equal(t, "Great weather for outdoor activities", low[0])

	moderate := ActivitySuggestions(types.RiskModerate)
	require.Len(t, moderate, 4)
	assert.Equal(t, "Consider indoor activities", moderate[0])

	high := ActivitySuggestions(types.RiskHigh)
	require.Len(t, high, 4)
	assert.Equal(t, "Stay indoors if possible", high[0])
}

func TestRecommendEvents_BranchPriority(t *testing.T) {
	tests := []struct {
		name          string
		snap          types.Snapshot
		wantActivity  string
		wantGuardrail string
	}{
		{
			"extreme heat wins",
			types.Snapshot{Temperature: 95, Condition: "rain", UVIndex: 9},
			"Indoor activities",
			"Extreme temperature conditions",
		},
		{
			"extreme cold wins",
			types.Snapshot{Temperature: 20},
			"Indoor activities",
			"Extreme temperature conditions",
		},
		{
			"wet conditions beat uv",
			types.Snapshot{Temperature: 70, Condition: "Rain", UVIndex: 9},
			"Indoor entertainment",
			"Wet weather conditions",
		},
		{
			"high uv",
			types.Snapshot{Temperature: 70, Condition: "clear", UVIndex: 9},
			"Indoor activities",
			"High UV or poor air quality",
		},
		{
			"poor air quality",
			types.Snapshot{Temperature: 70, Condition: "clear", AQI: 120},
			"Indoor activities",
			"High UV or poor air quality",
		},
		{
			"good weather default",
			types.Snapshot{Temperature: 70, Condition: "clear"},
			"Outdoor sports",
			"Good weather conditions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecommendEvents(tt.snap)
			require.Len(t, got.SuitableActivities, 5)
			assert.Equal(t, tt.wantActivity, got.SuitableActivities[0])
			require.Len(t, got.WeatherConsiderations, 3)
			assert.Equal(t, tt.wantGuardrail, got.WeatherConsiderations[0])
		})
	}
}

func TestRecommendEvents_BoundaryValuesTakeDefaultBranch(t *testing.T) {
	// Exactly 85, UV exactly 8, AQI exactly 100: no branch triggers.
	got := RecommendEvents(types.Snapshot{Temperature: 85, UVIndex: 8, AQI: 100})
	assert.Equal(t, "Good weather conditions", got.WeatherConsiderations[0])
}

func TestRecommendEvents_OptimalTimesByTemperature(t *testing.T) {
	hot := RecommendEvents(types.Snapshot{Temperature: 81})
	assert.Equal(t, []string{"Early morning (6-9 AM)", "Evening (6-9 PM)"}, hot.OptimalTimes)

	cold := RecommendEvents(types.Snapshot{Temperature: 39})
	assert.Equal(t, []string{"Midday (10 AM-2 PM)", "Afternoon (2-5 PM)"}, cold.OptimalTimes)

	mild := RecommendEvents(types.Snapshot{Temperature: 70})
	assert.Equal(t, []string{"Morning (8-11 AM)", "Afternoon (2-5 PM)", "Evening (6-8 PM)"}, mild.OptimalTimes)
}

func TestAssessHealth_HotAndColdMutuallyExclusive(t *testing.T) {
	hot := AssessHealth(types.Snapshot{Temperature: 90, Humidity: 50})
	assert.Contains(t, hot.WeatherSpecific, "hot_weather")
	assert.NotContains(t, hot.WeatherSpecific, "cold_weather")

	cold := AssessHealth(types.Snapshot{Temperature: 30, Humidity: 50})
	assert.Contains(t, cold.WeatherSpecific, "cold_weather")
	assert.NotContains(t, cold.WeatherSpecific, "hot_weather")
}

func TestAssessHealth_IndependentBands(t *testing.T) {
	got := AssessHealth(types.Snapshot{Temperature: 90, Humidity: 85, AQI: 120})

	assert.Contains(t, got.WeatherSpecific, "hot_weather")
	assert.Contains(t, got.WeatherSpecific, "high_humidity")
	assert.Contains(t, got.WeatherSpecific, "poor_air_quality")
}

func TestAssessHealth_NoBandsTriggered(t *testing.T) {
	got := AssessHealth(types.Snapshot{Temperature: 70, Humidity: 50})

	assert.Empty(t, got.WeatherSpecific)
	assert.Equal(t, []string{normalRiskSentinel}, got.RiskFactors)
	assert.Equal(t, generalHealthTips, got.GeneralTips)
}

func TestAssessHealth_RiskFactors(t *testing.T) {
	got := AssessHealth(types.Snapshot{
		Temperature: 95,
		Humidity:    95,
		UVIndex:     9,
		AQI:         160,
	})

	assert.Equal(t, []string{
		"Extreme temperature exposure",
		"High UV exposure",
		"Poor air quality",
		"High humidity stress",
	}, got.RiskFactors)
}

func TestAssessHealth_RiskFactorBoundaries(t *testing.T) {
	// 90, 8, 150, 90 are all below their risk-factor thresholds.
	got := AssessHealth(types.Snapshot{
		Temperature: 90,
		Humidity:    90,
		UVIndex:     8,
		AQI:         150,
	})
	assert.Equal(t, []string{normalRiskSentinel}, got.RiskFactors)
}

func TestAssessHealth_FixedRecommendations(t *testing.T) {
	got := AssessHealth(types.Snapshot{Temperature: 70, Humidity: 50})

	assert.Len(t, got.Recommendations.ImmediateActions, 3)
	assert.Len(t, got.Recommendations.LongTermHealth, 4)
	assert.Equal(t, "Check current conditions before going out", got.Recommendations.ImmediateActions[0])
	assert.Equal(t, "Maintain regular exercise routine", got.Recommendations.LongTermHealth[0])
}
