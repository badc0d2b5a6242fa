package engine

import (
	"strings"

	"atmosai/internal/types"
)

// maxHealthTips caps the combined health tip list.
const maxHealthTips = 5

// HealthTips concatenates the recommendations of each non-low factor in
// fixed order (uv, air quality, temperature) and truncates the result to
// maxHealthTips entries. The result is empty exactly when all three
// contributing factors classified low.
func HealthTips(a Analysis) []string {
	tips := []string{}
	for _, cls := range []types.FactorClassification{a.UV, a.AirQuality, a.Temperature} {
		if cls.Risk != types.RiskLow {
			tips = append(tips, cls.Recommendations...)
		}
	}
	if len(tips) > maxHealthTips {
		tips = tips[:maxHealthTips]
	}
	return tips
}

// activitySuggestions is the fixed suggestion list per aggregate risk level.
var activitySuggestions = map[types.RiskLevel][]string{
	types.RiskLow: {
		"Great weather for outdoor activities",
		"Perfect for hiking or walking",
		"Ideal for sports and recreation",
		"Good conditions for gardening",
	},
	types.RiskModerate: {
		"Consider indoor activities",
		"Plan outdoor activities with precautions",
		"Have backup indoor options ready",
		"Monitor conditions throughout the day",
	},
	types.RiskHigh: {
		"Stay indoors if possible",
		"Focus on indoor activities",
		"Postpone outdoor plans",
		"Have emergency plans ready",
	},
}

// ActivitySuggestions selects the suggestion list for the overall risk level.
func ActivitySuggestions(level types.RiskLevel) []string {
	return activitySuggestions[level]
}

// wetConditionTexts are condition texts that steer event recommendations
// indoors, matched case-insensitively.
var wetConditionTexts = map[string]bool{
	"rain":         true,
	"storm":        true,
	"thunderstorm": true,
}

// EventRecommendation pairs activity suggestions with the weather context
// that produced them.
type EventRecommendation struct {
	SuitableActivities    []string `json:"suitable_activities"`
	WeatherConsiderations []string `json:"weather_considerations"`
	OptimalTimes          []string `json:"optimal_times"`
}

// RecommendEvents derives event guidance from the snapshot. The branches are
// evaluated in priority order: extreme temperature, wet conditions, high UV
// or poor air quality, then the good-weather default. Optimal times are
// selected by temperature band independently of the activity branch.
func RecommendEvents(snap types.Snapshot) EventRecommendation {
	var rec EventRecommendation

	switch {
	case snap.Temperature > 85 || snap.Temperature < 32:
		rec.SuitableActivities = []string{
			"Indoor activities",
			"Museum visits",
			"Library reading",
			"Indoor sports",
			"Cooking classes",
		}
		rec.WeatherConsiderations = []string{
			"Extreme temperature conditions",
			"Limit outdoor exposure",
			"Stay hydrated and comfortable",
		}
	case wetConditionTexts[strings.ToLower(snap.Condition)]:
		rec.SuitableActivities = []string{
			"Indoor entertainment",
			"Movie theaters",
			"Shopping malls",
			"Indoor games",
			"Art galleries",
		}
		rec.WeatherConsiderations = []string{
			"Wet weather conditions",
			"Avoid outdoor activities",
			"Have umbrella if going out",
		}
	case snap.UVIndex > 8 || snap.AQI > 100:
		rec.SuitableActivities = []string{
			"Indoor activities",
			"Gym workouts",
			"Indoor swimming",
			"Library visits",
			"Home activities",
		}
		rec.WeatherConsiderations = []string{
			"High UV or poor air quality",
			"Limit sun exposure",
			"Use air purifiers indoors",
		}
	default:
		rec.SuitableActivities = []string{
			"Outdoor sports",
			"Hiking and walking",
			"Picnics and barbecues",
			"Gardening",
			"Outdoor photography",
		}
		rec.WeatherConsiderations = []string{
			"Good weather conditions",
			"Enjoy outdoor activities",
			"Apply sunscreen if needed",
		}
	}

	switch {
	case snap.Temperature > 80:
		rec.OptimalTimes = []string{"Early morning (6-9 AM)", "Evening (6-9 PM)"}
	case snap.Temperature < 40:
		rec.OptimalTimes = []string{"Midday (10 AM-2 PM)", "Afternoon (2-5 PM)"}
	default:
		rec.OptimalTimes = []string{"Morning (8-11 AM)", "Afternoon (2-5 PM)", "Evening (6-8 PM)"}
	}

	return rec
}

// generalHealthTips apply regardless of conditions.
var generalHealthTips = []string{
	"Stay hydrated throughout the day",
	"Dress appropriately for the weather",
	"Monitor air quality for outdoor activities",
	"Get adequate sleep for immune health",
}

// HealthRecommendations holds the fixed action lists returned with every
// health insight.
type HealthRecommendations struct {
	ImmediateActions []string `json:"immediate_actions"`
	LongTermHealth   []string `json:"long_term_health"`
}

// normalRiskSentinel is returned as the sole risk factor when no risk band
// triggers.
const normalRiskSentinel = "Normal risk level for current conditions"

// HealthAssessment is the health guidance derived from one snapshot.
// WeatherSpecific is populated only for the bands the snapshot triggers.
type HealthAssessment struct {
	GeneralTips     []string              `json:"general_tips"`
	WeatherSpecific map[string][]string   `json:"weather_specific"`
	RiskFactors     []string              `json:"risk_factors"`
	Recommendations HealthRecommendations `json:"recommendations"`
}

// AssessHealth derives health guidance from the snapshot. Hot and cold bands
// are mutually exclusive; humidity and air quality bands are independent.
// Risk factors collect the more extreme thresholds (temperature beyond
// [20,90], UV above 8, AQI above 150, humidity above 90), falling back to a
// single normal-risk sentinel when none trigger.
func AssessHealth(snap types.Snapshot) HealthAssessment {
	weatherSpecific := map[string][]string{}

	if snap.Temperature > 85 {
		weatherSpecific["hot_weather"] = []string{
			"Drink 8-10 glasses of water daily",
			"Avoid alcohol and caffeine",
			"Wear light, loose clothing",
			"Take breaks in air conditioning",
			"Watch for heat exhaustion signs",
		}
	} else if snap.Temperature < 32 {
		weatherSpecific["cold_weather"] = []string{
			"Layer clothing for warmth",
			"Protect hands, feet, and head",
			"Stay dry to prevent hypothermia",
			"Limit time outdoors",
			"Warm up gradually after being outside",
		}
	}

	if snap.Humidity > 80 {
		weatherSpecific["high_humidity"] = []string{
			"Use fans or air conditioning",
			"Avoid strenuous activities",
			"Stay in well-ventilated areas",
			"Monitor for heat-related illness",
		}
	}

	if snap.AQI > 100 {
		weatherSpecific["poor_air_quality"] = []string{
			"Limit outdoor activities",
			"Use air purifiers indoors",
			"Wear N95 masks if going out",
			"Keep windows closed",
			"Avoid outdoor exercise",
		}
	}

	riskFactors := []string{}
	if snap.Temperature > 90 || snap.Temperature < 20 {
		riskFactors = append(riskFactors, "Extreme temperature exposure")
	}
	if snap.UVIndex > 8 {
		riskFactors = append(riskFactors, "High UV exposure")
	}
	if snap.AQI > 150 {
		riskFactors = append(riskFactors, "Poor air quality")
	}
	if snap.Humidity > 90 {
		riskFactors = append(riskFactors, "High humidity stress")
	}
	if len(riskFactors) == 0 {
		riskFactors = append(riskFactors, normalRiskSentinel)
	}

	return HealthAssessment{
		GeneralTips:     generalHealthTips,
		WeatherSpecific: weatherSpecific,
		RiskFactors:     riskFactors,
		Recommendations: HealthRecommendations{
			ImmediateActions: []string{
				"Check current conditions before going out",
				"Dress appropriately for the weather",
				"Stay informed about weather changes",
			},
			LongTermHealth: []string{
				"Maintain regular exercise routine",
				"Eat a balanced diet",
				"Get regular health checkups",
				"Monitor weather-related health conditions",
			},
		},
	}
}
