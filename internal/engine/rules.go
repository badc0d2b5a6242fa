package engine

import "atmosai/internal/types"

// factorRule is one row of a threshold table: a predicate over the measured
// value, the condition label it assigns, the risk it implies, and the
// recommendations that accompany it. Rules are evaluated top to bottom; the
// first match wins, and every table ends with a catch-all row.
type factorRule struct {
	match           func(v float64) bool
	condition       string
	risk            types.RiskLevel
	recommendations []string
}

// always is the catch-all predicate terminating every table.
func always(float64) bool { return true }

// Threshold tables. Boundary operators differ per factor (> vs >=) and are
// intentional: temperature and humidity trigger strictly beyond their
// thresholds, while UV, air quality, and wind trigger at them.
var (
	temperatureRules = []factorRule{
		{func(v float64) bool { return v > 85 }, "hot", types.RiskHigh, []string{
			"Stay hydrated",
			"Avoid prolonged sun exposure",
			"Wear light, breathable clothing",
			"Seek air conditioning",
		}},
		{func(v float64) bool { return v < 32 }, "cold", types.RiskHigh, []string{
			"Dress in layers",
			"Protect extremities",
			"Stay dry",
			"Limit outdoor time",
		}},
		{always, "comfortable", types.RiskLow, []string{
			"Enjoy outdoor activities",
		}},
	}

	humidityRules = []factorRule{
		{func(v float64) bool { return v > 80 }, "high_humidity", types.RiskModerate, []string{
			"Stay hydrated",
			"Avoid strenuous activities",
			"Use fans or air conditioning",
		}},
		{func(v float64) bool { return v < 30 }, "low_humidity", types.RiskLow, []string{
			"Use moisturizer",
			"Stay hydrated",
			"Consider humidifier",
		}},
		{always, "comfortable", types.RiskLow, []string{
			"Normal humidity levels",
		}},
	}

	uvRules = []factorRule{
		{func(v float64) bool { return v >= 8 }, "very_high", types.RiskHigh, []string{
			"Avoid sun 10am-4pm",
			"Apply SPF 30+ sunscreen",
			"Wear protective clothing",
			"Seek shade",
		}},
		{func(v float64) bool { return v >= 6 }, "moderate", types.RiskModerate, []string{
			"Apply sunscreen",
			"Wear sunglasses",
			"Limit sun exposure",
		}},
		{always, "low", types.RiskLow, []string{
			"Minimal sun protection needed",
		}},
	}

	airQualityRules = []factorRule{
		{func(v float64) bool { return v >= 100 }, "unhealthy", types.RiskHigh, []string{
			"Limit outdoor activities",
			"Keep windows closed",
			"Use air purifiers",
			"Wear N95 masks if outdoors",
		}},
		{func(v float64) bool { return v >= 50 }, "moderate", types.RiskModerate, []string{
			"Sensitive groups should limit outdoor time",
			"Monitor air quality",
			"Consider indoor activities",
		}},
		{always, "good", types.RiskLow, []string{
			"Good air quality for outdoor activities",
		}},
	}

	windRules = []factorRule{
		{func(v float64) bool { return v >= 25 }, "high_wind", types.RiskHigh, []string{
			"Avoid outdoor activities",
			"Secure loose objects",
			"Be cautious driving",
		}},
		{func(v float64) bool { return v >= 15 }, "moderate_wind", types.RiskModerate, []string{
			"Be cautious with outdoor activities",
			"Secure loose items",
			"Consider wind chill",
		}},
		{always, "calm", types.RiskLow, []string{
			"Pleasant wind conditions",
		}},
	}
)

// factorRules indexes the threshold tables by factor.
var factorRules = map[types.Factor][]factorRule{
	types.FactorTemperature: temperatureRules,
	types.FactorHumidity:    humidityRules,
	types.FactorUV:          uvRules,
	types.FactorAirQuality:  airQualityRules,
	types.FactorWind:        windRules,
}

// overallRecommendations is the fixed recommendation list per aggregate risk
// level.
var overallRecommendations = map[types.RiskLevel][]string{
	types.RiskHigh: {
		"Avoid outdoor activities if possible",
		"Take all necessary precautions",
		"Monitor weather conditions closely",
		"Have emergency plans ready",
	},
	types.RiskModerate: {
		"Exercise caution with outdoor activities",
		"Take appropriate precautions",
		"Monitor conditions for changes",
	},
	types.RiskLow: {
		"Good conditions for outdoor activities",
		"Enjoy the weather safely",
	},
}
