package engine

import (
	"time"

	"atmosai/internal/types"
)

// Classify maps one measured value to its condition label, risk level, and
// recommendation list via the factor's threshold table. It is deterministic
// and total: every table ends with a catch-all row, so every numeric input
// classifies.
func Classify(factor types.Factor, value float64) types.FactorClassification {
	for _, rule := range factorRules[factor] {
		if rule.match(value) {
			return types.FactorClassification{
				Factor:          factor,
				Condition:       rule.condition,
				Risk:            rule.risk,
				Recommendations: rule.recommendations,
			}
		}
	}
	// Unknown factor: no table. Callers pass the Factor constants, so this
	// is not reachable from the API surface.
	return types.FactorClassification{Factor: factor, Condition: "unknown", Risk: types.RiskLow}
}

// Analysis holds the per-factor classifications and the aggregate verdict for
// one snapshot.
type Analysis struct {
	Temperature types.FactorClassification `json:"temperature_analysis"`
	Humidity    types.FactorClassification `json:"humidity_analysis"`
	UV          types.FactorClassification `json:"uv_analysis"`
	AirQuality  types.FactorClassification `json:"air_quality_analysis"`
	Wind        types.FactorClassification `json:"wind_analysis"`
	OverallRisk types.OverallRisk          `json:"overall_risk"`
	Timestamp   time.Time                  `json:"timestamp"`
}

// Classifications returns the factor classifications in aggregation order:
// temperature, humidity, uv, air quality, wind.
func (a Analysis) Classifications() []types.FactorClassification {
	return []types.FactorClassification{a.Temperature, a.Humidity, a.UV, a.AirQuality, a.Wind}
}

// AnalyzeConditions classifies every factor of the snapshot and aggregates
// the results. The Timestamp field is left zero; the service facade stamps
// it from its clock.
func AnalyzeConditions(snap types.Snapshot) Analysis {
	a := Analysis{
		Temperature: Classify(types.FactorTemperature, snap.Temperature),
		Humidity:    Classify(types.FactorHumidity, snap.Humidity),
		UV:          Classify(types.FactorUV, snap.UVIndex),
		AirQuality:  Classify(types.FactorAirQuality, snap.AQI),
		Wind:        Classify(types.FactorWind, snap.WindSpeed),
	}
	a.OverallRisk = Aggregate(a.Classifications())
	return a
}
