// Package types defines the domain model shared across the AtmosAI insights
// service: weather snapshots, per-factor risk classifications, aggregate risk
// verdicts, and synthesized alerts. Every entity is constructed fresh per
// request and discarded after the response is serialized; nothing here is
// persisted or shared across requests.
package types

import (
	"encoding/json"
	"time"
)

// RiskLevel is the categorical severity assigned per factor and in aggregate.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// Factor identifies a measured weather variable.
type Factor string

const (
	FactorTemperature Factor = "temperature"
	FactorHumidity    Factor = "humidity"
	FactorUV          Factor = "uv"
	FactorAirQuality  Factor = "air_quality"
	FactorWind        Factor = "wind"
)

// AlertType is the display severity of a synthesized alert.
type AlertType string

const (
	AlertInfo     AlertType = "info"
	AlertModerate AlertType = "moderate"
	AlertSevere   AlertType = "severe"
)

// AlertCategory selects the alert's validity duration and precaution text.
type AlertCategory string

const (
	AlertCategoryWeather     AlertCategory = "weather"
	AlertCategoryAirQuality  AlertCategory = "air-quality"
	AlertCategoryUV          AlertCategory = "uv"
	AlertCategoryTemperature AlertCategory = "temperature"
)

// AlertSourceGenerated tags every alert produced by the insights engine.
const AlertSourceGenerated = "ai-generated"

// Neutral defaults substituted when a measurement is absent from the request
// payload. Defaults are applied before classification so threshold
// comparisons never see a missing value.
const (
	DefaultTemperature = 70.0 // °F
	DefaultHumidity    = 50.0 // %
	DefaultUVIndex     = 0.0
	DefaultAQI         = 0.0
	DefaultWindSpeed   = 0.0 // mph
)

// AirQuality carries the pollution measurements nested under the current
// conditions object.
type AirQuality struct {
	AQI *float64 `json:"aqi,omitempty"`
}

// ConditionInfo is the textual weather condition reported by the provider,
// e.g. {"main": "Thunderstorm", "description": "heavy thunderstorm"}.
type ConditionInfo struct {
	Main        string `json:"main"`
	Description string `json:"description,omitempty"`
}

// CurrentConditions is the wire shape of one observed weather state. Numeric
// fields are pointers so that an absent measurement is distinguishable from a
// zero reading; upstream providers attach additional fields that the engine
// does not read.
type CurrentConditions struct {
	Temperature *float64       `json:"temperature,omitempty"`
	Humidity    *float64       `json:"humidity,omitempty"`
	UVIndex     *float64       `json:"uvIndex,omitempty"`
	WindSpeed   *float64       `json:"windSpeed,omitempty"`
	AirQuality  *AirQuality    `json:"airQuality,omitempty"`
	Condition   *ConditionInfo `json:"condition,omitempty"`
}

// WeatherData is the weather payload envelope supplied by the client. The
// forecast, hourly, and alerts arrays are accepted for wire compatibility but
// the engine derives everything from the current conditions.
type WeatherData struct {
	Current  CurrentConditions `json:"current"`
	Forecast []json.RawMessage `json:"forecast,omitempty"`
	Hourly   []json.RawMessage `json:"hourly,omitempty"`
	Alerts   []json.RawMessage `json:"alerts,omitempty"`
}

// Snapshot is a fully-resolved weather observation with neutral defaults
// applied. All engine derivations are pure functions of this value.
type Snapshot struct {
	Temperature     float64
	Humidity        float64
	UVIndex         float64
	AQI             float64
	WindSpeed       float64
	Condition       string // condition text as reported, e.g. "Thunderstorm"
	ConditionDetail string
}

// Snapshot resolves the wire conditions into a Snapshot, substituting the
// documented neutral default for every absent measurement.
func (c CurrentConditions) Snapshot() Snapshot {
	snap := Snapshot{
		Temperature: DefaultTemperature,
		Humidity:    DefaultHumidity,
		UVIndex:     DefaultUVIndex,
		AQI:         DefaultAQI,
		WindSpeed:   DefaultWindSpeed,
	}
	if c.Temperature != nil {
		snap.Temperature = *c.Temperature
	}
	if c.Humidity != nil {
		snap.Humidity = *c.Humidity
	}
	if c.UVIndex != nil {
		snap.UVIndex = *c.UVIndex
	}
	if c.WindSpeed != nil {
		snap.WindSpeed = *c.WindSpeed
	}
	if c.AirQuality != nil && c.AirQuality.AQI != nil {
		snap.AQI = *c.AirQuality.AQI
	}
	if c.Condition != nil {
		snap.Condition = c.Condition.Main
		snap.ConditionDetail = c.Condition.Description
	}
	return snap
}

// UserPreferences carries client display preferences. They are accepted on
// the wire for compatibility; the engine's rule tables do not branch on them.
type UserPreferences struct {
	TemperatureUnit     string          `json:"temperature_unit,omitempty"`
	Notifications       map[string]bool `json:"notifications,omitempty"`
	HealthTipsEnabled   bool            `json:"health_tips_enabled,omitempty"`
	ActivitySuggestions bool            `json:"activity_suggestions,omitempty"`
}

// Location is the place a weather snapshot pertains to. It is immutable once
// constructed and is used only for labeling alerts, never for geodesic
// computation.
type Location struct {
	Name    string  `json:"name" validate:"required"`
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lng     float64 `json:"lng" validate:"min=-180,max=180"`
	Country string  `json:"country,omitempty"`
	State   string  `json:"state,omitempty"`
	City    string  `json:"city,omitempty"`
}

// FactorClassification is the risk verdict for one measured factor. Risk is
// fully determined by the factor and its numeric value via the engine's
// threshold tables; it is never set independently.
type FactorClassification struct {
	Factor          Factor    `json:"-"`
	Condition       string    `json:"condition"`
	Risk            RiskLevel `json:"risk"`
	Recommendations []string  `json:"recommendations"`
}

// OverallRisk is the aggregate verdict across all classified factors.
// Factors lists the condition labels of every classification with non-low
// risk, preserving classification order.
type OverallRisk struct {
	Level           RiskLevel `json:"level"`
	Factors         []string  `json:"factors"`
	Recommendations []string  `json:"recommendations"`
}

// Coordinates is the lat/lng pair embedded in an alert's location block.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AlertLocation is the location block serialized on every alert.
type AlertLocation struct {
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
}

// Severity grades an alert on a 1..5 scale with a human-readable summary.
type Severity struct {
	Level       int    `json:"level"`
	Description string `json:"description"`
}

// Alert is a synthesized warning. EndTime is always StartTime plus a fixed
// duration determined by Category.
type Alert struct {
	ID          string        `json:"id"`
	Type        AlertType     `json:"type"`
	Category    AlertCategory `json:"category"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    AlertLocation `json:"location"`
	StartTime   time.Time     `json:"startTime"`
	EndTime     time.Time     `json:"endTime"`
	Precautions []string      `json:"precautions"`
	Severity    Severity      `json:"severity"`
	IsActive    bool          `json:"isActive"`
	Source      string        `json:"source"`
}
