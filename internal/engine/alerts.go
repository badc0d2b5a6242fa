package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"atmosai/internal/types"
)

// Validity windows per alert category. EndTime is always StartTime plus the
// category's window, regardless of severity.
const (
	weatherAlertValidity     = 4 * time.Hour
	airQualityAlertValidity  = 6 * time.Hour
	uvAlertValidity          = 8 * time.Hour
	temperatureAlertValidity = 12 * time.Hour
)

// severeConditionTexts are condition texts that trigger a severe weather
// alert on their own, matched case-insensitively.
var severeConditionTexts = map[string]bool{
	"thunderstorm": true,
	"tornado":      true,
	"hurricane":    true,
	"blizzard":     true,
}

// Precaution templates per alert category.
var (
	severeWeatherPrecautions = []string{
		"Stay indoors and away from windows",
		"Avoid using electrical appliances",
		"Do not drive through flooded roads",
		"Keep emergency supplies ready",
	}

	airQualityPrecautions = []string{
		"Limit outdoor activities",
		"Keep windows and doors closed",
		"Use air purifiers if available",
		"Wear N95 masks when outdoors",
	}

	uvPrecautions = []string{
		"Apply SPF 30+ sunscreen every 2 hours",
		"Wear protective clothing and sunglasses",
		"Seek shade during peak hours",
		"Stay hydrated",
	}
)

// SynthesizeAlerts evaluates the four trigger predicates against the raw
// snapshot and returns the alerts that fire, in fixed order: severe weather,
// air quality, UV, temperature. Triggers are independent; each fires its own
// alert and none suppresses another.
func (s *Service) SynthesizeAlerts(snap types.Snapshot, loc types.Location) []types.Alert {
	now := s.clock.Now()
	alerts := []types.Alert{}

	if isSevereWeather(snap) {
		alerts = append(alerts, severeWeatherAlert(snap, loc, now))
	}
	if snap.AQI > 100 {
		alerts = append(alerts, airQualityAlert(snap.AQI, loc, now))
	}
	if snap.UVIndex >= 8 {
		alerts = append(alerts, uvAlert(snap.UVIndex, loc, now))
	}
	if snap.Temperature > 90 || snap.Temperature < 20 {
		alerts = append(alerts, temperatureAlert(snap.Temperature, loc, now))
	}

	return alerts
}

// isSevereWeather reports whether the snapshot's condition text names a
// severe phenomenon or the wind speed exceeds 30 mph.
func isSevereWeather(snap types.Snapshot) bool {
	return severeConditionTexts[strings.ToLower(snap.Condition)] || snap.WindSpeed > 30
}

func severeWeatherAlert(snap types.Snapshot, loc types.Location, now time.Time) types.Alert {
	condition := snap.Condition
	if condition == "" {
		condition = "Unknown"
	}
	return newAlert(alertSpec{
		alertType:   types.AlertSevere,
		category:    types.AlertCategoryWeather,
		title:       "Severe Weather Warning - " + condition,
		description: fmt.Sprintf("Severe weather conditions detected in %s. %s", loc.Name, snap.ConditionDetail),
		validity:    weatherAlertValidity,
		precautions: severeWeatherPrecautions,
		severity:    types.Severity{Level: 5, Description: "Extreme danger"},
	}, loc, now)
}

func airQualityAlert(aqi float64, loc types.Location, now time.Time) types.Alert {
	alertType := types.AlertModerate
	severityLevel := 3
	healthNote := "Unhealthy for sensitive groups"
	if aqi >= 150 {
		alertType = types.AlertSevere
		severityLevel = 4
		healthNote = "Unhealthy for everyone"
	}
	return newAlert(alertSpec{
		alertType:   alertType,
		category:    types.AlertCategoryAirQuality,
		title:       "Air Quality Alert - AQI " + formatValue(aqi),
		description: fmt.Sprintf("Air quality index is %s in %s. %s.", formatValue(aqi), loc.Name, healthNote),
		validity:    airQualityAlertValidity,
		precautions: airQualityPrecautions,
		severity:    types.Severity{Level: severityLevel, Description: "Moderate to high health risk"},
	}, loc, now)
}

func uvAlert(uvIndex float64, loc types.Location, now time.Time) types.Alert {
	return newAlert(alertSpec{
		alertType:   types.AlertInfo,
		category:    types.AlertCategoryUV,
		title:       "High UV Index Alert - " + formatValue(uvIndex),
		description: fmt.Sprintf("UV index is %s in %s. Very high risk of sunburn and skin damage.", formatValue(uvIndex), loc.Name),
		validity:    uvAlertValidity,
		precautions: uvPrecautions,
		severity:    types.Severity{Level: 3, Description: "High UV exposure risk"},
	}, loc, now)
}

func temperatureAlert(temp float64, loc types.Location, now time.Time) types.Alert {
	title := "Cold Weather Alert"
	extreme := "Extreme cold"
	firstPrecaution := "Dress warmly"
	if temp > 90 {
		title = "Heat Advisory"
		extreme = "Extreme heat"
		firstPrecaution = "Stay hydrated"
	}
	return newAlert(alertSpec{
		alertType:   types.AlertModerate,
		category:    types.AlertCategoryTemperature,
		title:       title,
		description: fmt.Sprintf("Temperature is %s°F in %s. %s conditions.", formatValue(temp), loc.Name, extreme),
		validity:    temperatureAlertValidity,
		precautions: []string{
			firstPrecaution,
			"Limit outdoor time",
			"Check on vulnerable individuals",
			"Monitor for heat/cold related symptoms",
		},
		severity: types.Severity{Level: 3, Description: "Temperature health risk"},
	}, loc, now)
}

// alertSpec collects the category-specific pieces of an alert before the
// shared fields are filled in.
type alertSpec struct {
	alertType   types.AlertType
	category    types.AlertCategory
	title       string
	description string
	validity    time.Duration
	precautions []string
	severity    types.Severity
}

func newAlert(spec alertSpec, loc types.Location, now time.Time) types.Alert {
	return types.Alert{
		ID:          uuid.NewString(),
		Type:        spec.alertType,
		Category:    spec.category,
		Title:       spec.title,
		Description: spec.description,
		Location: types.AlertLocation{
			Name:        loc.Name,
			Coordinates: types.Coordinates{Lat: loc.Lat, Lng: loc.Lng},
		},
		StartTime:   now,
		EndTime:     now.Add(spec.validity),
		Precautions: spec.precautions,
		Severity:    spec.severity,
		IsActive:    true,
		Source:      types.AlertSourceGenerated,
	}
}

// formatValue renders a measurement for alert text without a trailing
// decimal point for whole numbers (95 rather than 95.0).
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
