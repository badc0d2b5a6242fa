package types

import (
	"encoding/json"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestSnapshot_AppliesDefaults(t *testing.T) {
	snap := CurrentConditions{}.Snapshot()

	if snap.Temperature != DefaultTemperature {
		t.Errorf("expected default temperature, got %v", snap.Temperature)
	}
	if snap.Humidity != DefaultHumidity {
		t.Errorf("expected default humidity, got %v", snap.Humidity)
	}
	if snap.UVIndex != DefaultUVIndex {
		t.Errorf("expected default uv index, got %v", snap.UVIndex)
	}
	if snap.AQI != DefaultAQI {
		t.Errorf("expected default aqi, got %v", snap.AQI)
	}
	if snap.WindSpeed != DefaultWindSpeed {
		t.Errorf("expected default wind speed, got %v", snap.WindSpeed)
	}
	if snap.Condition != "" {
		t.Errorf("expected empty condition, got %q", snap.Condition)
	}
}

func TestSnapshot_ZeroIsNotAbsent(t *testing.T) {
	// An explicit zero reading must survive, not be replaced by a default.
	snap := CurrentConditions{
		Temperature: floatPtr(0),
		Humidity:    floatPtr(0),
	}.Snapshot()

	if snap.Temperature != 0 {
		t.Errorf("expected temperature 0, got %v", snap.Temperature)
	}
	if snap.Humidity != 0 {
		t.Errorf("expected humidity 0, got %v", snap.Humidity)
	}
}

func TestSnapshot_ResolvesNestedFields(t *testing.T) {
	snap := CurrentConditions{
		Temperature: floatPtr(95),
		AirQuality:  &AirQuality{AQI: floatPtr(120)},
		Condition:   &ConditionInfo{Main: "Thunderstorm", Description: "heavy thunderstorm"},
	}.Snapshot()

	if snap.Temperature != 95 {
		t.Errorf("expected temperature 95, got %v", snap.Temperature)
	}
	if snap.AQI != 120 {
		t.Errorf("expected aqi 120, got %v", snap.AQI)
	}
	if snap.Condition != "Thunderstorm" {
		t.Errorf("expected condition Thunderstorm, got %q", snap.Condition)
	}
	if snap.ConditionDetail != "heavy thunderstorm" {
		t.Errorf("expected condition detail, got %q", snap.ConditionDetail)
	}
}

func TestSnapshot_MissingAQIInsideAirQuality(t *testing.T) {
	snap := CurrentConditions{AirQuality: &AirQuality{}}.Snapshot()

	if snap.AQI != DefaultAQI {
		t.Errorf("expected default aqi, got %v", snap.AQI)
	}
}

func TestCurrentConditions_DecodesCamelCaseWire(t *testing.T) {
	payload := `{
		"temperature": 72.5,
		"humidity": 45,
		"uvIndex": 6,
		"windSpeed": 12,
		"airQuality": {"aqi": 55},
		"condition": {"main": "Clouds", "description": "scattered clouds"}
	}`

	var c CurrentConditions
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	snap := c.Snapshot()
	if snap.Temperature != 72.5 || snap.UVIndex != 6 || snap.WindSpeed != 12 || snap.AQI != 55 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}

func TestAlert_SerializesCamelCase(t *testing.T) {
	data, err := json.Marshal(Alert{ID: "a-1", IsActive: true})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	for _, key := range []string{"startTime", "endTime", "isActive"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("expected field %q in serialized alert", key)
		}
	}
}

func TestFactorClassification_FactorOmittedFromJSON(t *testing.T) {
	data, err := json.Marshal(FactorClassification{
		Factor:    FactorTemperature,
		Condition: "hot",
		Risk:      RiskHigh,
	})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := fields["Factor"]; ok {
		t.Error("Factor must not appear in serialized output")
	}
	if _, ok := fields["factor"]; ok {
		t.Error("factor must not appear in serialized output")
	}
}
