package weather

import "time"

// DateLayout is the calendar-date format used by the daily CSV files.
const DateLayout = "2006-01-02"

// WeatherObservation is one day of weather data.
// RainMm is never missing: absent or malformed readings are stored as 0.
type WeatherObservation struct {
	Date         time.Time `json:"date"`
	RainMm       float64   `json:"rain_mm"`
	HumidityPct  *float64  `json:"humidity_pct"`
	TemperatureC *float64  `json:"temperature_c"`
}

// DateLabel returns the date formatted the way the CSV files carry it.
func (o WeatherObservation) DateLabel() string {
	return o.Date.Format(DateLayout)
}

// AnalyzedObservation is a weather day that an upstream pipeline may have
// already classified. NeedsIrrigation is nil when the row carries no flag.
type AnalyzedObservation struct {
	WeatherObservation
	NeedsIrrigation *bool `json:"needs_irrigation,omitempty"`
}

// Flagged reports whether the upstream flag is present and true.
func (a AnalyzedObservation) Flagged() bool {
	return a.NeedsIrrigation != nil && *a.NeedsIrrigation
}
