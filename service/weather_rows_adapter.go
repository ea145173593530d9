package services

import (
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"farm-dashboard/models/weather"
)

// CSV column names. Producers disagree on temperature and humidity naming,
// so the first name present in the header wins.
const (
	DATE_COLUMN             = "date"
	RAIN_COLUMN             = "rain_mm"
	NEEDS_IRRIGATION_COLUMN = "needs_irrigation"
)

var (
	temperatureColumns = []string{"t2m_c", "temperature_c"}
	humidityColumns    = []string{"rh2m_pct", "humidity_pct"}
)

// ToWeatherObservations converts CSV rows into observations ordered by date.
// Rows without a usable date are dropped.
func ToWeatherObservations(rows []map[string]string) []weather.WeatherObservation {
	if len(rows) == 0 {
		return []weather.WeatherObservation{}
	}
	tempKey := pickColumn(rows[0], temperatureColumns)
	humidityKey := pickColumn(rows[0], humidityColumns)

	out := make([]weather.WeatherObservation, 0, len(rows))
	for _, row := range rows {
		o, ok := toObservation(row, tempKey, humidityKey)
		if !ok {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// ToAnalyzedObservations is ToWeatherObservations plus the optional
// needs_irrigation flag.
func ToAnalyzedObservations(rows []map[string]string) []weather.AnalyzedObservation {
	if len(rows) == 0 {
		return []weather.AnalyzedObservation{}
	}
	tempKey := pickColumn(rows[0], temperatureColumns)
	humidityKey := pickColumn(rows[0], humidityColumns)

	out := make([]weather.AnalyzedObservation, 0, len(rows))
	for _, row := range rows {
		o, ok := toObservation(row, tempKey, humidityKey)
		if !ok {
			continue
		}
		out = append(out, weather.AnalyzedObservation{
			WeatherObservation: o,
			NeedsIrrigation:    parseFlag(row[NEEDS_IRRIGATION_COLUMN]),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func toObservation(row map[string]string, tempKey, humidityKey string) (weather.WeatherObservation, bool) {
	raw := strings.TrimSpace(row[DATE_COLUMN])
	if raw == "" {
		return weather.WeatherObservation{}, false
	}
	date, err := parseDate(raw)
	if err != nil {
		log.Printf("[WeatherRowsAdapter] Skipping row with unparseable date %q: %v", raw, err)
		return weather.WeatherObservation{}, false
	}
	return weather.WeatherObservation{
		Date:         date,
		RainMm:       parseRain(row[RAIN_COLUMN]),
		HumidityPct:  parseHumidity(row[humidityKey]),
		TemperatureC: parseNumber(row[tempKey]),
	}, true
}

func pickColumn(row map[string]string, candidates []string) string {
	for _, c := range candidates {
		if _, ok := row[c]; ok {
			return c
		}
	}
	return candidates[len(candidates)-1]
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(weather.DateLayout, s); err == nil {
		return t, nil
	}
	// Spreadsheet exports sometimes carry a time component.
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// parseRain coerces missing, malformed and negative readings to 0.
func parseRain(s string) float64 {
	v := parseNumber(s)
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}

// parseHumidity treats anything outside [0,100] as absent.
func parseHumidity(s string) *float64 {
	v := parseNumber(s)
	if v == nil || *v < 0 || *v > 100 {
		return nil
	}
	return v
}

func parseFlag(s string) *bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	switch strings.ToLower(s) {
	case "yes", "y":
		v := true
		return &v
	case "no", "n":
		v := false
		return &v
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &v
}
