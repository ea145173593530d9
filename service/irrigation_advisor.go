package services

import (
	"fmt"
	"strconv"

	"farm-dashboard/models"
	"farm-dashboard/models/crop"
	"farm-dashboard/models/weather"
)

// ADVISORY_WINDOW_DAYS is how many trailing observations feed the rain sum.
const ADVISORY_WINDOW_DAYS = 3

// EvaluateIrrigation decides whether the field needs water.
//
// An upstream needs_irrigation flag on the latest analyzed row always wins.
// Otherwise the rain of the last three weather days is summed and compared
// against the profile; a missing humidity reading never blocks a
// NeedsIrrigation verdict.
func EvaluateIrrigation(
	analyzed []weather.AnalyzedObservation,
	recent []weather.WeatherObservation,
	profile crop.CropProfile,
) models.AdvisoryResult {
	if len(analyzed) == 0 {
		return models.AdvisoryResult{Status: models.StatusUnknown, Reason: "No data"}
	}
	if analyzed[len(analyzed)-1].Flagged() {
		return models.AdvisoryResult{Status: models.StatusNeedsIrrigation, Reason: "analyzed flag"}
	}
	if len(recent) == 0 {
		return models.AdvisoryResult{Status: models.StatusOK, Reason: "No weather rows to analyze"}
	}

	start := len(recent) - ADVISORY_WINDOW_DAYS
	if start < 0 {
		start = 0
	}
	window := recent[start:]

	rainSum := 0.0
	for _, o := range window {
		rainSum += o.RainMm
	}
	humidity := window[len(window)-1].HumidityPct

	if rainSum < profile.RainThresholdMm && (humidity == nil || *humidity < profile.HumidityThresholdPct) {
		return models.AdvisoryResult{
			Status: models.StatusNeedsIrrigation,
			Reason: fmt.Sprintf("Low recent rain (%smm) and humidity %s", formatNumber(rainSum), formatOptional(humidity)),
		}
	}
	return models.AdvisoryResult{
		Status: models.StatusOK,
		Reason: fmt.Sprintf("Recent rain %smm (threshold %smm)", formatNumber(rainSum), formatNumber(profile.RainThresholdMm)),
	}
}

// formatNumber prints the shortest decimal that round-trips (4, 4.5, 0.3).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return "null"
	}
	return formatNumber(*v)
}
