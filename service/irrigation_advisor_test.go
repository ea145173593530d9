package services

import (
	"testing"
	"time"

	"farm-dashboard/models"
	"farm-dashboard/models/weather"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func b(v bool) *bool { return &v }

func day(n int) time.Time {
	return time.Date(2024, time.May, n, 0, 0, 0, 0, time.UTC)
}

func obs(n int, rain float64, humidity *float64) weather.WeatherObservation {
	return weather.WeatherObservation{Date: day(n), RainMm: rain, HumidityPct: humidity}
}

func analyzedRow(n int, flag *bool) weather.AnalyzedObservation {
	return weather.AnalyzedObservation{WeatherObservation: obs(n, 0, nil), NeedsIrrigation: flag}
}

func TestEvaluateIrrigation_NoAnalyzedRows(t *testing.T) {
	for _, p := range NewCropCatalog().All() {
		got := EvaluateIrrigation(nil, nil, p)
		assert.Equal(t, models.AdvisoryResult{Status: models.StatusUnknown, Reason: "No data"}, got, p.Key)
	}
	got := EvaluateIrrigation([]weather.AnalyzedObservation{}, []weather.WeatherObservation{obs(1, 0, nil)}, GenericCropProfile())
	assert.Equal(t, models.StatusUnknown, got.Status)
}

func TestEvaluateIrrigation_AnalyzedFlagOverrides(t *testing.T) {
	analyzed := []weather.AnalyzedObservation{analyzedRow(1, b(false)), analyzedRow(2, b(true))}
	soaked := []weather.WeatherObservation{obs(1, 50, f(95)), obs(2, 50, f(95)), obs(3, 50, f(95))}

	for _, recent := range [][]weather.WeatherObservation{nil, soaked} {
		got := EvaluateIrrigation(analyzed, recent, GenericCropProfile())
		assert.Equal(t, models.AdvisoryResult{Status: models.StatusNeedsIrrigation, Reason: "analyzed flag"}, got)
	}
}

func TestEvaluateIrrigation_OnlyLatestFlagConsulted(t *testing.T) {
	analyzed := []weather.AnalyzedObservation{analyzedRow(1, b(true)), analyzedRow(2, nil)}

	got := EvaluateIrrigation(analyzed, nil, GenericCropProfile())

	assert.Equal(t, models.AdvisoryResult{Status: models.StatusOK, Reason: "No weather rows to analyze"}, got)
}

func TestEvaluateIrrigation_FalseFlagFallsThrough(t *testing.T) {
	analyzed := []weather.AnalyzedObservation{analyzedRow(1, b(false))}

	got := EvaluateIrrigation(analyzed, []weather.WeatherObservation{}, GenericCropProfile())

	assert.Equal(t, models.AdvisoryResult{Status: models.StatusOK, Reason: "No weather rows to analyze"}, got)
}

func TestEvaluateIrrigation_LowRainAndHumidity(t *testing.T) {
	recent := []weather.WeatherObservation{obs(1, 2, f(40)), obs(2, 1, f(42)), obs(3, 1, f(45))}

	got := EvaluateIrrigation([]weather.AnalyzedObservation{analyzedRow(3, nil)}, recent, GenericCropProfile())

	assert.Equal(t, models.AdvisoryResult{
		Status: models.StatusNeedsIrrigation,
		Reason: "Low recent rain (4mm) and humidity 45",
	}, got)
}

func TestEvaluateIrrigation_RainSumKeepsFloatDigits(t *testing.T) {
	recent := []weather.WeatherObservation{obs(1, 0.1, f(40)), obs(2, 0.2, f(40))}

	got := EvaluateIrrigation([]weather.AnalyzedObservation{analyzedRow(2, nil)}, recent, GenericCropProfile())

	assert.Equal(t, "Low recent rain (0.30000000000000004mm) and humidity 40", got.Reason)
}

func TestEvaluateIrrigation_EnoughRain(t *testing.T) {
	recent := []weather.WeatherObservation{obs(1, 3, f(60)), obs(2, 3, f(65)), obs(3, 4, f(70))}

	got := EvaluateIrrigation([]weather.AnalyzedObservation{analyzedRow(3, nil)}, recent, GenericCropProfile())

	assert.Equal(t, models.AdvisoryResult{Status: models.StatusOK, Reason: "Recent rain 10mm (threshold 5mm)"}, got)
}

func TestEvaluateIrrigation_OnlyLastThreeDaysCount(t *testing.T) {
	recent := []weather.WeatherObservation{
		obs(1, 100, f(40)), obs(2, 100, f(40)),
		obs(3, 1, f(40)), obs(4, 1, f(40)), obs(5, 1.5, f(40)),
	}

	got := EvaluateIrrigation([]weather.AnalyzedObservation{analyzedRow(5, nil)}, recent, GenericCropProfile())

	assert.Equal(t, "Low recent rain (3.5mm) and humidity 40", got.Reason)
}

func TestEvaluateIrrigation_ShortWindow(t *testing.T) {
	recent := []weather.WeatherObservation{obs(1, 6, f(30))}

	got := EvaluateIrrigation([]weather.AnalyzedObservation{analyzedRow(1, nil)}, recent, GenericCropProfile())

	assert.Equal(t, models.AdvisoryResult{Status: models.StatusOK, Reason: "Recent rain 6mm (threshold 5mm)"}, got)
}

func TestEvaluateIrrigation_MissingHumidityDoesNotBlock(t *testing.T) {
	recent := []weather.WeatherObservation{obs(1, 0, f(99)), obs(2, 0, f(99)), obs(3, 0, nil)}

	got := EvaluateIrrigation([]weather.AnalyzedObservation{analyzedRow(3, nil)}, recent, GenericCropProfile())

	assert.Equal(t, models.AdvisoryResult{
		Status: models.StatusNeedsIrrigation,
		Reason: "Low recent rain (0mm) and humidity null",
	}, got)
}

func TestEvaluateIrrigation_HighHumidityKeepsOK(t *testing.T) {
	recent := []weather.WeatherObservation{obs(1, 0, nil), obs(2, 0, nil), obs(3, 0, f(55))}

	got := EvaluateIrrigation([]weather.AnalyzedObservation{analyzedRow(3, nil)}, recent, GenericCropProfile())

	assert.Equal(t, models.AdvisoryResult{Status: models.StatusOK, Reason: "Recent rain 0mm (threshold 5mm)"}, got)
}

func TestEvaluateIrrigation_ThresholdBoundary(t *testing.T) {
	recent := []weather.WeatherObservation{obs(1, 2, f(40)), obs(2, 2, f(40)), obs(3, 1, f(40))}
	analyzed := []weather.AnalyzedObservation{analyzedRow(3, nil)}
	profile := GenericCropProfile()

	// rainSum == threshold is not "less than".
	got := EvaluateIrrigation(analyzed, recent, profile)
	assert.Equal(t, models.AdvisoryResult{Status: models.StatusOK, Reason: "Recent rain 5mm (threshold 5mm)"}, got)

	profile.RainThresholdMm = 5.5
	got = EvaluateIrrigation(analyzed, recent, profile)
	assert.Equal(t, models.StatusNeedsIrrigation, got.Status)
}

func TestEvaluateIrrigation_CropThresholds(t *testing.T) {
	catalog := NewCropCatalog()
	corn, _ := catalog.Lookup("corn")
	grapes, _ := catalog.Lookup("grapes")
	recent := []weather.WeatherObservation{obs(1, 2, f(45)), obs(2, 2, f(45)), obs(3, 2, f(45))}
	analyzed := []weather.AnalyzedObservation{analyzedRow(3, nil)}

	assert.Equal(t, models.StatusNeedsIrrigation, EvaluateIrrigation(analyzed, recent, corn).Status)
	assert.Equal(t, models.AdvisoryResult{Status: models.StatusOK, Reason: "Recent rain 6mm (threshold 4mm)"},
		EvaluateIrrigation(analyzed, recent, grapes))
}

func TestEvaluateIrrigation_Idempotent(t *testing.T) {
	recent := []weather.WeatherObservation{obs(1, 2, f(40)), obs(2, 1, f(42)), obs(3, 1, f(45))}
	analyzed := []weather.AnalyzedObservation{analyzedRow(3, nil)}
	recentCopy := append([]weather.WeatherObservation(nil), recent...)

	first := EvaluateIrrigation(analyzed, recent, GenericCropProfile())
	second := EvaluateIrrigation(analyzed, recent, GenericCropProfile())

	assert.Equal(t, first, second)
	assert.Equal(t, recentCopy, recent)
}

func TestAdvisoryStatus_Treatment(t *testing.T) {
	assert.Equal(t, models.TreatmentAlert, models.StatusNeedsIrrigation.Treatment())
	assert.Equal(t, models.TreatmentPositive, models.StatusOK.Treatment())
	assert.Equal(t, models.TreatmentNeutral, models.StatusUnknown.Treatment())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "4", formatNumber(4))
	assert.Equal(t, "4.5", formatNumber(4.5))
	a, b := 0.1, 0.2
	assert.Equal(t, "0.30000000000000004", formatNumber(a+b))
	assert.Equal(t, "null", formatOptional(nil))
}
