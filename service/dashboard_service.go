package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"

	"farm-dashboard/api/weathercsv"
	"farm-dashboard/models"
	"farm-dashboard/models/crop"
	"farm-dashboard/models/weather"
	"farm-dashboard/observability"

	"github.com/jonboulle/clockwork"
)

const NO_WEATHER_DATA_MESSAGE = "No weather data found. Check that the weather CSV is published and has dated rows."

// ErrNoWeatherData is returned by Refresh when the weather file has no usable rows.
var ErrNoWeatherData = errors.New("no weather data found")

// LoadError reports which source failed during a refresh.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// DashboardService loads the two CSV files, keeps the parsed rows for the
// current page view and derives the snapshot the dashboard renders.
type DashboardService struct {
	source      weathercsv.CSVSource
	weatherCSV  string
	analyzedCSV string
	clock       clockwork.Clock
	metrics     *observability.Metrics

	mu           sync.RWMutex
	weatherRows  []weather.WeatherObservation
	analyzedRows []weather.AnalyzedObservation
	loaded       bool
	profile      *crop.CropProfile
	snapshot     models.DashboardSnapshot
}

// NewDashboardService constructs a DashboardService reading from source.
func NewDashboardService(
	source weathercsv.CSVSource,
	weatherCSV, analyzedCSV string,
	clock clockwork.Clock,
	metrics *observability.Metrics,
) *DashboardService {
	return &DashboardService{
		source:      source,
		weatherCSV:  weatherCSV,
		analyzedCSV: analyzedCSV,
		clock:       clock,
		metrics:     metrics,
		snapshot: models.DashboardSnapshot{
			Advisory:  models.AdvisoryResult{Status: models.StatusUnknown, Reason: "No data"},
			Treatment: models.TreatmentNeutral,
			Crop:      BuildCropView(nil),
		},
	}
}

// Refresh loads weather then analyzed rows and rebuilds the snapshot.
// A load failure aborts the cycle and is surfaced once through the
// snapshot's data error; there is no retry.
func (s *DashboardService) Refresh(ctx context.Context) error {
	start := s.clock.Now()
	defer func() {
		s.metrics.RefreshDuration.Observe(s.clock.Since(start).Seconds())
	}()

	weatherRaw, err := s.source.Load(ctx, s.weatherCSV)
	if err != nil {
		return s.failLoad(&LoadError{Source: s.weatherCSV, Err: err})
	}
	analyzedRaw, err := s.source.Load(ctx, s.analyzedCSV)
	if err != nil {
		return s.failLoad(&LoadError{Source: s.analyzedCSV, Err: err})
	}

	observations := ToWeatherObservations(weatherRaw)
	analyzed := ToAnalyzedObservations(analyzedRaw)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.weatherRows = observations
	s.analyzedRows = analyzed

	if len(observations) == 0 {
		s.loaded = false
		s.snapshot.GeneratedAt = s.clock.Now()
		s.snapshot.DataError = NO_WEATHER_DATA_MESSAGE
		s.metrics.Refreshes.WithLabelValues(observability.OutcomeNoData).Inc()
		log.Printf("[DashboardService] %s", NO_WEATHER_DATA_MESSAGE)
		return ErrNoWeatherData
	}

	s.loaded = true
	s.rebuildSnapshotLocked()
	s.metrics.Refreshes.WithLabelValues(observability.OutcomeSuccess).Inc()
	s.metrics.WeatherRows.Set(float64(len(observations)))
	log.Printf("[DashboardService] Refreshed %d weather rows, %d analyzed rows; irrigation=%q (%s)",
		len(observations), len(analyzed), s.snapshot.Advisory.Status, s.snapshot.Advisory.Reason)
	return nil
}

func (s *DashboardService) failLoad(err *LoadError) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.GeneratedAt = s.clock.Now()
	s.snapshot.DataError = "Failed to load data files: " + err.Error()
	s.metrics.Refreshes.WithLabelValues(observability.OutcomeLoadError).Inc()
	log.Printf("[DashboardService] Dashboard refresh failed: %v", err)
	return err
}

// ApplyCropProfile switches the thresholds (nil means generic) and
// re-evaluates the advisory over the rows already loaded.
func (s *DashboardService) ApplyCropProfile(profile *crop.CropProfile) models.AdvisoryResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = profile
	s.snapshot.Crop = BuildCropView(profile)
	if s.loaded {
		s.evaluateLocked()
	}
	return s.snapshot.Advisory
}

// Snapshot returns the latest dashboard state.
func (s *DashboardService) Snapshot() models.DashboardSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// CurrentProfile returns the thresholds in effect.
func (s *DashboardService) CurrentProfile() crop.CropProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return GenericCropProfile()
	}
	return *s.profile
}

func (s *DashboardService) rebuildSnapshotLocked() {
	n := len(s.weatherRows)
	labels := make([]string, n)
	temps := make([]*float64, n)
	rain := make([]*float64, n)
	humidity := make([]*float64, n)
	rainSum := 0.0
	for i, o := range s.weatherRows {
		labels[i] = o.DateLabel()
		temps[i] = o.TemperatureC
		r := o.RainMm
		rain[i] = &r
		humidity[i] = o.HumidityPct
		rainSum += o.RainMm
	}

	snap := models.DashboardSnapshot{
		GeneratedAt: s.clock.Now(),
		Labels:      labels,
		Temperature: models.ChartSeries{Label: "Temperature (°C)", Values: temps, Color: "#ff6b6b"},
		Rain:        models.ChartSeries{Label: "Rain (mm)", Values: rain, Color: "#17cf17", BeginAtZero: true},
		Humidity:    models.ChartSeries{Label: "Humidity (%)", Values: humidity, Color: "#3b82f6", BeginAtZero: true},
		RainTotal:   formatNumber(roundHalfUp(rainSum*10)/10) + " mm",
		Crop:        BuildCropView(s.profile),
	}
	if last := temps[n-1]; last != nil {
		snap.CurrentTemp = formatNumber(roundHalfUp(*last)) + "°C"
	}
	s.snapshot = snap
	s.evaluateLocked()
}

func (s *DashboardService) evaluateLocked() {
	profile := GenericCropProfile()
	if s.profile != nil {
		profile = *s.profile
	}
	result := EvaluateIrrigation(s.analyzedRows, s.weatherRows, profile)
	s.snapshot.Advisory = result
	s.snapshot.Treatment = result.Status.Treatment()
	s.metrics.Advisories.WithLabelValues(string(result.Status)).Inc()
}

// roundHalfUp rounds .5 towards positive infinity, the way dashboards
// usually display readings.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
