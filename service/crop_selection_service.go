package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	daoredis "farm-dashboard/dao/redis"
	"farm-dashboard/models/crop"
	"farm-dashboard/observability"
)

// ErrUnknownCrop is returned when a user selects a key the catalog lacks.
var ErrUnknownCrop = errors.New("unknown crop")

// CropSelectionStore persists the selected crop and fans out changes.
type CropSelectionStore interface {
	GetSelectedCrop() (string, error)
	SetSelectedCrop(cropKey string) error
	Subscribe(ctx context.Context, listener daoredis.SelectionListener) error
}

// CropSelectionService applies crop selections to the dashboard and keeps
// them in sync with other views through the store.
type CropSelectionService struct {
	catalog   *CropCatalog
	store     CropSelectionStore
	dashboard *DashboardService
	metrics   *observability.Metrics

	mu       sync.Mutex
	selected string
	watching bool
	// keys this service published whose echo has not come back yet
	pending map[string]int
}

// NewCropSelectionService constructs a CropSelectionService.
func NewCropSelectionService(
	catalog *CropCatalog,
	store CropSelectionStore,
	dashboard *DashboardService,
	metrics *observability.Metrics,
) *CropSelectionService {
	return &CropSelectionService{
		catalog:   catalog,
		store:     store,
		dashboard: dashboard,
		metrics:   metrics,
		pending:   make(map[string]int),
	}
}

// Apply selects cropKey ("" clears the selection), persists it and
// re-evaluates the advisory with the crop's thresholds.
func (s *CropSelectionService) Apply(cropKey string) (crop.CropView, error) {
	key := NormalizeCropKey(cropKey)
	if key != "" {
		if _, ok := s.catalog.Lookup(key); !ok {
			return crop.CropView{}, fmt.Errorf("%w: %q", ErrUnknownCrop, cropKey)
		}
	}

	// Local state first so our own change notification is recognised as a no-op.
	view := s.applyLocal(key, observability.SourceUser)
	s.expectEcho(key)
	if err := s.store.SetSelectedCrop(key); err != nil {
		s.ackEcho(key)
		return view, fmt.Errorf("persist crop selection: %w", err)
	}
	return view, nil
}

// Restore applies the stored selection, if any, without re-persisting it.
func (s *CropSelectionService) Restore() error {
	key, err := s.store.GetSelectedCrop()
	if err != nil {
		return fmt.Errorf("restore crop selection: %w", err)
	}
	if key == "" {
		log.Println("[CropSelectionService] No stored crop selection")
		return nil
	}
	s.applyLocal(NormalizeCropKey(key), observability.SourceRestore)
	return nil
}

// Watch follows selection changes made by other views until ctx is done.
// Echoes of this service's own publishes are skipped even when they arrive
// after a newer selection.
func (s *CropSelectionService) Watch(ctx context.Context) error {
	s.mu.Lock()
	s.watching = true
	s.mu.Unlock()

	err := s.store.Subscribe(ctx, func(cropKey string) {
		key := NormalizeCropKey(cropKey)
		if s.ackEcho(key) {
			return
		}
		s.mu.Lock()
		same := key == s.selected
		s.mu.Unlock()
		if same {
			return
		}
		log.Printf("[CropSelectionService] Selection changed elsewhere to %q", key)
		s.applyLocal(key, observability.SourceNotification)
	})
	if err != nil {
		s.stopWatching()
		return err
	}
	go func() {
		<-ctx.Done()
		s.stopWatching()
	}()
	return nil
}

func (s *CropSelectionService) stopWatching() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watching = false
	s.pending = make(map[string]int)
}

// expectEcho records a publish whose notification will come back to Watch.
func (s *CropSelectionService) expectEcho(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watching {
		s.pending[key]++
	}
}

// ackEcho consumes one expected echo of key and reports whether there was one.
func (s *CropSelectionService) ackEcho(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending[key] == 0 {
		return false
	}
	s.pending[key]--
	if s.pending[key] == 0 {
		delete(s.pending, key)
	}
	return true
}

// Selected returns the current key ("" when nothing is selected) and its view.
func (s *CropSelectionService) Selected() (string, crop.CropView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected, s.dashboard.Snapshot().Crop
}

func (s *CropSelectionService) applyLocal(key, source string) crop.CropView {
	s.mu.Lock()
	defer s.mu.Unlock()

	var profile *crop.CropProfile
	if p, ok := s.catalog.Lookup(key); ok {
		profile = &p
	} else if key != "" {
		log.Printf("[CropSelectionService] Crop %q is not in the catalog, using generic thresholds", key)
	}

	s.selected = key
	result := s.dashboard.ApplyCropProfile(profile)
	s.metrics.SelectionChanges.WithLabelValues(source).Inc()
	log.Printf("[CropSelectionService] Applied crop %q from %s; irrigation=%q (%s)", key, source, result.Status, result.Reason)
	return BuildCropView(profile)
}
