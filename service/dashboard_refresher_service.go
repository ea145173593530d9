package services

import (
	"context"
	"log"
	"time"

	"github.com/jonboulle/clockwork"
)

// Refresher is anything that can reload the dashboard data.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// DashboardRefresherService periodically reloads the dashboard.
type DashboardRefresherService struct {
	refresher Refresher
	clock     clockwork.Clock
}

// NewDashboardRefresherService constructs a new refresher loop.
func NewDashboardRefresherService(refresher Refresher, clock clockwork.Clock) *DashboardRefresherService {
	return &DashboardRefresherService{
		refresher: refresher,
		clock:     clock,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (dr *DashboardRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go dr.startPeriodicJob(ctx, interval)
}

func (dr *DashboardRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := dr.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[DashboardRefresherService] Stopping periodic dashboard refresh.")
			return
		case <-ticker.Chan():
			log.Println("[DashboardRefresherService] Running periodic dashboard refresh.")
			if err := dr.refresher.Refresh(ctx); err != nil {
				log.Printf("[DashboardRefresherService] Refresh returned error: %v", err)
			} else {
				log.Println("[DashboardRefresherService] Refresh completed successfully.")
			}
		}
	}
}
