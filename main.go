package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"farm-dashboard/config"
	"farm-dashboard/di"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[MAIN] Failed to load config: %v", err)
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatalf("[MAIN] Failed to initialize container: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := container.CropSelectionService.Restore(); err != nil {
		log.Printf("[MAIN] Could not restore selected crop: %v", err)
	}

	log.Println("[MAIN] Loading dashboard data")
	if err := container.DashboardService.Refresh(ctx); err != nil {
		log.Printf("[MAIN] Initial refresh failed: %v", err)
	}

	if err := container.CropSelectionService.Watch(ctx); err != nil {
		log.Printf("[MAIN] Could not watch crop selection changes: %v", err)
	}

	log.Printf("[MAIN] Starting periodic refresh every %s", cfg.RefreshInterval)
	container.DashboardRefresherService.StartPeriodicJob(ctx, cfg.RefreshInterval)

	if err := container.DashboardHttpServer.Start(ctx); err != nil {
		log.Fatalf("[MAIN] Server error: %v", err)
	}
}
