package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"farm-dashboard/models"
	services "farm-dashboard/service"
	"farm-dashboard/util"
)

// DashboardReader is the part of the dashboard service the handler needs.
type DashboardReader interface {
	Snapshot() models.DashboardSnapshot
	Refresh(ctx context.Context) error
}

// IrrigationResponse is the advisory plus the visual treatment to show it with.
type IrrigationResponse struct {
	Status    models.AdvisoryStatus `json:"status"`
	Reason    string                `json:"reason"`
	Treatment string                `json:"treatment"`
}

type DashboardHandler struct {
	dashboard DashboardReader
}

func NewDashboardHandler(dashboard DashboardReader) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetDashboard handles GET /v1/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.dashboard.Snapshot())
}

// GetIrrigation handles GET /v1/irrigation
func (h *DashboardHandler) GetIrrigation(w http.ResponseWriter, r *http.Request) {
	snap := h.dashboard.Snapshot()
	writeJSON(w, http.StatusOK, IrrigationResponse{
		Status:    snap.Advisory.Status,
		Reason:    snap.Advisory.Reason,
		Treatment: snap.Treatment,
	})
}

// GetCharts handles GET /v1/dashboard/charts
func (h *DashboardHandler) GetCharts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderDashboardCharts(w, h.dashboard.Snapshot()); err != nil {
		log.Println("Error rendering charts:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Refresh handles POST /v1/dashboard/refresh. A failed load still answers
// with the snapshot so the caller can show its data error.
func (h *DashboardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	// The refresh is shared by every view, so a client hanging up must not cancel it.
	err := h.dashboard.Refresh(context.WithoutCancel(r.Context()))
	status := http.StatusOK
	var loadErr *services.LoadError
	switch {
	case errors.As(err, &loadErr):
		status = http.StatusBadGateway
	case errors.Is(err, services.ErrNoWeatherData):
		status = http.StatusOK
	case err != nil:
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, h.dashboard.Snapshot())
}

// Ping handles GET /ping
func (h *DashboardHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}
