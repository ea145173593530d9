package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// DashboardRoutes are the handlers behind the dashboard endpoints.
type DashboardRoutes interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetIrrigation(w http.ResponseWriter, r *http.Request)
	GetCharts(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// CropRoutes are the handlers behind the crop endpoints.
type CropRoutes interface {
	ListCrops(w http.ResponseWriter, r *http.Request)
	GetSelectedCrop(w http.ResponseWriter, r *http.Request)
	SelectCrop(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	dashboardHandler DashboardRoutes
	cropHandler      CropRoutes
	metricsHandler   http.Handler
	router           *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	dashboardHandler DashboardRoutes,
	cropHandler CropRoutes,
	metricsHandler http.Handler,
	router *mux.Router) *Router {
	return &Router{
		dashboardHandler: dashboardHandler,
		cropHandler:      cropHandler,
		metricsHandler:   metricsHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/dashboard", r.dashboardHandler.GetDashboard).Methods("GET")
	r.router.HandleFunc("/v1/dashboard/charts", r.dashboardHandler.GetCharts).Methods("GET")
	r.router.HandleFunc("/v1/dashboard/refresh", r.dashboardHandler.Refresh).Methods("POST")
	r.router.HandleFunc("/v1/irrigation", r.dashboardHandler.GetIrrigation).Methods("GET")

	r.router.HandleFunc("/v1/crops", r.cropHandler.ListCrops).Methods("GET")
	r.router.HandleFunc("/v1/crops/selected", r.cropHandler.GetSelectedCrop).Methods("GET")
	// expects {"crop": "<key>"}; an empty key clears the selection
	r.router.HandleFunc("/v1/crops/selected", r.cropHandler.SelectCrop).Methods("PUT")

	r.router.HandleFunc("/ping", r.dashboardHandler.Ping).Methods("GET")
	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods("GET")
	}
}
