package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// MockDashboardHandler answers every dashboard route with its own name.
type MockDashboardHandler struct{}

func (h *MockDashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("dashboard"))
}
func (h *MockDashboardHandler) GetIrrigation(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("irrigation"))
}
func (h *MockDashboardHandler) GetCharts(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("charts"))
}
func (h *MockDashboardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("refresh"))
}
func (h *MockDashboardHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}

// MockCropHandler answers every crop route with its own name.
type MockCropHandler struct{}

func (h *MockCropHandler) ListCrops(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("crops"))
}
func (h *MockCropHandler) GetSelectedCrop(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("selected"))
}
func (h *MockCropHandler) SelectCrop(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("select"))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	router := mux.NewRouter()
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("metrics"))
	})
	appRouter := NewRouter(&MockDashboardHandler{}, &MockCropHandler{}, metrics, router)
	appRouter.RegisterRoutes()

	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{"Dashboard", "GET", "/v1/dashboard", http.StatusOK, "dashboard"},
		{"Charts", "GET", "/v1/dashboard/charts", http.StatusOK, "charts"},
		{"Refresh", "POST", "/v1/dashboard/refresh", http.StatusOK, "refresh"},
		{"Irrigation", "GET", "/v1/irrigation", http.StatusOK, "irrigation"},
		{"List Crops", "GET", "/v1/crops", http.StatusOK, "crops"},
		{"Selected Crop", "GET", "/v1/crops/selected", http.StatusOK, "selected"},
		{"Select Crop", "PUT", "/v1/crops/selected", http.StatusOK, "select"},
		{"Ping Route", "GET", "/ping", http.StatusOK, "pong"},
		{"Metrics", "GET", "/metrics", http.StatusOK, "metrics"},
		{"Refresh With GET", "GET", "/v1/dashboard/refresh", http.StatusMethodNotAllowed, ""},
		{"Invalid Route", "GET", "/invalid", http.StatusNotFound, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, strings.NewReader(""))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, test.statusCode, rr.Code)
			if test.response != "" {
				assert.Equal(t, test.response, rr.Body.String())
			}
		})
	}
}

func TestRouter_WithoutMetricsHandler(t *testing.T) {
	router := mux.NewRouter()
	NewRouter(&MockDashboardHandler{}, &MockCropHandler{}, nil, router).RegisterRoutes()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
