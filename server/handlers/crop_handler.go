package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"farm-dashboard/models/crop"
	services "farm-dashboard/service"
)

// CropSelector is the part of the crop selection service the handler needs.
type CropSelector interface {
	Apply(cropKey string) (crop.CropView, error)
	Selected() (string, crop.CropView)
}

// SelectCropRequest is the body of PUT /v1/crops/selected. An empty crop clears the selection.
type SelectCropRequest struct {
	Crop string `json:"crop"`
}

// SelectedCropResponse describes the current selection.
type SelectedCropResponse struct {
	Crop string        `json:"crop"`
	View crop.CropView `json:"view"`
}

type CropHandler struct {
	catalog  *services.CropCatalog
	selector CropSelector
}

func NewCropHandler(catalog *services.CropCatalog, selector CropSelector) *CropHandler {
	return &CropHandler{catalog: catalog, selector: selector}
}

// ListCrops handles GET /v1/crops
func (h *CropHandler) ListCrops(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.All())
}

// GetSelectedCrop handles GET /v1/crops/selected
func (h *CropHandler) GetSelectedCrop(w http.ResponseWriter, r *http.Request) {
	key, view := h.selector.Selected()
	writeJSON(w, http.StatusOK, SelectedCropResponse{Crop: key, View: view})
}

// SelectCrop handles PUT /v1/crops/selected
func (h *CropHandler) SelectCrop(w http.ResponseWriter, r *http.Request) {
	var req SelectCropRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.selector.Apply(req.Crop)
	if err != nil {
		if errors.Is(err, services.ErrUnknownCrop) {
			http.Error(w, "Unknown crop "+req.Crop, http.StatusNotFound)
			return
		}
		log.Println("Error applying crop selection:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, SelectedCropResponse{Crop: services.NormalizeCropKey(req.Crop), View: view})
}
