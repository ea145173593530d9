package crop

import (
	"fmt"
	"math"
)

// CropProfile tailors the irrigation thresholds and the crop panel to one crop.
type CropProfile struct {
	Key                  string  `json:"key"`
	Name                 string  `json:"name"`
	RainThresholdMm      float64 `json:"rain_threshold_mm"`
	HumidityThresholdPct float64 `json:"humidity_threshold_pct"`
	Description          string  `json:"description"`
	TipsText             string  `json:"tips"`
	DisplayImageRef      string  `json:"image,omitempty"`
	GrowthStageText      string  `json:"growth"`
	RecommendedWaterMm   float64 `json:"recommended_mm"`
	ProjectedYieldText   string  `json:"projected_yield"`
}

// Validate checks the threshold invariants.
func (p CropProfile) Validate() error {
	if math.IsNaN(p.RainThresholdMm) || p.RainThresholdMm <= 0 {
		return fmt.Errorf("crop %q: rain threshold must be > 0, got %v", p.Key, p.RainThresholdMm)
	}
	if math.IsNaN(p.HumidityThresholdPct) || p.HumidityThresholdPct < 0 || p.HumidityThresholdPct > 100 {
		return fmt.Errorf("crop %q: humidity threshold must be within [0,100], got %v", p.Key, p.HumidityThresholdPct)
	}
	return nil
}

// CropView is what the crop panel shows for the current selection.
type CropView struct {
	Selected        bool   `json:"selected"`
	Key             string `json:"key,omitempty"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Growth          string `json:"growth,omitempty"`
	SoilMoisture    string `json:"soil_moisture,omitempty"`
	NextIrrigation  string `json:"next_irrigation,omitempty"`
	RecommendedText string `json:"recommended_water,omitempty"`
	ProjectedYield  string `json:"projected_yield,omitempty"`
	HeroTitle       string `json:"hero_title,omitempty"`
	Image           string `json:"image,omitempty"`
	Tips            string `json:"tips,omitempty"`
}
