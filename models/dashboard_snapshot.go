package models

import (
	"time"

	"farm-dashboard/models/crop"
)

// ChartSeries is one line of a chart. Nil values are drawn as gaps.
type ChartSeries struct {
	Label       string     `json:"label"`
	Values      []*float64 `json:"values"`
	Color       string     `json:"color"`
	BeginAtZero bool       `json:"begin_at_zero"`
}

// DashboardSnapshot is the state of the dashboard after the latest refresh.
type DashboardSnapshot struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Labels      []string       `json:"labels"`
	Temperature ChartSeries    `json:"temperature"`
	Rain        ChartSeries    `json:"rain"`
	Humidity    ChartSeries    `json:"humidity"`
	CurrentTemp string         `json:"current_temp,omitempty"`
	RainTotal   string         `json:"rain_total,omitempty"`
	Advisory    AdvisoryResult `json:"irrigation"`
	Treatment   string         `json:"treatment"`
	Crop        crop.CropView  `json:"crop"`
	DataError   string         `json:"data_error,omitempty"`
}
