package util

import (
	"fmt"
	"io"

	"farm-dashboard/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// NewLineChart builds one line chart over labels. Nil values become gaps.
func NewLineChart(title string, labels []string, series ...models.ChartSeries) *charts.Line {
	line := charts.NewLine()

	yAxis := opts.YAxis{Type: "value"}
	for _, s := range series {
		if s.BeginAtZero {
			yAxis.Min = 0
		}
	}

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "900px",
			Height:    "360px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(yAxis),
	)

	line.SetXAxis(labels)
	for _, s := range series {
		line.AddSeries(s.Label, toLineData(s.Values),
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
		)
	}
	return line
}

// RenderDashboardCharts writes the temperature and rain charts as one HTML page.
func RenderDashboardCharts(w io.Writer, snapshot models.DashboardSnapshot) error {
	page := components.NewPage()
	page.PageTitle = "Farm Overview"
	page.AddCharts(
		NewLineChart("Temperature", snapshot.Labels, snapshot.Temperature),
		NewLineChart("Rain", snapshot.Labels, snapshot.Rain),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render dashboard charts: %w", err)
	}
	return nil
}

func toLineData(values []*float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		if v == nil {
			data[i] = opts.LineData{Value: "-"}
			continue
		}
		data[i] = opts.LineData{Value: *v}
	}
	return data
}
