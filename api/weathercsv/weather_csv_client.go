package weathercsv

import (
	"context"
	"fmt"

	"farm-dashboard/api"
	"farm-dashboard/util"
)

// WeatherCSVClient embeds the common HTTPClient and fetches CSV files
// published next to the dashboard.
type WeatherCSVClient struct {
	*api.HTTPClient
}

// NewWeatherCSVClient creates a new instance of WeatherCSVClient
func NewWeatherCSVClient(httpClient *api.HTTPClient) *WeatherCSVClient {
	return &WeatherCSVClient{
		HTTPClient: httpClient,
	}
}

// Load downloads name relative to the base URL and parses it.
func (c *WeatherCSVClient) Load(ctx context.Context, name string) ([]map[string]string, error) {
	body, err := c.Get(ctx, name, map[string]string{"Accept": "text/csv"})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	rows, err := util.ParseCSVBytes(body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return rows, nil
}
