package weathercsv

import (
	"context"
	"path/filepath"

	"farm-dashboard/util"
)

// WeatherCSVFileSource reads the CSV files from a local directory.
type WeatherCSVFileSource struct {
	dir string
}

// NewWeatherCSVFileSource creates a source rooted at dir.
func NewWeatherCSVFileSource(dir string) *WeatherCSVFileSource {
	return &WeatherCSVFileSource{dir: dir}
}

func (s *WeatherCSVFileSource) Load(ctx context.Context, name string) ([]map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return util.ReadCSVRowsFromFile(filepath.Join(s.dir, name))
}
