package weathercsv

import "context"

// CSVSource loads a named CSV file as row-mappings keyed by header.
type CSVSource interface {
	Load(ctx context.Context, name string) ([]map[string]string, error)
}
