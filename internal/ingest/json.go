package ingest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KaramelBytes/tabled/internal/dataset"
)

type jsonDecoder struct{}

func (jsonDecoder) CanDecode(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".json")
}

// Decode expects an array of flat objects, the same record shape the
// create-dataset endpoint accepts.
func (jsonDecoder) Decode(name string, data []byte) (*dataset.Dataset, error) {
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse json records: %w", err)
	}
	return dataset.FromMaps(name, records)
}
