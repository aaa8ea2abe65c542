// Package ingest turns on-disk files and request payloads into datasets.
package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/tabled/internal/dataset"
)

// Decoder turns raw file content into a Dataset.
type Decoder interface {
	CanDecode(filename string) bool
	Decode(name string, data []byte) (*dataset.Dataset, error)
}

var registry []Decoder

// Register adds a decoder implementation to the registry.
func Register(d Decoder) {
	registry = append(registry, d)
}

// ErrUnsupported indicates a file format no registered decoder handles.
var ErrUnsupported = errors.New("unsupported dataset format")

// DecodeFile selects a decoder by filename and returns the dataset. The
// dataset name is the base filename without its extension.
func DecodeFile(path string) (*dataset.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	for _, d := range registry {
		if d.CanDecode(path) {
			return d.Decode(name, data)
		}
	}
	return nil, fmt.Errorf("%s: %w", base, ErrUnsupported)
}

// Supported reports whether any registered decoder handles the filename.
func Supported(filename string) bool {
	for _, d := range registry {
		if d.CanDecode(filename) {
			return true
		}
	}
	return false
}

func init() {
	Register(csvDecoder{})
	Register(jsonDecoder{})
}
