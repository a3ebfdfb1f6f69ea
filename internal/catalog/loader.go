package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var defaultDataset []byte

type datasetEntry struct {
	Symbol string     `yaml:"symbol"`
	Name   string     `yaml:"name"`
	Bars   []PriceBar `yaml:"bars"`
	News   []NewsItem `yaml:"news"`
}

type datasetFile struct {
	Stocks []datasetEntry `yaml:"stocks"`
}

// Load reads the catalog dataset from path, or the embedded sample dataset
// when path is empty. A malformed dataset is a hard error: the process must
// not start without reference data.
func Load(path string) (*Catalog, error) {
	raw := defaultDataset
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog dataset: %w", err)
		}
		raw = data
	}
	return Parse(raw)
}

// Parse decodes a YAML dataset into a Catalog.
func Parse(raw []byte) (*Catalog, error) {
	var file datasetFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog dataset: %w", err)
	}
	if len(file.Stocks) == 0 {
		return nil, fmt.Errorf("catalog dataset has no stocks")
	}
	entries := make([]Entry, 0, len(file.Stocks))
	for _, s := range file.Stocks {
		entries = append(entries, Entry{Symbol: s.Symbol, Name: s.Name, Bars: s.Bars, News: s.News})
	}
	return New(entries)
}
