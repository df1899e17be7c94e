// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/trialscout/pkg/types"
)

// SearchFile is the on-disk representation of a filter and the rows it
// produced. A saved listing can be reloaded later without re-querying the
// registry.
type SearchFile struct {
	Filter  FilterParams   `yaml:"filter"`
	Rows    []types.RfpRow `yaml:"rows"`
	Summary SearchSummary  `yaml:"summary"`
}

// FilterParams stores the filter selections in a serializable form.
type FilterParams struct {
	FreeText string   `yaml:"free_text,omitempty"`
	Area     string   `yaml:"area,omitempty"`
	Statuses []string `yaml:"statuses,omitempty"`
	Phases   []string `yaml:"phases,omitempty"`
	SortDesc bool     `yaml:"sort_desc"`
}

// SearchSummary stores result statistics and a timestamp.
type SearchSummary struct {
	Loaded     int       `yaml:"loaded"`
	TotalCount int       `yaml:"total_count"`
	Timestamp  time.Time `yaml:"timestamp"`
}

// WriteSearchFile saves the filter and accumulated rows to a YAML file.
func WriteSearchFile(path string, filter Filter, rows []types.RfpRow, totalCount int) error {
	sf := SearchFile{
		Filter: FilterParams{
			FreeText: filter.FreeText,
			Area:     filter.Area,
			Statuses: filter.Statuses,
			Phases:   filter.Phases,
			SortDesc: filter.SortDesc,
		},
		Rows: rows,
		Summary: SearchSummary{
			Loaded:     len(rows),
			TotalCount: totalCount,
			Timestamp:  time.Now(),
		},
	}

	data, err := yaml.Marshal(&sf)
	if err != nil {
		return fmt.Errorf("marshaling search file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSearchFile loads a previously saved search file from disk.
func ReadSearchFile(path string) (*SearchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading search file: %w", err)
	}
	var sf SearchFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing search file: %w", err)
	}
	return &sf, nil
}

// ToFilter converts stored FilterParams back into a Filter.
func (p FilterParams) ToFilter() Filter {
	return Filter{
		FreeText: p.FreeText,
		Area:     p.Area,
		Statuses: p.Statuses,
		Phases:   p.Phases,
		SortDesc: p.SortDesc,
	}
}
