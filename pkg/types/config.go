// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "trialscout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// RegistryConfig holds settings for the studies endpoint client.
type RegistryConfig struct {
	HTTPConfig `yaml:",inline"`

	// PageSize is the number of studies requested per page (default 20).
	PageSize int `json:"page_size" yaml:"page_size"`

	// RequestsPerSecond paces outbound calls to the registry. Zero
	// disables pacing.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// MaxRetries bounds retry attempts on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// FeedConfig holds settings for the RSS feed pipeline.
type FeedConfig struct {
	HTTPConfig `yaml:",inline"`

	// Location and Country select the feed region (locStr / country
	// query parameters).
	Location string `json:"location" yaml:"location"`
	Country  string `json:"country" yaml:"country"`

	// DateField selects which study date drives feed ordering upstream
	// (e.g. "StudyFirstPostDate").
	DateField string `json:"date_field" yaml:"date_field"`

	// PageSize is the fixed client-side page size (default 10).
	PageSize int `json:"page_size" yaml:"page_size"`
}

// BookmarkConfig holds settings for the bookmark store.
type BookmarkConfig struct {
	// Path is the SQLite database file holding the bookmark set
	// (default "trialscout.db").
	Path string `json:"path" yaml:"path"`
}

// ExportConfig holds settings for the CSV exporter.
type ExportConfig struct {
	// Window is the trailing window a record's status-verified date must
	// fall inside to be exported (default 30 days).
	Window time.Duration `json:"window" yaml:"window"`
}
