// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RfpRow is the flat, fully-defaulted view of one study, shaped for the
// listing card and the table/JSON renderers. Rows are built fresh from a
// Study on every transform and never mutated afterward; the bookmark flag
// is looked up from the store at render time, not stored here.
type RfpRow struct {
	Area    string `json:"area" yaml:"area"`
	Disease string `json:"disease" yaml:"disease"`
	Country string `json:"country" yaml:"country"`
	Sponsor string `json:"sponsor" yaml:"sponsor"`
	Type    string `json:"type" yaml:"type"`
	Status  string `json:"status" yaml:"status"`
	Phase   string `json:"phase" yaml:"phase"`
	Size    int    `json:"size" yaml:"size"`
	Sites   int    `json:"sites" yaml:"sites"`
	MinAge  string `json:"minAge" yaml:"min_age"`
	MaxAge  string `json:"maxAge" yaml:"max_age"`
	NCTID   string `json:"idctgov" yaml:"nct_id"`

	// LastUpdateDate is empty when the record carries no status-verified
	// date. Renderers omit the "Updated" label in that case instead of
	// printing a placeholder.
	LastUpdateDate string `json:"lastUpdateDate,omitempty" yaml:"last_update_date,omitempty"`
}
