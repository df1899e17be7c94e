// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry builds queries for and fetches pages from the
// ClinicalTrials.gov v2 studies endpoint.
package registry

import (
	"fmt"
	"strings"
)

// baseCondition restricts every query to the one jurisdiction the listing
// serves.
const baseCondition = "AREA[LocationCountry]United States"

// SortField is the study date field the listing sorts by.
const SortField = "LastUpdatePostDate"

// Filter holds the UI filter selections that drive one query.
type Filter struct {
	// FreeText is an optional bare query fragment.
	FreeText string

	// Area is an optional single therapeutic-area code.
	Area string

	// Statuses are the selected overall-status codes; empty omits the
	// status clause.
	Statuses []string

	// Phases are the selected phase codes. Values may carry a PHASE_
	// prefix from the phase constant table.
	Phases []string

	// SortDesc selects descending date order when true.
	SortDesc bool
}

// Sort returns the sort parameter for the studies endpoint
// (e.g. "LastUpdatePostDate:desc").
func (f Filter) Sort() string {
	dir := "asc"
	if f.SortDesc {
		dir = "desc"
	}
	return SortField + ":" + dir
}

// BuildQuery turns the filter into the upstream query.term grammar. The
// output always starts with the fixed jurisdiction clause; present clauses
// are joined with AND, multi-value selections are OR-grouped in
// parentheses, and empty selections are omitted, so no input combination
// produces dangling operators.
func (f Filter) BuildQuery() string {
	conditions := []string{baseCondition}

	if f.Area != "" {
		conditions = append(conditions, "AREA[Condition]"+f.Area)
	}

	if clause := orGroup(f.Statuses); clause != "" {
		conditions = append(conditions, "AREA[OverallStatus]"+clause)
	}

	if clause := orGroup(normalizePhases(f.Phases)); clause != "" {
		conditions = append(conditions, "AREA[Phase]"+clause)
	}

	if f.FreeText != "" {
		conditions = append(conditions, f.FreeText)
	}

	return strings.Join(conditions, " AND ")
}

// orGroup renders a value set as the grammar expects: empty set omitted,
// single value bare, multiple values OR-joined and parenthesized.
func orGroup(values []string) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return fmt.Sprintf("(%s)", strings.Join(values, " OR "))
	}
}

// normalizePhases strips the PHASE_ constant-table prefix and rewrites
// NOT_APPLICABLE to NA, the grammar's token for "not applicable".
func normalizePhases(phases []string) []string {
	if len(phases) == 0 {
		return nil
	}
	out := make([]string, 0, len(phases))
	for _, p := range phases {
		p = strings.TrimPrefix(p, "PHASE_")
		if p == "NOT_APPLICABLE" {
			p = "NA"
		}
		out = append(out, p)
	}
	return out
}
