// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"strings"
	"testing"
)

func TestBuildQueryAlwaysStartsWithJurisdiction(t *testing.T) {
	got := Filter{}.BuildQuery()
	if got != "AREA[LocationCountry]United States" {
		t.Errorf("BuildQuery() = %q, want bare jurisdiction clause", got)
	}
}

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   string
	}{
		{
			name:   "area with multiple statuses",
			filter: Filter{Area: "ONCOLOGY", Statuses: []string{"RECRUITING", "COMPLETED"}},
			want:   "AREA[LocationCountry]United States AND AREA[Condition]ONCOLOGY AND AREA[OverallStatus](RECRUITING OR COMPLETED)",
		},
		{
			name:   "single status emitted bare",
			filter: Filter{Statuses: []string{"RECRUITING"}},
			want:   "AREA[LocationCountry]United States AND AREA[OverallStatus]RECRUITING",
		},
		{
			name:   "single phase with constant-table prefix",
			filter: Filter{Phases: []string{"PHASE_PHASE2"}},
			want:   "AREA[LocationCountry]United States AND AREA[Phase]PHASE2",
		},
		{
			name:   "multiple phases grouped with NA rewrite",
			filter: Filter{Phases: []string{"PHASE_PHASE1", "PHASE_NOT_APPLICABLE"}},
			want:   "AREA[LocationCountry]United States AND AREA[Phase](PHASE1 OR NA)",
		},
		{
			name:   "unprefixed phase passes through",
			filter: Filter{Phases: []string{"PHASE2"}},
			want:   "AREA[LocationCountry]United States AND AREA[Phase]PHASE2",
		},
		{
			name:   "free text appended bare",
			filter: Filter{FreeText: "glioblastoma"},
			want:   "AREA[LocationCountry]United States AND glioblastoma",
		},
		{
			name: "all clauses present",
			filter: Filter{
				FreeText: "pediatric",
				Area:     "NEUROLOGY",
				Statuses: []string{"RECRUITING"},
				Phases:   []string{"PHASE_PHASE3"},
			},
			want: "AREA[LocationCountry]United States AND AREA[Condition]NEUROLOGY AND AREA[OverallStatus]RECRUITING AND AREA[Phase]PHASE3 AND pediatric",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.BuildQuery(); got != tt.want {
				t.Errorf("BuildQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildQueryNoDanglingOperators(t *testing.T) {
	filters := []Filter{
		{},
		{Statuses: []string{}},
		{Phases: []string{}},
		{Area: "", FreeText: ""},
		{Statuses: []string{"RECRUITING"}, Phases: []string{"PHASE_PHASE1", "PHASE_PHASE2", "PHASE_PHASE3"}},
		{Area: "IMMUNOLOGY", Statuses: []string{"COMPLETED", "TERMINATED"}, FreeText: "vaccine"},
	}
	for _, f := range filters {
		q := f.BuildQuery()
		if strings.HasPrefix(q, "AND") || strings.HasSuffix(q, "AND") ||
			strings.HasPrefix(q, "OR") || strings.HasSuffix(q, "OR") {
			t.Errorf("dangling operator in %q", q)
		}
		if strings.Contains(q, "AND AND") || strings.Contains(q, "OR OR") ||
			strings.Contains(q, "()") || strings.Contains(q, "  ") {
			t.Errorf("empty clause in %q", q)
		}
	}
}

func TestBuildQueryAreaTermCount(t *testing.T) {
	withArea := Filter{Area: "ONCOLOGY"}.BuildQuery()
	if strings.Count(withArea, "AREA[Condition]") != 1 {
		t.Errorf("want exactly one AREA[Condition] term, got %q", withArea)
	}
	withoutArea := Filter{Statuses: []string{"RECRUITING"}}.BuildQuery()
	if strings.Contains(withoutArea, "AREA[Condition]") {
		t.Errorf("unexpected AREA[Condition] term in %q", withoutArea)
	}
}

func TestFilterSort(t *testing.T) {
	if got := (Filter{SortDesc: true}).Sort(); got != "LastUpdatePostDate:desc" {
		t.Errorf("Sort() = %q", got)
	}
	if got := (Filter{}).Sort(); got != "LastUpdatePostDate:asc" {
		t.Errorf("Sort() = %q", got)
	}
}
