// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FilterOption is one entry of a closed filter enumeration: the upstream
// code and the label shown to the user.
type FilterOption struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// TherapeuticAreas is the closed set of area filter codes.
var TherapeuticAreas = []FilterOption{
	{Value: "ONCOLOGY", Label: "Oncology"},
	{Value: "CARDIOLOGY", Label: "Cardiology"},
	{Value: "NEUROLOGY", Label: "Neurology"},
	{Value: "IMMUNOLOGY", Label: "Immunology"},
	{Value: "INFECTIOUS_DISEASES", Label: "Infectious Diseases"},
	{Value: "RARE_DISEASES", Label: "Rare Diseases"},
	{Value: "PEDIATRICS", Label: "Pediatrics"},
	{Value: "METABOLIC", Label: "Metabolic Disorders"},
}

// StudyStatuses is the closed set of recruitment status filter codes.
var StudyStatuses = []FilterOption{
	{Value: "NOT_YET_RECRUITING", Label: "Not Yet Recruiting"},
	{Value: "RECRUITING", Label: "Recruiting"},
	{Value: "ENROLLING_BY_INVITATION", Label: "Enrolling by Invitation"},
	{Value: "ACTIVE_NOT_RECRUITING", Label: "Active, not recruiting"},
	{Value: "COMPLETED", Label: "Completed"},
	{Value: "SUSPENDED", Label: "Suspended"},
	{Value: "TERMINATED", Label: "Terminated"},
	{Value: "WITHDRAWN", Label: "Withdrawn"},
}

// StudyPhases is the closed set of phase filter codes.
var StudyPhases = []FilterOption{
	{Value: "PHASE1", Label: "Phase 1"},
	{Value: "PHASE2", Label: "Phase 2"},
	{Value: "PHASE3", Label: "Phase 3"},
	{Value: "PHASE4", Label: "Phase 4"},
	{Value: "NOT_APPLICABLE", Label: "N/A"},
}

// Label returns the display label for a code within a filter option set,
// or the code itself when it is not part of the set.
func Label(options []FilterOption, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// ValidValue reports whether value belongs to the option set.
func ValidValue(options []FilterOption, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}
