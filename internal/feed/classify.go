// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import "strings"

// categoryRules maps keywords to therapeutic-area labels. The rules are an
// ordered list evaluated top to bottom so the tie-break order is exact;
// the first keyword found as a case-insensitive substring of the item's
// title or description wins.
var categoryRules = []struct {
	keyword string
	label   string
}{
	{"oncolog", "Oncology"},
	{"cancer", "Oncology"},
	{"tumor", "Oncology"},
	{"carcinoma", "Oncology"},
	{"leukemia", "Oncology"},
	{"lymphoma", "Oncology"},
	{"cardio", "Cardiology"},
	{"heart", "Cardiology"},
	{"neurolog", "Neurology"},
	{"alzheimer", "Neurology"},
	{"parkinson", "Neurology"},
	{"immunolog", "Immunology"},
	{"autoimmune", "Immunology"},
	{"infectious", "Infectious Diseases"},
	{"infection", "Infectious Diseases"},
	{"vaccine", "Infectious Diseases"},
	{"rare disease", "Rare Diseases"},
	{"orphan", "Rare Diseases"},
	{"pediatric", "Pediatrics"},
	{"children", "Pediatrics"},
	{"metabolic", "Metabolic Disorders"},
	{"diabetes", "Metabolic Disorders"},
	{"obesity", "Metabolic Disorders"},
}

// CategoryOther is the fallback label for items matching no keyword.
const CategoryOther = "Others"

// statusPhrases is the ordered list of recruitment-status phrases searched
// for in the description. The longer phrases that contain "recruiting"
// come first so they win the substring tie-break.
var statusPhrases = []string{
	"Not yet recruiting",
	"Enrolling by invitation",
	"Active, not recruiting",
	"Recruiting",
	"Completed",
	"Suspended",
	"Terminated",
	"Withdrawn",
}

// StatusUnavailable is the fallback status for items matching no phrase.
const StatusUnavailable = "Not Available"

// Categorize returns the therapeutic-area label for an item. The match is
// a case-insensitive substring search over title and description; items
// matching no rule classify as Others.
func Categorize(title, description string) string {
	haystack := strings.ToLower(title + " " + description)
	for _, rule := range categoryRules {
		if strings.Contains(haystack, rule.keyword) {
			return rule.label
		}
	}
	return CategoryOther
}

// ExtractStatus returns the first status phrase found in the description,
// or Not Available. The search runs over the raw description text, markup
// and all; upstream phrasing that differs from the list falls through to
// the default.
func ExtractStatus(description string) string {
	lower := strings.ToLower(description)
	for _, phrase := range statusPhrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return phrase
		}
	}
	return StatusUnavailable
}

// Categories returns the distinct category labels in rule order, with the
// fallback label last. Useful for building filter choices.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, rule := range categoryRules {
		if !seen[rule.label] {
			seen[rule.label] = true
			out = append(out, rule.label)
		}
	}
	return append(out, CategoryOther)
}

// Statuses returns the status labels in match order, with the fallback
// label last.
func Statuses() []string {
	out := make([]string, len(statusPhrases), len(statusPhrases)+1)
	copy(out, statusPhrases)
	return append(out, StatusUnavailable)
}
