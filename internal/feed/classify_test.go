// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        string
	}{
		{"oncology in title", "Oncology Trial of Drug X", "", "Oncology"},
		{"cancer in description", "New Study", "A study of lung cancer patients", "Oncology"},
		{"case-insensitive", "CARDIOLOGY update", "", "Cardiology"},
		{"heart keyword", "Trial", "patients with heart failure", "Cardiology"},
		{"neurology", "Neurological Outcomes", "", "Neurology"},
		{"vaccine maps to infectious", "Trial", "mRNA vaccine candidate", "Infectious Diseases"},
		{"pediatric", "Pediatric asthma study", "", "Pediatrics"},
		{"diabetes maps to metabolic", "Trial", "type 2 diabetes management", "Metabolic Disorders"},
		{"no match falls through", "Widget Study", "nothing medical here", "Others"},
		{"empty item", "", "", "Others"},
		{"first rule wins over later", "Cancer vaccine trial", "", "Oncology"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.title, tt.description); got != tt.want {
				t.Errorf("Categorize(%q, %q) = %q, want %q", tt.title, tt.description, got, tt.want)
			}
		})
	}
}

func TestExtractStatus(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"recruiting", "<p>Status: Recruiting</p>", "Recruiting"},
		{"not yet recruiting wins over recruiting", "Currently not yet recruiting participants", "Not yet recruiting"},
		{"active not recruiting wins over recruiting", "Active, not recruiting as of June", "Active, not recruiting"},
		{"completed", "This study is Completed.", "Completed"},
		{"case-insensitive", "STATUS: TERMINATED", "Terminated"},
		{"no phrase", "General announcement text", "Not Available"},
		{"empty", "", "Not Available"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractStatus(tt.description); got != tt.want {
				t.Errorf("ExtractStatus(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}

func TestStatusIgnoresTitle(t *testing.T) {
	// Status extraction searches the description only.
	if got := ExtractStatus(""); got != "Not Available" {
		t.Errorf("ExtractStatus on empty description = %q", got)
	}
}

func TestCategorizeDeterministic(t *testing.T) {
	title, desc := "Oncology trial", "Recruiting patients with heart failure"
	first := Categorize(title, desc)
	for i := 0; i < 5; i++ {
		if got := Categorize(title, desc); got != first {
			t.Fatalf("classification not deterministic: %q vs %q", got, first)
		}
	}
}

func TestCategoriesIncludesFallbackLast(t *testing.T) {
	cats := Categories()
	if len(cats) == 0 || cats[len(cats)-1] != CategoryOther {
		t.Errorf("Categories() = %v, want %q last", cats, CategoryOther)
	}
	statuses := Statuses()
	if len(statuses) == 0 || statuses[len(statuses)-1] != StatusUnavailable {
		t.Errorf("Statuses() = %v, want %q last", statuses, StatusUnavailable)
	}
}
