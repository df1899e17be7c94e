// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2026, 8, n, 0, 0, 0, 0, time.UTC)
}

func pipelineItems() []Item {
	return []Item{
		{Title: "Oncology A", Description: "Recruiting", Category: "Oncology", Status: "Recruiting", Published: day(1)},
		{Title: "Cardio B", Description: "Completed", Category: "Cardiology", Status: "Completed", Published: day(3)},
		{Title: "Oncology C", Description: "Completed", Category: "Oncology", Status: "Completed", Published: day(2)},
		{Title: "Misc D", Description: "General", Category: "Others", Status: "Not Available", Published: day(4)},
	}
}

func titles(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

func equalTitles(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDefaultSortIsDescending(t *testing.T) {
	p := NewPipeline(pipelineItems(), 10)
	got := titles(p.Filtered())
	want := []string{"Misc D", "Cardio B", "Oncology C", "Oncology A"}
	if !equalTitles(got, want) {
		t.Errorf("Filtered() = %v, want %v", got, want)
	}
}

func TestToggleSortFlipsOrder(t *testing.T) {
	p := NewPipeline(pipelineItems(), 10)
	p.ToggleSort()
	got := titles(p.Filtered())
	want := []string{"Oncology A", "Oncology C", "Cardio B", "Misc D"}
	if !equalTitles(got, want) {
		t.Errorf("after ToggleSort Filtered() = %v, want %v", got, want)
	}
}

func TestCategoryFilter(t *testing.T) {
	p := NewPipeline(pipelineItems(), 10)
	p.SetCategory("Oncology")
	got := titles(p.Filtered())
	if !equalTitles(got, []string{"Oncology C", "Oncology A"}) {
		t.Errorf("category filter = %v", got)
	}
}

func TestFiltersCombineIndependently(t *testing.T) {
	p := NewPipeline(pipelineItems(), 10)
	p.SetCategory("Oncology")
	p.SetStatus("Completed")
	if got := titles(p.Filtered()); !equalTitles(got, []string{"Oncology C"}) {
		t.Errorf("combined filters = %v", got)
	}

	// Relaxing the category must restore items the category filter hid;
	// the rebuild derives from the full list, not the narrowed one.
	p.SetCategory("")
	if got := titles(p.Filtered()); !equalTitles(got, []string{"Cardio B", "Oncology C"}) {
		t.Errorf("after relaxing category = %v", got)
	}
}

func TestSearchFilterMatchesTitleOrDescription(t *testing.T) {
	p := NewPipeline(pipelineItems(), 10)

	p.SetSearch("cardio")
	if got := titles(p.Filtered()); !equalTitles(got, []string{"Cardio B"}) {
		t.Errorf("title search = %v", got)
	}

	p.SetSearch("general")
	if got := titles(p.Filtered()); !equalTitles(got, []string{"Misc D"}) {
		t.Errorf("description search = %v", got)
	}
}

func TestPagination(t *testing.T) {
	p := NewPipeline(pipelineItems(), 3)

	if len(p.Page()) != 3 {
		t.Fatalf("page 1 len = %d, want 3", len(p.Page()))
	}
	if p.PageCount() != 2 {
		t.Errorf("PageCount() = %d, want 2", p.PageCount())
	}

	p.NextPage()
	if p.PageNumber() != 2 || len(p.Page()) != 1 {
		t.Errorf("page 2: number=%d len=%d", p.PageNumber(), len(p.Page()))
	}

	// Advancing past the last page clamps.
	p.NextPage()
	if p.PageNumber() != 2 {
		t.Errorf("page number after clamp = %d", p.PageNumber())
	}
}

func TestFilterChangeResetsToPageOne(t *testing.T) {
	p := NewPipeline(pipelineItems(), 2)
	p.NextPage()
	if p.PageNumber() != 2 {
		t.Fatalf("setup: page = %d", p.PageNumber())
	}

	p.SetStatus("Completed")
	if p.PageNumber() != 1 {
		t.Errorf("page after filter change = %d, want 1", p.PageNumber())
	}
}

func TestEmptyPipeline(t *testing.T) {
	p := NewPipeline(nil, 5)
	if len(p.Page()) != 0 {
		t.Errorf("empty pipeline page len = %d", len(p.Page()))
	}
	if p.PageCount() != 1 {
		t.Errorf("empty pipeline PageCount() = %d, want 1", p.PageCount())
	}
}

func TestFailedPipelineCarriesMessage(t *testing.T) {
	p := NewFailedPipeline("Failed to fetch RSS feed. Please try again later.")
	if p.ErrMsg() == "" {
		t.Error("ErrMsg() empty")
	}
	if len(p.Filtered()) != 0 {
		t.Errorf("failed pipeline should be empty, got %d items", len(p.Filtered()))
	}
}

func TestStableSortPreservesTieOrder(t *testing.T) {
	same := day(1)
	items := []Item{
		{Title: "First", Published: same},
		{Title: "Second", Published: same},
		{Title: "Third", Published: same},
	}
	p := NewPipeline(items, 10)
	if got := titles(p.Filtered()); !equalTitles(got, []string{"First", "Second", "Third"}) {
		t.Errorf("tie order = %v", got)
	}
	p.ToggleSort()
	if got := titles(p.Filtered()); !equalTitles(got, []string{"First", "Second", "Third"}) {
		t.Errorf("tie order after toggle = %v", got)
	}
}
