// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Pipeline holds the full classified item list and derives a filtered view
// from the currently selected category, status, and free-text filters. The
// filters are independent: every change rebuilds the filtered list from
// the full list, so relaxing one filter restores previously hidden items.
type Pipeline struct {
	items    []Item
	filtered []Item

	category string
	status   string
	search   string
	sortAsc  bool
	page     int
	pageSize int

	errMsg string
}

// NewPipeline builds a pipeline over the classified items. pageSize falls
// back to 10.
func NewPipeline(items []Item, pageSize int) *Pipeline {
	if pageSize <= 0 {
		pageSize = 10
	}
	p := &Pipeline{items: items, pageSize: pageSize, page: 1}
	p.rebuild()
	return p
}

// NewFailedPipeline builds an empty pipeline carrying the single error
// message shown for a failed fetch or parse.
func NewFailedPipeline(msg string) *Pipeline {
	p := NewPipeline(nil, 0)
	p.errMsg = msg
	return p
}

// ErrMsg returns the fetch/parse error message, or empty.
func (p *Pipeline) ErrMsg() string { return p.errMsg }

// SetCategory selects a category filter; empty clears it. Resets to page 1.
func (p *Pipeline) SetCategory(category string) {
	p.category = category
	p.rebuild()
}

// SetStatus selects a status filter; empty clears it. Resets to page 1.
func (p *Pipeline) SetStatus(status string) {
	p.status = status
	p.rebuild()
}

// SetSearch selects a free-text filter matched as a case-insensitive
// substring of title or description; empty clears it. Resets to page 1.
func (p *Pipeline) SetSearch(search string) {
	p.search = search
	p.rebuild()
}

// ToggleSort flips between descending and ascending publish-date order.
// Items without a parsed date keep their relative position (stable sort).
func (p *Pipeline) ToggleSort() {
	p.sortAsc = !p.sortAsc
	p.sortFiltered()
}

// rebuild re-derives the filtered list from the full classified list and
// resets pagination.
func (p *Pipeline) rebuild() {
	search := strings.ToLower(p.search)

	p.filtered = lo.Filter(p.items, func(item Item, _ int) bool {
		if p.category != "" && item.Category != p.category {
			return false
		}
		if p.status != "" && item.Status != p.status {
			return false
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Title), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			return false
		}
		return true
	})

	p.sortFiltered()
	p.page = 1
}

func (p *Pipeline) sortFiltered() {
	sort.SliceStable(p.filtered, func(i, j int) bool {
		if p.sortAsc {
			return p.filtered[i].Published.Before(p.filtered[j].Published)
		}
		return p.filtered[j].Published.Before(p.filtered[i].Published)
	})
}

// Filtered returns the full filtered list in current sort order.
func (p *Pipeline) Filtered() []Item {
	out := make([]Item, len(p.filtered))
	copy(out, p.filtered)
	return out
}

// Page returns the current fixed-size page of the filtered list.
func (p *Pipeline) Page() []Item {
	start := (p.page - 1) * p.pageSize
	if start >= len(p.filtered) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.filtered) {
		end = len(p.filtered)
	}
	return p.Filtered()[start:end]
}

// PageNumber returns the current page, 1-based.
func (p *Pipeline) PageNumber() int { return p.page }

// PageCount returns the number of pages the filtered list spans; an empty
// list has one (empty) page.
func (p *Pipeline) PageCount() int {
	if len(p.filtered) == 0 {
		return 1
	}
	return (len(p.filtered) + p.pageSize - 1) / p.pageSize
}

// SetPage clamps n into [1, PageCount] and moves to it.
func (p *Pipeline) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	if max := p.PageCount(); n > max {
		n = max
	}
	p.page = n
}

// NextPage advances one page when one remains.
func (p *Pipeline) NextPage() { p.SetPage(p.page + 1) }

// PrevPage moves back one page.
func (p *Pipeline) PrevPage() { p.SetPage(p.page - 1) }
