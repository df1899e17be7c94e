// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// stripPolicy removes all markup from feed descriptions for terminal
// output. Classification always runs on the raw description, not this.
var stripPolicy = bluemonday.StrictPolicy()

// Plain returns the description as collapsed plain text: tags stripped,
// entities decoded, whitespace runs squeezed.
func Plain(description string) string {
	text := html.UnescapeString(stripPolicy.Sanitize(description))
	return strings.Join(strings.Fields(text), " ")
}

// FormatTable writes one page of items as a human-readable table to w.
func FormatTable(p *Pipeline, w io.Writer) {
	if msg := p.ErrMsg(); msg != "" {
		fmt.Fprintln(w, msg)
		return
	}

	page := p.Page()
	if len(page) == 0 {
		fmt.Fprintln(w, "No feed items found.")
		return
	}

	fmt.Fprintf(w, "%-44s  %-20s  %-24s  %s\n", "Title", "Category", "Status", "Published")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, item := range page {
		title := item.Title
		if len(title) > 44 {
			title = title[:41] + "..."
		}
		published := item.PubDate
		if !item.Published.IsZero() {
			published = item.Published.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%-44s  %-20s  %-24s  %s\n", title, item.Category, item.Status, published)
	}

	fmt.Fprintf(w, "\nPage %d of %d (%d items)\n", p.PageNumber(), p.PageCount(), len(p.Filtered()))
}

// FormatJSON writes the current page as indented JSON to w, with the
// descriptions reduced to plain text.
func FormatJSON(p *Pipeline, w io.Writer) error {
	page := p.Page()
	out := make([]Item, len(page))
	for i, item := range page {
		item.Description = Plain(item.Description)
		out[i] = item
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
