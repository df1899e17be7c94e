// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rfp

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/trialscout/pkg/types"
)

// FormatTable writes rows as a human-readable table to w.
func FormatTable(rows []types.RfpRow, totalCount int, w io.Writer) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No studies found.")
		return
	}

	fmt.Fprintf(w, "%-12s  %-40s  %-24s  %-6s  %-8s  %-6s  %s\n",
		"NCT ID", "Title", "Status", "Phase", "Size", "Sites", "Sponsor")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for _, r := range rows {
		fmt.Fprintf(w, "%-12s  %-40s  %-24s  %-6s  %-8d  %-6d  %s\n",
			r.NCTID,
			truncate(r.Disease, 40),
			truncate(r.Status, 24),
			truncate(r.Phase, 6),
			r.Size,
			r.Sites,
			truncate(r.Sponsor, 30))
	}

	fmt.Fprintf(w, "\nShowing %d", len(rows))
	if totalCount > 0 {
		fmt.Fprintf(w, " of %d results", totalCount)
	} else {
		fmt.Fprint(w, " results")
	}
	fmt.Fprintln(w)
}

// FormatJSON writes rows as indented JSON to w.
func FormatJSON(rows []types.RfpRow, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// FormatDetail writes one row as a labeled block to w.
func FormatDetail(row types.RfpRow, w io.Writer) {
	fmt.Fprintf(w, "%s\n%s\n", row.Disease, strings.Repeat("-", len(row.Disease)))
	fmt.Fprintf(w, "NCT ID:    %s\n", row.NCTID)
	fmt.Fprintf(w, "Area:      %s\n", row.Area)
	fmt.Fprintf(w, "Country:   %s\n", row.Country)
	fmt.Fprintf(w, "Sponsor:   %s\n", row.Sponsor)
	fmt.Fprintf(w, "Type:      %s\n", row.Type)
	fmt.Fprintf(w, "Status:    %s\n", row.Status)
	fmt.Fprintf(w, "Phase:     %s\n", row.Phase)
	fmt.Fprintf(w, "Size:      %d participants\n", row.Size)
	fmt.Fprintf(w, "Sites:     %d\n", row.Sites)
	fmt.Fprintf(w, "Ages:      %s to %s\n", row.MinAge, row.MaxAge)
	if row.LastUpdateDate != "" {
		fmt.Fprintf(w, "Updated:   %s\n", row.LastUpdateDate)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
