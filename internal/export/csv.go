// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the accumulated study list as a CSV file, limited
// to records verified within a trailing window.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pdiddy/trialscout/pkg/types"
)

// DefaultWindow is the trailing window applied when none is configured.
const DefaultWindow = 30 * 24 * time.Hour

// studyURLBase prefixes the constructed detail-page link.
const studyURLBase = "https://clinicaltrials.gov/study/"

// header is the fixed column set, in order. Do not reorder or extend.
var header = []string{
	"NCT ID",
	"Title",
	"Status",
	"Phase",
	"Enrollment",
	"Last Updated",
	"Sponsor",
	"Conditions",
	"URL",
}

// verifiedDateLayouts lists the statusVerifiedDate shapes the registry
// serves; most records carry the month-only form.
var verifiedDateLayouts = []string{"2006-01", "2006-01-02"}

// Write renders the CSV to w: the header row, then one row per study whose
// status-verified date falls within the trailing window ending at now.
// Records without a parseable verified date are excluded. Every data cell
// is quote-wrapped with embedded quotes doubled.
func Write(w io.Writer, studies []types.Study, now time.Time, window time.Duration) error {
	if window <= 0 {
		window = DefaultWindow
	}
	cutoff := now.Add(-window)

	if _, err := fmt.Fprintln(w, strings.Join(header, ",")); err != nil {
		return err
	}

	for _, study := range studies {
		ps := study.ProtocolSection
		verified, ok := parseVerifiedDate(ps.StatusModule.StatusVerifiedDate)
		if !ok || verified.Before(cutoff) {
			continue
		}
		if _, err := fmt.Fprintln(w, strings.Join(row(study), ",")); err != nil {
			return err
		}
	}
	return nil
}

// ToFile writes the export to <stem>.csv and returns the file name.
func ToFile(studies []types.Study, stem string, now time.Time, window time.Duration) (string, error) {
	name := stem + ".csv"
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	if err := Write(f, studies, now, window); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return name, nil
}

// row builds the fixed column values for one study.
func row(study types.Study) []string {
	ps := study.ProtocolSection
	ident := ps.IdentificationModule

	phases := "N/A"
	enrollment := 0
	if dm := ps.DesignModule; dm != nil {
		if len(dm.Phases) > 0 {
			phases = strings.Join(dm.Phases, ", ")
		}
		if dm.EnrollmentInfo != nil {
			enrollment = dm.EnrollmentInfo.Count.Int()
		}
	}

	sponsor := "Unknown"
	if ident.Organization != nil && ident.Organization.FullName != "" {
		sponsor = ident.Organization.FullName
	}

	conditions := "N/A"
	if cm := ps.ConditionsModule; cm != nil && len(cm.Conditions) > 0 {
		conditions = strings.Join(cm.Conditions, ", ")
	}

	cells := []string{
		ident.NCTID,
		ident.BriefTitle,
		ps.StatusModule.OverallStatus,
		phases,
		fmt.Sprintf("%d", enrollment),
		ps.StatusModule.StatusVerifiedDate,
		sponsor,
		conditions,
		studyURLBase + ident.NCTID,
	}
	for i, c := range cells {
		cells[i] = quote(c)
	}
	return cells
}

// quote wraps a cell in double quotes, doubling embedded quotes per
// RFC 4180.
func quote(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

func parseVerifiedDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range verifiedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
