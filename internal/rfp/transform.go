// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rfp turns raw study records into the flat, fully-defaulted rows
// the listing renders, and formats rows for terminal output.
package rfp

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/pdiddy/trialscout/pkg/types"
)

// ErrInvalidRecord marks a study missing one of its two load-bearing
// fields (NCT ID, overall status). Callers drop or report such records
// instead of rendering them.
var ErrInvalidRecord = errors.New("invalid study record")

// listingCountry is the jurisdiction the listing serves; every query is
// already restricted to it.
const listingCountry = "United States"

var phasePrefix = regexp.MustCompile(`(?i)^PHASE_?`)

// Transform normalizes one study into an RfpRow. Every optional field gets
// its own default, so no field in the result is ever empty by accident;
// only LastUpdateDate may legitimately be absent. Transform is pure:
// transforming the same study twice yields value-equal rows.
func Transform(study types.Study) (types.RfpRow, error) {
	ps := study.ProtocolSection
	ident := ps.IdentificationModule
	status := ps.StatusModule

	if ident.NCTID == "" {
		return types.RfpRow{}, fmt.Errorf("%w: missing nctId", ErrInvalidRecord)
	}
	if status.OverallStatus == "" {
		return types.RfpRow{}, fmt.Errorf("%w: %s missing overallStatus", ErrInvalidRecord, ident.NCTID)
	}

	row := types.RfpRow{
		Area:           "Unknown",
		Disease:        ident.BriefTitle,
		Country:        listingCountry,
		Sponsor:        "Unknown Sponsor",
		Type:           "Unknown",
		Status:         status.OverallStatus,
		Phase:          "N/A",
		MinAge:         "18 Years",
		MaxAge:         "N/A",
		NCTID:          ident.NCTID,
		LastUpdateDate: status.StatusVerifiedDate,
	}

	if cm := ps.ConditionsModule; cm != nil && len(cm.Conditions) > 0 {
		row.Area = cm.Conditions[0]
	}

	if org := ident.Organization; org != nil {
		switch {
		case org.FullName != "":
			row.Sponsor = org.FullName
		case org.Class != "":
			row.Sponsor = org.Class
		}
	}

	if am := ps.ArmsInterventionsModule; am != nil && len(am.InterventionTypes) > 0 {
		row.Type = am.InterventionTypes[0]
	} else if dm := ps.DesignModule; dm != nil && dm.StudyType != "" {
		row.Type = dm.StudyType
	}

	if dm := ps.DesignModule; dm != nil {
		if len(dm.Phases) > 0 {
			row.Phase = phasePrefix.ReplaceAllString(dm.Phases[0], "")
		}
		if dm.EnrollmentInfo != nil {
			row.Size = dm.EnrollmentInfo.Count.Int()
		}
	}
	if row.Size < 0 {
		row.Size = 0
	}

	if clm := ps.ContactsLocationsModule; clm != nil {
		row.Sites = len(clm.Locations)
		if em := clm.EligibilityModule; em != nil {
			if em.MinimumAge != "" {
				row.MinAge = em.MinimumAge
			}
			if em.MaximumAge != "" {
				row.MaxAge = em.MaximumAge
			}
		}
	}

	return row, nil
}

// TransformAll transforms every study, skipping invalid records. It
// returns the rows alongside the number of skipped records so callers can
// report them.
func TransformAll(studies []types.Study) ([]types.RfpRow, int) {
	rows := make([]types.RfpRow, 0, len(studies))
	skipped := 0
	for _, s := range studies {
		row, err := Transform(s)
		if err != nil {
			skipped++
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped
}
