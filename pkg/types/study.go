// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures exchanged between the
// registry client, the view-model transformer, the accumulation session,
// and the exporters.
package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Study is one raw record from the ClinicalTrials.gov v2 studies endpoint.
// Almost every field below is optional upstream; only the NCT ID and the
// overall status are treated as load-bearing.
type Study struct {
	ProtocolSection ProtocolSection `json:"protocolSection"`
	HasResults      bool            `json:"hasResults,omitempty"`
}

// ProtocolSection groups the study modules returned by the API. Pointer
// fields mark modules that may be absent entirely.
type ProtocolSection struct {
	IdentificationModule    IdentificationModule     `json:"identificationModule"`
	StatusModule            StatusModule             `json:"statusModule"`
	DesignModule            *DesignModule            `json:"designModule,omitempty"`
	ConditionsModule        *ConditionsModule        `json:"conditionsModule,omitempty"`
	ContactsLocationsModule *ContactsLocationsModule `json:"contactsLocationsModule,omitempty"`
	ArmsInterventionsModule *ArmsInterventionsModule `json:"armsInterventionsModule,omitempty"`
}

// IdentificationModule carries the stable identifier, titles, and sponsor
// organization.
type IdentificationModule struct {
	NCTID         string        `json:"nctId"`
	BriefTitle    string        `json:"briefTitle,omitempty"`
	OfficialTitle string        `json:"officialTitle,omitempty"`
	Organization  *Organization `json:"organization,omitempty"`
}

// Organization identifies the sponsoring organization.
type Organization struct {
	FullName string `json:"fullName,omitempty"`
	Class    string `json:"class,omitempty"`
}

// StatusModule carries the recruitment status and its verification date.
type StatusModule struct {
	OverallStatus      string `json:"overallStatus"`
	StatusVerifiedDate string `json:"statusVerifiedDate,omitempty"`
	LastKnownStatus    string `json:"lastKnownStatus,omitempty"`
	WhyStopped         string `json:"whyStopped,omitempty"`
}

// DesignModule carries study type, phases, and enrollment.
type DesignModule struct {
	StudyType      string          `json:"studyType,omitempty"`
	Phases         []string        `json:"phases,omitempty"`
	EnrollmentInfo *EnrollmentInfo `json:"enrollmentInfo,omitempty"`
}

// EnrollmentInfo holds the participant count. The API serves the count as
// a JSON number, but some records carry it as a quoted string; FlexCount
// accepts both.
type EnrollmentInfo struct {
	Count FlexCount `json:"count,omitempty"`
	Type  string    `json:"type,omitempty"`
}

// ConditionsModule lists the conditions the study targets.
type ConditionsModule struct {
	Conditions []string `json:"conditions,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
}

// ContactsLocationsModule lists study sites. The eligibility block rides
// along here, matching the field selection the listing requests.
type ContactsLocationsModule struct {
	Locations         []Location         `json:"locations,omitempty"`
	EligibilityModule *EligibilityModule `json:"eligibilityModule,omitempty"`
}

// Location is one study site.
type Location struct {
	Facility string `json:"facility,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
}

// EligibilityModule carries free-text age bounds (e.g. "18 Years").
type EligibilityModule struct {
	MinimumAge string `json:"minimumAge,omitempty"`
	MaximumAge string `json:"maximumAge,omitempty"`
}

// ArmsInterventionsModule lists intervention types.
type ArmsInterventionsModule struct {
	InterventionTypes []string `json:"interventionTypes,omitempty"`
}

// StudiesResponse is one page from the studies endpoint. NextPageToken is
// empty on the last page; TotalCount is present only when countTotal was
// requested.
type StudiesResponse struct {
	Studies       []Study `json:"studies"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
	TotalCount    int     `json:"totalCount,omitempty"`
}

// FlexCount is an integer that unmarshals from either a JSON number or a
// quoted numeric string. Unparseable values decode as zero rather than
// failing the whole record.
type FlexCount int

// UnmarshalJSON implements json.Unmarshaler.
func (c *FlexCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*c = 0
		return nil
	}
	s := string(data)
	if strings.HasPrefix(s, `"`) {
		var unq string
		if err := json.Unmarshal(data, &unq); err != nil {
			*c = 0
			return nil
		}
		s = strings.TrimSpace(unq)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*c = 0
		return nil
	}
	*c = FlexCount(n)
	return nil
}

// Int returns the count as a plain int.
func (c FlexCount) Int() int { return int(c) }
