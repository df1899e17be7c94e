// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/trialscout/pkg/types"
)

func testCfg() types.RegistryConfig {
	return types.RegistryConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "test/0.1",
		},
		PageSize: 20,
	}
}

const samplePageJSON = `{
  "studies": [
    {
      "protocolSection": {
        "identificationModule": {
          "nctId": "NCT01234567",
          "briefTitle": "A Study of Something",
          "organization": {"fullName": "Acme Research", "class": "INDUSTRY"}
        },
        "statusModule": {"overallStatus": "RECRUITING", "statusVerifiedDate": "2026-08"},
        "designModule": {"phases": ["PHASE2"], "enrollmentInfo": {"count": 150}},
        "conditionsModule": {"conditions": ["Glioblastoma"]}
      }
    },
    {
      "protocolSection": {
        "identificationModule": {"nctId": "NCT07654321"},
        "statusModule": {"overallStatus": "COMPLETED"}
      }
    }
  ],
  "nextPageToken": "tok-page-2",
  "totalCount": 412
}`

func registryTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	old := registryAPIBase
	registryAPIBase = ts.URL
	t.Cleanup(func() { registryAPIBase = old })

	return NewClient(ts.Client(), testCfg())
}

func TestFetchPage(t *testing.T) {
	var gotQuery string
	c := registryTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, samplePageJSON)
	})

	page, err := c.FetchPage(context.Background(), PageRequest{
		Query:      "AREA[LocationCountry]United States",
		PageSize:   20,
		CountTotal: true,
		Fields:     StudyFields,
		Sort:       "LastUpdatePostDate:desc",
	})
	require.NoError(t, err)

	assert.Len(t, page.Studies, 2)
	assert.Equal(t, "tok-page-2", page.NextPageToken)
	assert.Equal(t, 412, page.TotalCount)
	assert.Equal(t, "NCT01234567", page.Studies[0].ProtocolSection.IdentificationModule.NCTID)
	assert.Equal(t, 150, page.Studies[0].ProtocolSection.DesignModule.EnrollmentInfo.Count.Int())

	assert.Contains(t, gotQuery, "format=json")
	assert.Contains(t, gotQuery, "countTotal=true")
	assert.Contains(t, gotQuery, "pageSize=20")
	assert.Contains(t, gotQuery, "sort=LastUpdatePostDate%3Adesc")
	assert.Contains(t, gotQuery, "query.term=")
}

func TestFetchPageNotFoundIsEmptyResult(t *testing.T) {
	c := registryTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no studies matched", http.StatusNotFound)
	})

	page, err := c.FetchPage(context.Background(), PageRequest{Query: "AREA[Condition]NOTHING"})
	require.NoError(t, err)
	assert.Empty(t, page.Studies)
	assert.Empty(t, page.NextPageToken)
	assert.Zero(t, page.TotalCount)
}

func TestFetchPageServerErrorIsTyped(t *testing.T) {
	c := registryTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	})

	_, err := c.FetchPage(context.Background(), PageRequest{})
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusInternalServerError, fe.StatusCode)
	assert.Contains(t, fe.Body, "upstream exploded")
}

func TestFetchPageTokenForwarded(t *testing.T) {
	var gotToken string
	c := registryTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get("pageToken")
		fmt.Fprint(w, `{"studies": []}`)
	})

	_, err := c.FetchPage(context.Background(), PageRequest{PageToken: "tok-page-2"})
	require.NoError(t, err)
	assert.Equal(t, "tok-page-2", gotToken)
}

func TestFetchStudy(t *testing.T) {
	c := registryTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/studies/NCT01234567" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{
			"protocolSection": {
				"identificationModule": {"nctId": "NCT01234567", "briefTitle": "A Study"},
				"statusModule": {"overallStatus": "RECRUITING"}
			}
		}`)
	})

	study, err := c.FetchStudy(context.Background(), "NCT01234567")
	require.NoError(t, err)
	assert.Equal(t, "NCT01234567", study.ProtocolSection.IdentificationModule.NCTID)
	assert.Equal(t, "RECRUITING", study.ProtocolSection.StatusModule.OverallStatus)
}

func TestFetchStudyNotFoundIsError(t *testing.T) {
	c := registryTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := c.FetchStudy(context.Background(), "NCT00000000")
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)
}

func TestFetchStudyEmptyID(t *testing.T) {
	c := NewClient(http.DefaultClient, testCfg())
	_, err := c.FetchStudy(context.Background(), "")
	require.Error(t, err)
}

func TestFlexCountFromString(t *testing.T) {
	c := registryTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"studies": [{
			"protocolSection": {
				"identificationModule": {"nctId": "NCT1"},
				"statusModule": {"overallStatus": "RECRUITING"},
				"designModule": {"enrollmentInfo": {"count": "75"}}
			}
		}]}`)
	})

	page, err := c.FetchPage(context.Background(), PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Studies, 1)
	assert.Equal(t, 75, page.Studies[0].ProtocolSection.DesignModule.EnrollmentInfo.Count.Int())
}
