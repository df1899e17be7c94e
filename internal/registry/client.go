// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/pdiddy/trialscout/internal/httputil"
	"github.com/pdiddy/trialscout/pkg/types"
)

// registryAPIBase is the ClinicalTrials.gov v2 API root. Declared as a var
// so tests can substitute an httptest server.
var registryAPIBase = "https://clinicaltrials.gov/api/v2"

// StudyFields is the field selection requested for listing pages. It keeps
// responses to the modules the view model reads.
var StudyFields = []string{
	"protocolSection.identificationModule",
	"protocolSection.statusModule",
	"protocolSection.designModule.enrollmentInfo",
	"protocolSection.designModule.phases",
	"protocolSection.designModule.studyType",
	"protocolSection.conditionsModule",
	"protocolSection.contactsLocationsModule",
	"protocolSection.armsInterventionsModule",
}

// FetchError reports a non-success response from the registry. It carries
// the HTTP status and (truncated) body for diagnostics.
type FetchError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("registry returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("registry returned HTTP %d: %s", e.StatusCode, e.Body)
}

// maxErrorBody bounds how much of an error response body is retained.
const maxErrorBody = 512

// Client fetches study pages and single studies. Every call hits the
// network; there is no caching layer.
type Client struct {
	httpClient *http.Client
	cfg        types.RegistryConfig
	limiter    *rate.Limiter
}

// NewClient builds a registry client from config. When
// cfg.RequestsPerSecond is positive, outbound calls are paced so bulk
// pagination stays inside the registry's polite-use limits.
func NewClient(httpClient *http.Client, cfg types.RegistryConfig) *Client {
	c := &Client{httpClient: httpClient, cfg: cfg}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return c
}

// PageRequest names the parameters of one studies-page fetch.
type PageRequest struct {
	// Query is the query.term string built by Filter.BuildQuery.
	Query string

	// PageSize is the number of records per page.
	PageSize int

	// PageToken continues a prior page's result set. A token is only
	// valid against the query that produced it.
	PageToken string

	// CountTotal asks the registry for the total match count. Request it
	// only on the first page of a filter session.
	CountTotal bool

	// Fields narrows the response to the named modules; nil requests
	// full records.
	Fields []string

	// Sort is the sort parameter (e.g. "LastUpdatePostDate:desc").
	Sort string
}

// FetchPage requests one page of studies. A 404 response is a valid
// empty-result page, not an error: the registry serves 404 for some
// empty-result queries.
func (c *Client) FetchPage(ctx context.Context, req PageRequest) (types.StudiesResponse, error) {
	params := url.Values{"format": {"json"}}
	if req.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(req.PageSize))
	}
	params.Set("countTotal", strconv.FormatBool(req.CountTotal))
	if req.PageToken != "" {
		params.Set("pageToken", req.PageToken)
	}
	if len(req.Fields) > 0 {
		params.Set("fields", strings.Join(req.Fields, ","))
	}
	if req.Sort != "" {
		params.Set("sort", req.Sort)
	}
	if req.Query != "" {
		params.Set("query.term", req.Query)
	}

	resp, err := c.get(ctx, registryAPIBase+"/studies?"+params.Encode())
	if err != nil {
		return types.StudiesResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return types.StudiesResponse{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return types.StudiesResponse{}, fetchError(resp)
	}

	var page types.StudiesResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return types.StudiesResponse{}, fmt.Errorf("parsing studies response: %w", err)
	}
	return page, nil
}

// FetchStudy requests one study by NCT ID. Unlike FetchPage, a 404 here is
// an error: the caller asked for a specific record.
func (c *Client) FetchStudy(ctx context.Context, nctID string) (types.Study, error) {
	if nctID == "" {
		return types.Study{}, fmt.Errorf("empty NCT ID")
	}

	resp, err := c.get(ctx, registryAPIBase+"/studies/"+url.PathEscape(nctID))
	if err != nil {
		return types.Study{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Study{}, fetchError(resp)
	}

	var study types.Study
	if err := json.NewDecoder(resp.Body).Decode(&study); err != nil {
		return types.Study{}, fmt.Errorf("parsing study %s: %w", nctID, err)
	}
	return study, nil
}

// get waits for the pacing limiter, then issues the request with 429
// backoff through httputil.DoWithRetry.
func (c *Client) get(ctx context.Context, reqURL string) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("registry request: %w", err)
	}
	return resp, nil
}

// fetchError drains the response into a typed FetchError.
func fetchError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &FetchError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
