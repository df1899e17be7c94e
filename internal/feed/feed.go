// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed fetches the registry's RSS feed and runs the client-side
// categorize/filter/sort/paginate pipeline over the parsed items.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/pdiddy/trialscout/pkg/types"
)

// feedAPIBase is the registry RSS endpoint. Declared as a var so tests can
// substitute an httptest server.
var feedAPIBase = "https://clinicaltrials.gov/api/rss"

// Item is one classified feed entry. Subfields missing upstream default to
// empty strings, never absence. Category and Status are derived once at
// fetch time from title and description and never recomputed.
type Item struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	PubDate     string    `json:"pubDate"`
	Published   time.Time `json:"-"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
}

// Fetch retrieves and parses the feed, classifying each item. Any
// transport or parse failure is returned as-is; the caller shows a single
// message and an empty list, with no retry.
func Fetch(ctx context.Context, client *http.Client, cfg types.FeedConfig) ([]Item, error) {
	params := url.Values{}
	if cfg.Location != "" {
		params.Set("locStr", cfg.Location)
	}
	if cfg.Country != "" {
		params.Set("country", cfg.Country)
	}
	if cfg.DateField != "" {
		params.Set("dateField", cfg.DateField)
	}

	reqURL := feedAPIBase
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating feed request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("feed returned HTTP %d", resp.StatusCode)
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	items := make([]Item, 0, len(parsed.Items))
	for _, fi := range parsed.Items {
		item := Item{
			Title:       fi.Title,
			Link:        fi.Link,
			Description: fi.Description,
			PubDate:     fi.Published,
			Category:    Categorize(fi.Title, fi.Description),
			Status:      ExtractStatus(fi.Description),
		}
		if fi.PublishedParsed != nil {
			item.Published = *fi.PublishedParsed
		}
		items = append(items, item)
	}
	return items, nil
}
