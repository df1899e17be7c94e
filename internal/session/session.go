// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session owns the studies-loaded-so-far list for one filter
// session: the continuation token, the total count, and loading/error
// state. It is the only writer of that state.
package session

import (
	"context"
	"sync"

	"github.com/pdiddy/trialscout/internal/registry"
	"github.com/pdiddy/trialscout/internal/rfp"
	"github.com/pdiddy/trialscout/pkg/types"
)

// State is the controller's lifecycle state.
type State string

const (
	StateIdle         State = "idle"
	StateLoadingFirst State = "loading-first"
	StateLoadingMore  State = "loading-more"
	StateReady        State = "ready"
	StateError        State = "error"
)

// Fetcher is the slice of the registry client the session uses.
type Fetcher interface {
	FetchPage(ctx context.Context, req registry.PageRequest) (types.StudiesResponse, error)
}

// Session accumulates study pages for the current filter. A fetch that
// outlives a filter change must not write into the new session's state, so
// every fetch captures the generation at launch and discards its result if
// the generation has moved on.
type Session struct {
	mu sync.Mutex

	client   Fetcher
	pageSize int
	fields   []string

	filter     registry.Filter
	state      State
	studies    []types.Study
	totalCount int
	nextToken  string
	lastErr    error
	gen        uint64
}

// New builds an idle session. pageSize falls back to 20.
func New(client Fetcher, pageSize int) *Session {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &Session{
		client:   client,
		pageSize: pageSize,
		fields:   registry.StudyFields,
		state:    StateIdle,
	}
}

// SetFilter replaces the filter selections. Any accumulated studies,
// total count, and continuation token belong to the old filter and are
// cleared; results of fetches still in flight are invalidated.
func (s *Session) SetFilter(f registry.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
	s.gen++
	s.studies = nil
	s.totalCount = 0
	s.nextToken = ""
	s.lastErr = nil
	s.state = StateIdle
}

// Refresh discards the accumulation and loads the first page of the
// current filter, requesting the total count. It supersedes any fetch
// still in flight.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	myGen := s.gen
	s.state = StateLoadingFirst
	s.lastErr = nil
	filter := s.filter
	s.mu.Unlock()

	page, err := s.client.FetchPage(ctx, registry.PageRequest{
		Query:      filter.BuildQuery(),
		PageSize:   s.pageSize,
		CountTotal: true,
		Fields:     s.fields,
		Sort:       filter.Sort(),
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != myGen {
		// Superseded by a newer refresh or filter change.
		return nil
	}
	if err != nil {
		s.lastErr = err
		s.state = StateError
		return err
	}

	s.studies = page.Studies
	s.totalCount = page.TotalCount
	s.nextToken = page.NextPageToken
	s.state = StateReady
	return nil
}

// LoadNext appends the next page of the current filter session. Calls
// while a fetch is in flight, or when no continuation token remains, are
// dropped as no-ops. A retry after a failed continuation is allowed. The
// total count obtained on the first page is never re-requested or
// overwritten.
func (s *Session) LoadNext(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateLoadingFirst || s.state == StateLoadingMore {
		s.mu.Unlock()
		return nil
	}
	if s.nextToken == "" {
		s.mu.Unlock()
		return nil
	}
	myGen := s.gen
	token := s.nextToken
	filter := s.filter
	s.state = StateLoadingMore
	s.lastErr = nil
	s.mu.Unlock()

	page, err := s.client.FetchPage(ctx, registry.PageRequest{
		Query:     filter.BuildQuery(),
		PageSize:  s.pageSize,
		PageToken: token,
		Fields:    s.fields,
		Sort:      filter.Sort(),
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != myGen {
		return nil
	}
	if err != nil {
		// Keep what was accumulated before the failure.
		s.lastErr = err
		s.state = StateError
		return err
	}

	s.studies = append(s.studies, page.Studies...)
	s.nextToken = page.NextPageToken
	s.state = StateReady
	return nil
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the error recorded by the last failed fetch, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Studies returns a copy of the accumulated raw records in fetch order.
func (s *Session) Studies() []types.Study {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Study, len(s.studies))
	copy(out, s.studies)
	return out
}

// Rows transforms the accumulation into view-model rows, skipping records
// missing their load-bearing fields. The second return is the skip count.
func (s *Session) Rows() ([]types.RfpRow, int) {
	return rfp.TransformAll(s.Studies())
}

// TotalCount returns the match total reported on the session's first page.
func (s *Session) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalCount
}

// HasNextPage reports whether a continuation token remains.
func (s *Session) HasNextPage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextToken != ""
}

// Filter returns the current filter selections.
func (s *Session) Filter() registry.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}
