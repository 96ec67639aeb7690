// Package http provides a pagecheck.PhraseLookup backed by the Google
// Custom Search JSON API.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fwojciec/pagecheck"
)

// DefaultSearchTimeout is the default timeout for search requests.
const DefaultSearchTimeout = 10 * time.Second

// DefaultSearchURL is the Custom Search JSON API endpoint.
const DefaultSearchURL = "https://www.googleapis.com/customsearch/v1"

// DefaultMaxResults is the number of results requested per query.
const DefaultMaxResults = 5

// Ensure SearchLookup implements pagecheck.PhraseLookup at compile time.
var _ pagecheck.PhraseLookup = (*SearchLookup)(nil)

// SearchLookup searches for each phrase as a quoted exact-match query.
// Any result counts as a potential match.
type SearchLookup struct {
	client     *http.Client
	timeout    time.Duration
	baseURL    string
	apiKey     string
	engineID   string
	maxResults int
}

// Option configures a SearchLookup.
type Option func(*SearchLookup)

// WithTimeout sets the timeout for search requests.
// Defaults to DefaultSearchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *SearchLookup) {
		s.timeout = d
	}
}

// WithBaseURL overrides the search endpoint.
func WithBaseURL(u string) Option {
	return func(s *SearchLookup) {
		s.baseURL = u
	}
}

// WithMaxResults sets how many results are requested per query (1-10).
func WithMaxResults(n int) Option {
	return func(s *SearchLookup) {
		s.maxResults = n
	}
}

// NewSearchLookup creates a SearchLookup for the given API key and
// programmable search engine ID.
func NewSearchLookup(apiKey, engineID string, opts ...Option) *SearchLookup {
	s := &SearchLookup{
		timeout:    DefaultSearchTimeout,
		baseURL:    DefaultSearchURL,
		apiKey:     apiKey,
		engineID:   engineID,
		maxResults: DefaultMaxResults,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

type searchResponse struct {
	Items []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
	} `json:"items"`
}

// Lookup queries the search API for the phrase's quoted search query.
// Returns EUNAVAILABLE on rate limiting and server errors so callers can
// retry, and EINTERNAL on any other unexpected status.
func (s *SearchLookup) Lookup(ctx context.Context, phrase pagecheck.CheckPhrase) (*pagecheck.CheckResult, error) {
	if s.apiKey == "" || s.engineID == "" {
		return nil, pagecheck.Errorf(pagecheck.EINVALID, "search API key and engine ID required")
	}

	q := url.Values{}
	q.Set("key", s.apiKey)
	q.Set("cx", s.engineID)
	q.Set("q", phrase.SearchQuery)
	q.Set("num", strconv.Itoa(s.maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, pagecheck.Errorf(pagecheck.EUNAVAILABLE, "search request failed: %v", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, pagecheck.Errorf(pagecheck.EUNAVAILABLE, "search API returned HTTP %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, pagecheck.Errorf(pagecheck.EINTERNAL, "search API returned HTTP %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	result := &pagecheck.CheckResult{
		Section: phrase.Section,
		Query:   phrase.SearchQuery,
	}
	for _, item := range body.Items {
		result.Matches = append(result.Matches, pagecheck.Match{Title: item.Title, URL: item.Link})
	}
	result.PotentiallyPlagiarized = len(result.Matches) > 0
	if result.PotentiallyPlagiarized {
		result.Note = fmt.Sprintf("%d exact match(es) found", len(result.Matches))
	}

	return result, nil
}
