package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/fwojciec/pagecheck"
	pchttp "github.com/fwojciec/pagecheck/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var harbourPhrase = pagecheck.CheckPhrase{
	Section:     "room_descriptions",
	Phrase:      "Every suite looks out over the old harbour",
	SearchQuery: `"Every suite looks out over the old harbour"`,
}

func TestSearchLookup_Lookup(t *testing.T) {
	t.Parallel()

	t.Run("sends quoted query with credentials", func(t *testing.T) {
		t.Parallel()

		queries := make(chan url.Values, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			queries <- r.URL.Query()
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		lookup := pchttp.NewSearchLookup("k-123", "cx-456", pchttp.WithBaseURL(server.URL))
		_, err := lookup.Lookup(context.Background(), harbourPhrase)

		require.NoError(t, err)
		q := <-queries
		got := map[string]string{
			"key": q.Get("key"),
			"cx":  q.Get("cx"),
			"q":   q.Get("q"),
			"num": q.Get("num"),
		}
		assert.Equal(t, map[string]string{
			"key": "k-123",
			"cx":  "cx-456",
			"q":   `"Every suite looks out over the old harbour"`,
			"num": "5",
		}, got)
	})

	t.Run("no results is clean", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"searchInformation":{"totalResults":"0"}}`))
		}))
		defer server.Close()

		lookup := pchttp.NewSearchLookup("k", "cx", pchttp.WithBaseURL(server.URL))
		result, err := lookup.Lookup(context.Background(), harbourPhrase)

		require.NoError(t, err)
		assert.False(t, result.PotentiallyPlagiarized)
		assert.Empty(t, result.Matches)
		assert.Equal(t, "room_descriptions", result.Section)
		assert.Equal(t, harbourPhrase.SearchQuery, result.Query)
	})

	t.Run("results are potential matches", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"items":[
				{"title":"Harbour Hotel","link":"https://example.com/rooms"},
				{"title":"Copycat Inn","link":"https://example.org/suites"}
			]}`))
		}))
		defer server.Close()

		lookup := pchttp.NewSearchLookup("k", "cx", pchttp.WithBaseURL(server.URL), pchttp.WithMaxResults(2))
		result, err := lookup.Lookup(context.Background(), harbourPhrase)

		require.NoError(t, err)
		assert.True(t, result.PotentiallyPlagiarized)
		assert.Equal(t, []pagecheck.Match{
			{Title: "Harbour Hotel", URL: "https://example.com/rooms"},
			{Title: "Copycat Inn", URL: "https://example.org/suites"},
		}, result.Matches)
		assert.Equal(t, "2 exact match(es) found", result.Note)
	})

	t.Run("rate limiting is unavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		lookup := pchttp.NewSearchLookup("k", "cx", pchttp.WithBaseURL(server.URL))
		_, err := lookup.Lookup(context.Background(), harbourPhrase)

		require.Error(t, err)
		assert.Equal(t, pagecheck.EUNAVAILABLE, pagecheck.ErrorCode(err))
	})

	t.Run("server error is unavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		lookup := pchttp.NewSearchLookup("k", "cx", pchttp.WithBaseURL(server.URL))
		_, err := lookup.Lookup(context.Background(), harbourPhrase)

		require.Error(t, err)
		assert.Equal(t, pagecheck.EUNAVAILABLE, pagecheck.ErrorCode(err))
	})

	t.Run("forbidden is internal", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		lookup := pchttp.NewSearchLookup("k", "cx", pchttp.WithBaseURL(server.URL))
		_, err := lookup.Lookup(context.Background(), harbourPhrase)

		require.Error(t, err)
		assert.Equal(t, pagecheck.EINTERNAL, pagecheck.ErrorCode(err))
		assert.Contains(t, pagecheck.ErrorMessage(err), "403")
	})

	t.Run("missing credentials are invalid", func(t *testing.T) {
		t.Parallel()

		_, err := pchttp.NewSearchLookup("", "").Lookup(context.Background(), harbourPhrase)

		require.Error(t, err)
		assert.Equal(t, pagecheck.EINVALID, pagecheck.ErrorCode(err))
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		lookup := pchttp.NewSearchLookup("k", "cx",
			pchttp.WithBaseURL(server.URL),
			pchttp.WithTimeout(10*time.Millisecond),
		)
		_, err := lookup.Lookup(context.Background(), harbourPhrase)

		require.Error(t, err)
		assert.Equal(t, pagecheck.EUNAVAILABLE, pagecheck.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		lookup := pchttp.NewSearchLookup("k", "cx", pchttp.WithBaseURL(server.URL))
		_, err := lookup.Lookup(ctx, harbourPhrase)

		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
