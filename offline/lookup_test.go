package offline_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/pagecheck"
	"github.com/fwojciec/pagecheck/offline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Lookup(t *testing.T) {
	t.Parallel()

	t.Run("reports every phrase clean with a note", func(t *testing.T) {
		t.Parallel()

		phrase := pagecheck.CheckPhrase{
			Section:     "descriptions",
			Phrase:      "Every suite looks out over the old harbour",
			SearchQuery: `"Every suite looks out over the old harbour"`,
		}

		result, err := offline.NewLookup().Lookup(context.Background(), phrase)

		require.NoError(t, err)
		assert.Equal(t, &pagecheck.CheckResult{
			Section: "descriptions",
			Query:   `"Every suite looks out over the old harbour"`,
			Note:    "Manual Google search recommended for: Every suite looks out over the old harbour...",
		}, result)
	})

	t.Run("note quotes the first fifty characters", func(t *testing.T) {
		t.Parallel()

		phrase := pagecheck.CheckPhrase{Phrase: strings.Repeat("a", 60)}

		result, err := offline.NewLookup().Lookup(context.Background(), phrase)

		require.NoError(t, err)
		assert.Equal(t, "Manual Google search recommended for: "+strings.Repeat("a", 50)+"...", result.Note)
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := offline.NewLookup().Lookup(ctx, pagecheck.CheckPhrase{})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
