package pagecheck_test

import (
	"testing"

	"github.com/fwojciec/pagecheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := pagecheck.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "index.html", cfg.InputPath)
	assert.Equal(t, "content_analysis_report.json", cfg.OutputPath)
	assert.Equal(t, 10, cfg.MinFragmentLength)
	assert.Equal(t, 20, cfg.MinSentenceLength)
	assert.Equal(t, 10, cfg.SampleSize)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*pagecheck.Config)
	}{
		{name: "empty input path", modify: func(c *pagecheck.Config) { c.InputPath = "" }},
		{name: "empty output path", modify: func(c *pagecheck.Config) { c.OutputPath = "" }},
		{name: "negative fragment length", modify: func(c *pagecheck.Config) { c.MinFragmentLength = -1 }},
		{name: "negative sentence length", modify: func(c *pagecheck.Config) { c.MinSentenceLength = -1 }},
		{name: "negative sample size", modify: func(c *pagecheck.Config) { c.SampleSize = -1 }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := pagecheck.DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Equal(t, pagecheck.EINVALID, pagecheck.ErrorCode(err))
		})
	}
}
