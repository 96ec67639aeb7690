package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fwojciec/pagecheck"
	"github.com/fwojciec/pagecheck/bluemonday"
	"github.com/fwojciec/pagecheck/fs"
	"github.com/fwojciec/pagecheck/goquery"
	"github.com/fwojciec/pagecheck/markdown"
	"github.com/fwojciec/pagecheck/regexp"
	"github.com/fwojciec/pagecheck/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Extractor overrides the engine chosen by flags.
	Extractor pagecheck.Extractor

	// Lookup overrides the search backend chosen by the check command.
	Lookup pagecheck.PhraseLookup
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every step to stderr"`

	Analyze  AnalyzeCmd  `cmd:"" default:"withargs" help:"Extract content and list phrases to verify"`
	Check    CheckCmd    `cmd:"" help:"Extract content and look up every phrase"`
	Patterns PatternsCmd `cmd:"" help:"Show the regions and expressions of a pattern set"`
}

// PatternOptions selects the pattern set used for extraction.
type PatternOptions struct {
	Patterns    string `default:"content" enum:"content,sections" help:"Built-in pattern set (content, sections)"`
	PatternFile string `type:"path" help:"YAML file with a custom pattern set; overrides --patterns"`
}

// PatternSet returns the set named by the options.
func (o *PatternOptions) PatternSet() (pagecheck.PatternSet, error) {
	if o.PatternFile != "" {
		return yaml.LoadPatternSet(o.PatternFile)
	}
	return pagecheck.FindPatternSet(o.Patterns)
}

// ExtractOptions are shared by commands that build a report.
type ExtractOptions struct {
	PatternOptions `embed:""`

	Engine      string `default:"regexp" enum:"regexp,goquery" help:"Extraction engine (regexp, goquery)"`
	MinFragment int    `default:"10" help:"Fragments must be longer than this many characters"`
	MinSentence int    `default:"20" help:"Phrases must be longer than this many characters"`
	Sample      int    `default:"10" help:"Number of phrases included in the report"`
	Format      string `default:"json" enum:"json,markdown" help:"Report format (json, markdown)"`
	Duplicates  bool   `help:"List phrases that occur more than once on the page"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Input  string `arg:"" optional:"" help:"HTML file to analyze (default $PAGECHECK_INPUT or index.html)"`
	Output string `short:"o" env:"PAGECHECK_OUTPUT" default:"content_analysis_report.json" help:"Report path"`

	ExtractOptions `embed:""`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Input  string `arg:"" optional:"" help:"HTML file to check (default $PAGECHECK_INPUT or index.html)"`
	Output string `short:"o" env:"PAGECHECK_OUTPUT" default:"plagiarism_check_report.json" help:"Report path"`

	ExtractOptions `embed:""`

	Search   string  `default:"offline" enum:"offline,google" help:"Search backend (offline, google)"`
	APIKey   string  `name:"api-key" env:"PAGECHECK_SEARCH_KEY" help:"Search API key"`
	EngineID string  `name:"engine-id" env:"PAGECHECK_SEARCH_CX" help:"Custom search engine ID"`
	Rate     float64 `default:"1" help:"Lookups per second; 0 disables pacing"`
	MinCheck int     `default:"30" help:"Only phrases longer than this many characters are looked up"`
}

// PatternsCmd is the "patterns" subcommand.
type PatternsCmd struct {
	PatternOptions `embed:""`
}

// inputPath resolves the page to read when no argument is given.
func inputPath(arg string) string {
	if arg != "" {
		return arg
	}
	if env := os.Getenv("PAGECHECK_INPUT"); env != "" {
		return env
	}
	return pagecheck.DefaultInputPath
}

// newExtractor builds the extractor for the named engine.
func newExtractor(engine string, set pagecheck.PatternSet, minLength int) (pagecheck.Extractor, error) {
	cleaner := bluemonday.NewCleaner()
	switch engine {
	case "goquery":
		return goquery.NewExtractor(set, cleaner, minLength)
	case "", "regexp":
		return regexp.NewExtractor(set, cleaner, minLength)
	default:
		return nil, pagecheck.Errorf(pagecheck.EINVALID, "unknown engine %q", engine)
	}
}

// newReportWriter builds the writer for the named format.
func newReportWriter(format, path string) (pagecheck.ReportWriter, error) {
	switch format {
	case "markdown":
		return markdown.NewReportWriter(path), nil
	case "", "json":
		return fs.NewReportWriter(path), nil
	default:
		return nil, pagecheck.Errorf(pagecheck.EINVALID, "unknown format %q", format)
	}
}
