package main

import (
	"fmt"

	"github.com/fwojciec/pagecheck"
	"github.com/fwojciec/pagecheck/fs"
	pcslog "github.com/fwojciec/pagecheck/slog"
	"github.com/fwojciec/pagecheck/xxhash"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	input := inputPath(c.Input)

	fmt.Fprintln(deps.Stdout, "Page Content Analyzer")
	fmt.Fprintln(deps.Stdout, rule)

	report, _, err := c.BuildReport(deps, input, c.Output)
	if err != nil {
		return err
	}

	printRegions(deps.Stdout, report.ContentBySection)
	if report.Summary.TotalSections > 0 {
		fmt.Fprintf(deps.Stdout, "\nTotal content items to verify: %d\n", report.Summary.TotalItems)
		fmt.Fprintf(deps.Stdout, "Generated %d phrases for plagiarism checking\n", report.Summary.TotalPhrasesToCheck)
	}

	writeErr := writeReport(deps, c.Format, c.Output, report)
	if writeErr == nil {
		fmt.Fprintln(deps.Stdout, "\nANALYSIS COMPLETE")
		fmt.Fprintf(deps.Stdout, "Detailed report saved to: %s\n", c.Output)
	}

	printInstructions(deps.Stdout)
	printSamplePhrases(deps.Stdout, report.PhrasesToCheck)
	printDuplicates(deps.Stdout, report.DuplicatePhrases)

	if writeErr != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to write report to %s: %s\n", c.Output, errorMessage(writeErr))
		return writeErr
	}
	return nil
}

// BuildReport reads the page at input and builds its report in memory.
// A missing or unreadable page is an error. A page the extractor cannot
// process yields an empty report. Also returns every phrase found, not
// just the report sample.
func (o *ExtractOptions) BuildReport(deps *Dependencies, input, output string) (*pagecheck.Report, []pagecheck.CheckPhrase, error) {
	cfg := pagecheck.Config{
		InputPath:         input,
		OutputPath:        output,
		MinFragmentLength: o.MinFragment,
		MinSentenceLength: o.MinSentence,
		SampleSize:        o.Sample,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return nil, nil, err
	}

	set, err := o.PatternSet()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return nil, nil, err
	}

	extractor := deps.Extractor
	if extractor == nil {
		if extractor, err = newExtractor(o.Engine, set, cfg.MinFragmentLength); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
			return nil, nil, err
		}
	}

	html, err := fs.ReadPage(cfg.InputPath)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return nil, nil, err
	}

	regions, err := pcslog.NewLoggingExtractor(extractor, deps.Logger).Extract(html)
	if err != nil {
		deps.Logger.Warn("extraction failed, continuing with no content", "input", cfg.InputPath, "err", err)
		regions = pagecheck.RegionMap{}
	}

	phrases := pagecheck.Segment(regions, cfg.MinSentenceLength)
	report := pagecheck.NewReport(regions, phrases, cfg.SampleSize)
	if o.Duplicates {
		report.DuplicatePhrases = xxhash.FindDuplicates(phrases)
	}
	return report, phrases, nil
}

// writeReport persists report at path in the given format.
func writeReport(deps *Dependencies, format, path string, report *pagecheck.Report) error {
	w, err := newReportWriter(format, path)
	if err != nil {
		return err
	}
	return pcslog.NewLoggingReportWriter(w, deps.Logger).WriteReport(deps.Ctx, report)
}
