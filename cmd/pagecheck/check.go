package main

import (
	"fmt"

	"github.com/fwojciec/pagecheck"
	"github.com/fwojciec/pagecheck/check"
	pchttp "github.com/fwojciec/pagecheck/http"
	"github.com/fwojciec/pagecheck/offline"
	pcslog "github.com/fwojciec/pagecheck/slog"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	input := inputPath(c.Input)

	lookup, err := c.lookup(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Starting plagiarism check")
	fmt.Fprintln(deps.Stdout, rule)

	report, phrases, err := c.BuildReport(deps, input, c.Output)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Found %d content sections with %d phrases\n\n",
		report.Summary.TotalSections, report.Summary.TotalPhrasesToCheck)

	checker := &check.Checker{
		Lookup:      pcslog.NewLoggingPhraseLookup(lookup, deps.Logger),
		Limiter:     check.NewLimiter(c.Rate),
		RetryDelays: check.DefaultRetryDelays(),
		MinLength:   c.MinCheck,
		Logger: func(format string, args ...any) {
			deps.Logger.Warn(fmt.Sprintf(format, args...))
		},
	}

	results, err := checker.Check(deps.Ctx, phrases, func(p check.Progress) {
		fmt.Fprintf(deps.Stdout, "Checking %d/%d: %s\n", p.Completed, p.Total, truncate(p.Phrase.Phrase, 50))
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: check interrupted after %d lookup(s): %s\n", len(results), errorMessage(err))
		return err
	}
	report.SetChecks(results)

	printCheckSummary(deps.Stdout, report)
	printRecommendations(deps.Stdout)
	printDuplicates(deps.Stdout, report.DuplicatePhrases)

	if err := writeReport(deps, c.Format, c.Output, report); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to write report to %s: %s\n", c.Output, errorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "\nDetailed report saved to: %s\n", c.Output)
	return nil
}

// lookup returns the search backend selected by flags.
func (c *CheckCmd) lookup(deps *Dependencies) (pagecheck.PhraseLookup, error) {
	if deps.Lookup != nil {
		return deps.Lookup, nil
	}
	switch c.Search {
	case "google":
		if c.APIKey == "" || c.EngineID == "" {
			return nil, pagecheck.Errorf(pagecheck.EINVALID,
				"google search requires --api-key and --engine-id (or PAGECHECK_SEARCH_KEY and PAGECHECK_SEARCH_CX)")
		}
		return pchttp.NewSearchLookup(c.APIKey, c.EngineID), nil
	case "", "offline":
		return offline.NewLookup(), nil
	default:
		return nil, pagecheck.Errorf(pagecheck.EINVALID, "unknown search backend %q", c.Search)
	}
}
