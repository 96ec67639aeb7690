package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pagecheck"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const rule = "============================================================"

// samplePhrases is the number of phrases printed to the console.
const samplePhrases = 5

// printRegions prints a table of the regions found and their fragment counts.
func printRegions(w io.Writer, regions pagecheck.RegionMap) {
	if len(regions) == 0 {
		fmt.Fprintln(w, "No content extracted. Check the HTML file and the pattern set.")
		return
	}

	fmt.Fprintln(w, "Content sections found:")
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Section", "Items"})
	for _, r := range regions {
		t.AppendRow(table.Row{regionTitle(r.Name), len(r.Fragments)})
	}
	t.AppendFooter(table.Row{"Total", regions.FragmentCount()})
	t.Render()
}

// regionTitle turns a region name such as "feature_cards" into "Feature Cards".
func regionTitle(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

func printInstructions(w io.Writer) {
	fmt.Fprintln(w, "\nMANUAL PLAGIARISM CHECK INSTRUCTIONS:")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "1. Copy the phrases below and search them on Google (in quotes)")
	fmt.Fprintln(w, "2. Use online plagiarism checkers like:")
	fmt.Fprintln(w, "   - Grammarly (https://grammarly.com)")
	fmt.Fprintln(w, "   - Quetext (https://quetext.com)")
	fmt.Fprintln(w, "   - Copyscape (https://copyscape.com)")
}

func printSamplePhrases(w io.Writer, phrases []pagecheck.CheckPhrase) {
	if len(phrases) == 0 {
		return
	}
	fmt.Fprintln(w, "\nSAMPLE PHRASES TO CHECK:")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for i, p := range phrases {
		if i == samplePhrases {
			break
		}
		fmt.Fprintf(w, "%d. Section: %s\n", i+1, p.Section)
		fmt.Fprintf(w, "   Phrase: %s\n", truncate(p.Phrase, 100))
		fmt.Fprintf(w, "   Google Search: %s\n\n", truncate(p.SearchQuery, 100))
	}
}

func printDuplicates(w io.Writer, dups []pagecheck.DuplicatePhrase) {
	if len(dups) == 0 {
		return
	}
	fmt.Fprintln(w, "\nREPEATED PHRASES:")
	for _, d := range dups {
		fmt.Fprintf(w, "- %s (%dx in %s)\n", truncate(d.Phrase, 100), d.Occurrences, strings.Join(d.Sections, ", "))
	}
}

func printCheckSummary(w io.Writer, report *pagecheck.Report) {
	s := report.CheckSummary
	if s == nil {
		return
	}
	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, "PLAGIARISM CHECK REPORT")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total phrases checked: %d\n", s.TotalChecked)
	fmt.Fprintf(w, "Potential plagiarism issues: %d\n", s.PotentialIssues)
	fmt.Fprintf(w, "Clean phrases: %d\n", s.Clean)

	if s.PotentialIssues == 0 {
		fmt.Fprintln(w, "\nNo exact matches found for the checked phrases.")
		return
	}
	fmt.Fprintf(w, "\nFound %d phrase(s) that need review:\n", s.PotentialIssues)
	for _, res := range report.Checks {
		if res.PotentiallyPlagiarized {
			fmt.Fprintf(w, "- %s\n", truncate(res.Query, 100))
		}
	}
}

func printRecommendations(w io.Writer) {
	fmt.Fprintln(w, "\nRECOMMENDATIONS:")
	fmt.Fprintln(w, "1. Manually verify any flagged content using online plagiarism checkers")
	fmt.Fprintln(w, "2. Rewrite flagged phrases in your own words")
	fmt.Fprintln(w, "3. Add property-specific details to make content unique")
}

// truncate shortens s to maxLen characters with an ellipsis.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen]) + "..."
}

// errorMessage returns the message of an application error, or the full
// text of any other error.
func errorMessage(err error) string {
	var e *pagecheck.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
