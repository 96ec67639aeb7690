// Package markdown renders pagecheck reports as Markdown documents.
package markdown

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pagecheck"
	"github.com/fwojciec/pagecheck/fs"
	"github.com/nao1215/markdown"
)

// Ensure ReportWriter implements pagecheck.ReportWriter at compile time.
var _ pagecheck.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes reports as Markdown files, replacing the target
// atomically.
type ReportWriter struct {
	path string
}

// NewReportWriter creates a ReportWriter targeting path.
func NewReportWriter(path string) *ReportWriter {
	return &ReportWriter{path: path}
}

// Path returns the target file path.
func (w *ReportWriter) Path() string {
	return w.path
}

// WriteReport renders the report and replaces the target file.
func (w *ReportWriter) WriteReport(ctx context.Context, report *pagecheck.Report) error {
	var buf bytes.Buffer
	if err := Render(&buf, report); err != nil {
		return err
	}
	return fs.WriteFileAtomic(w.path, buf.Bytes())
}

// Render writes the report as Markdown to out.
func Render(out io.Writer, report *pagecheck.Report) error {
	md := markdown.NewMarkdown(out)

	md.H1("Content Analysis Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Sections", strconv.Itoa(report.Summary.TotalSections)},
			{"Content items", strconv.Itoa(report.Summary.TotalItems)},
			{"Phrases to check", strconv.Itoa(report.Summary.TotalPhrasesToCheck)},
			{"Status", report.Summary.Status},
		},
	})
	md.PlainText("")

	writeChecks(md, report)
	writeSections(md, report)
	writePhrases(md, report)
	writeDuplicates(md, report)

	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("Verify phrases with a quoted web search or a plagiarism checker such as Grammarly, Quetext or Copyscape.")

	return md.Build()
}

func writeChecks(md *markdown.Markdown, report *pagecheck.Report) {
	if report.CheckSummary == nil {
		return
	}
	s := report.CheckSummary

	md.H2("Lookups")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Checked", "Potential issues", "Clean"},
		Rows: [][]string{{
			strconv.Itoa(s.TotalChecked),
			strconv.Itoa(s.PotentialIssues),
			strconv.Itoa(s.Clean),
		}},
	})
	md.PlainText("")

	if s.PotentialIssues == 0 {
		md.Tip("No phrase was found elsewhere as an exact match.")
		md.PlainText("")
		return
	}

	md.Warningf("%d phrase(s) need review.", s.PotentialIssues)
	md.PlainText("")
	var flagged []string
	for _, c := range report.Checks {
		if c.PotentiallyPlagiarized {
			flagged = append(flagged, truncate(c.Query, 100))
		}
	}
	md.BulletList(flagged...)
	md.PlainText("")
}

func writeSections(md *markdown.Markdown, report *pagecheck.Report) {
	md.H2("Content by Section")
	md.PlainText("")

	if len(report.ContentBySection) == 0 {
		md.PlainText("No content extracted.")
		md.PlainText("")
		return
	}

	for _, r := range report.ContentBySection {
		md.PlainText("### " + r.Name)
		md.PlainText("")
		md.BulletList(r.Fragments...)
		md.PlainText("")
	}
}

func writePhrases(md *markdown.Markdown, report *pagecheck.Report) {
	md.H2("Phrases to Check")
	md.PlainText("")

	if len(report.PhrasesToCheck) == 0 {
		md.Note("No sentence is long enough to check.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.PhrasesToCheck))
	for i, p := range report.PhrasesToCheck {
		rows[i] = []string{strconv.Itoa(i + 1), p.Section, "`" + truncate(p.SearchQuery, 100) + "`"}
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Section", "Search query"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeDuplicates(md *markdown.Markdown, report *pagecheck.Report) {
	if len(report.DuplicatePhrases) == 0 {
		return
	}

	md.H2("Repeated Phrases")
	md.PlainText("")

	rows := make([][]string, len(report.DuplicatePhrases))
	for i, d := range report.DuplicatePhrases {
		rows[i] = []string{truncate(d.Phrase, 80), strings.Join(d.Sections, ", "), strconv.Itoa(d.Occurrences)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Phrase", "Sections", "Occurrences"},
		Rows:   rows,
	})
	md.PlainText("")
}

// truncate shortens s to maxLen characters with an ellipsis.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen]) + "..."
}
