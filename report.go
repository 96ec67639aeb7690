package pagecheck

import (
	"context"
	"fmt"
)

// StatusExtracted is the report status when no lookups were made.
const StatusExtracted = "Content extracted - manual verification needed"

// Summary holds the counts of one run.
type Summary struct {
	TotalSections       int    `json:"total_sections"`
	TotalItems          int    `json:"total_items"`
	TotalPhrasesToCheck int    `json:"total_phrases_to_check"`
	Status              string `json:"status"`
}

// CheckSummary holds the counts of the lookups made during a run.
type CheckSummary struct {
	TotalChecked    int `json:"total_checked"`
	PotentialIssues int `json:"potential_issues"`
	Clean           int `json:"clean"`
}

// DuplicatePhrase is a phrase that appears more than once on the page.
type DuplicatePhrase struct {
	Phrase      string   `json:"phrase"`
	Sections    []string `json:"sections"`
	Occurrences int      `json:"occurrences"`
}

// Report is the result of one run. It is built in memory and written once.
type Report struct {
	Summary          Summary           `json:"summary"`
	CheckSummary     *CheckSummary     `json:"check_summary,omitempty"`
	ContentBySection RegionMap         `json:"content_by_section"`
	PhrasesToCheck   []CheckPhrase     `json:"phrases_to_check"`
	DuplicatePhrases []DuplicatePhrase `json:"duplicate_phrases,omitempty"`
	Checks           []CheckResult     `json:"checks,omitempty"`
}

// NewReport summarizes regions and phrases. Only the first sampleSize
// phrases are kept in the report.
func NewReport(regions RegionMap, phrases []CheckPhrase, sampleSize int) *Report {
	if regions == nil {
		regions = RegionMap{}
	}
	sample := phrases
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}
	if sample == nil {
		sample = []CheckPhrase{}
	}

	return &Report{
		Summary: Summary{
			TotalSections:       len(regions),
			TotalItems:          regions.FragmentCount(),
			TotalPhrasesToCheck: len(phrases),
			Status:              StatusExtracted,
		},
		ContentBySection: regions,
		PhrasesToCheck:   sample,
	}
}

// SetChecks attaches lookup results and updates the status accordingly.
func (r *Report) SetChecks(results []CheckResult) {
	var issues int
	for _, res := range results {
		if res.PotentiallyPlagiarized {
			issues++
		}
	}
	r.Checks = results
	r.CheckSummary = &CheckSummary{
		TotalChecked:    len(results),
		PotentialIssues: issues,
		Clean:           len(results) - issues,
	}
	r.Summary.Status = fmt.Sprintf("Checked - %d potential issue(s)", issues)
}

// ReportWriter persists a report, replacing any previous one.
type ReportWriter interface {
	WriteReport(ctx context.Context, report *Report) error
}
