package analysis

import "time"

// History is the attempt history handed to an Analyzer, oldest first.
type History struct {
	Attempts []AttemptSummary
}

// AttemptSummary describes one finished quiz attempt.
type AttemptSummary struct {
	Topic       string
	Title       string
	Difficulty  string
	Format      string
	Correct     int
	Total       int
	CompletedAt time.Time
	Missed      []MissedQuestion
}

// Percent returns the attempt score as a whole percentage.
func (a AttemptSummary) Percent() int {
	if a.Total == 0 {
		return 0
	}
	return a.Correct * 100 / a.Total
}

// MissedQuestion is a question answered incorrectly.
type MissedQuestion struct {
	Question string
	Given    string
	Expected string
}

// Report is the result of analyzing a history. The zero value is the empty
// report and marshals to {}.
type Report struct {
	Summary         string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Strengths       []string `json:"strengths,omitempty" yaml:"strengths,omitempty"`
	Weaknesses      []string `json:"weaknesses,omitempty" yaml:"weaknesses,omitempty"`
	Recommendations []string `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

// IsEmpty reports whether the report carries no content.
func (r *Report) IsEmpty() bool {
	return r == nil || (r.Summary == "" && len(r.Strengths) == 0 &&
		len(r.Weaknesses) == 0 && len(r.Recommendations) == 0)
}
