package analysis

import "github.com/abhisek/quizai/internal/store"

// ToRecord converts r for storage.
func ToRecord(r *Report, attemptCount int, model string) store.ReportRecord {
	return store.ReportRecord{
		Summary:         r.Summary,
		Strengths:       r.Strengths,
		Weaknesses:      r.Weaknesses,
		Recommendations: r.Recommendations,
		AttemptCount:    attemptCount,
		Model:           model,
	}
}

// FromRecord restores a stored report.
func FromRecord(rec *store.ReportRecord) *Report {
	if rec == nil {
		return nil
	}
	return &Report{
		Summary:         rec.Summary,
		Strengths:       rec.Strengths,
		Weaknesses:      rec.Weaknesses,
		Recommendations: rec.Recommendations,
	}
}
