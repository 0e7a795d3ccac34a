package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/abhisek/quizai/internal/analysis"
)

// Report writes an analysis report.
func Report(w io.Writer, r *analysis.Report, format Format) error {
	if r == nil {
		r = &analysis.Report{}
	}
	if done, err := encode(w, r, format); done {
		return err
	}
	if r.IsEmpty() {
		return empty(w, "report")
	}

	titleColor.Fprintln(w, "Summary")
	fmt.Fprintf(w, "  %s\n\n", r.Summary)
	section(w, goodColor, "Strengths", r.Strengths)
	section(w, badColor, "Weaknesses", r.Weaknesses)
	section(w, headColor, "Recommendations", r.Recommendations)
	return nil
}

func section(w io.Writer, c *color.Color, title string, items []string) {
	if len(items) == 0 {
		return
	}
	c.Fprintln(w, title)
	for _, it := range items {
		fmt.Fprintf(w, "  • %s\n", it)
	}
	fmt.Fprintln(w)
}
