package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizai/internal/analysis"
	"github.com/abhisek/quizai/internal/app"
)

// runApp builds dependencies and launches the TUI. A non-empty startQuizID
// opens that saved quiz directly.
func runApp(cmd *cobra.Command, startQuizID string) error {
	d, err := openDeps(cmd, true)
	if err != nil {
		return err
	}
	defer d.Close()

	var analyzer analysis.Analyzer = analysis.NoopAnalyzer{}
	if d.analyzer != nil {
		analyzer = d.analyzer
	}

	return app.Run(app.Options{
		Backend:     d.svc,
		Analysis:    analysis.NewService(analyzer),
		StartQuizID: startQuizID,
	})
}
