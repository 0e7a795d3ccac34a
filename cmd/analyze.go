package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizai/internal/render"
	"github.com/abhisek/quizai/internal/service"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze recent attempts for strengths and weaknesses",
	Long: "Send the most recent attempts to the model and print a report with strengths, " +
		"weaknesses and recommendations. A non-empty report is saved. " +
		"Use --latest to print the last saved report without calling the model.",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		output, _ := cmd.Flags().GetString("output")
		latest, _ := cmd.Flags().GetBool("latest")
		format, err := render.ParseFormat(output)
		if err != nil {
			return err
		}

		if latest {
			d, err := openStore(cmd, false)
			if err != nil {
				return err
			}
			defer d.Close()
			r, err := newReadService(d).LatestReport(cmd.Context())
			if err != nil {
				return err
			}
			return render.Report(cmd.OutOrStdout(), r, format)
		}

		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.Suffix = fmt.Sprintf(" Analyzing up to %d recent attempts...", limit)
		s.Start()
		r, err := d.svc.Analyze(cmd.Context(), limit)
		s.Stop()
		if err != nil {
			return fmt.Errorf("analyze history: %w", err)
		}
		return render.Report(cmd.OutOrStdout(), r, format)
	},
}

func init() {
	analyzeCmd.Flags().IntP("limit", "n", service.DefaultHistoryLimit, "Number of recent attempts to analyze")
	analyzeCmd.Flags().StringP("output", "o", "human", "Output format: human, json, yaml")
	analyzeCmd.Flags().Bool("latest", false, "Print the last saved report instead of running a new analysis")
}
