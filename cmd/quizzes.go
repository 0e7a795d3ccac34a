package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizai/internal/render"
)

var quizzesCmd = &cobra.Command{
	Use:     "quizzes",
	Aliases: []string{"ls"},
	Short:   "List saved quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		output, _ := cmd.Flags().GetString("output")
		format, err := render.ParseFormat(output)
		if err != nil {
			return err
		}

		d, err := openStore(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		list, err := newReadService(d).Quizzes(cmd.Context(), limit)
		if err != nil {
			return err
		}
		return render.Quizzes(cmd.OutOrStdout(), list, format)
	},
}

var quizzesRmCmd = &cobra.Command{
	Use:   "rm <quiz-id>...",
	Short: "Delete saved quizzes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openStore(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		svc := newReadService(d)
		for _, id := range args {
			if err := svc.DeleteQuiz(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		output, _ := cmd.Flags().GetString("output")
		format, err := render.ParseFormat(output)
		if err != nil {
			return err
		}

		d, err := openStore(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		attempts, err := newReadService(d).Attempts(cmd.Context(), limit)
		if err != nil {
			return err
		}
		return render.Attempts(cmd.OutOrStdout(), attempts, format)
	},
}

func init() {
	quizzesCmd.Flags().IntP("limit", "n", 20, "Number of quizzes to show")
	quizzesCmd.Flags().StringP("output", "o", "human", "Output format: human, json, yaml")
	quizzesCmd.AddCommand(quizzesRmCmd)

	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
	historyCmd.Flags().StringP("output", "o", "human", "Output format: human, json, yaml")
}
