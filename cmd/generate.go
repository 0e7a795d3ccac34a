package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a quiz on a topic",
	Example: `  quizai generate --topic "photosynthesis" --count 10
  quizai generate --topic "Go generics" --format multiple-choice -o json --answers
  quizai generate --topic "World War I" --out ww1.yaml --no-save`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("topic", "", "Quiz topic (required)")
	f.String("format", string(quiz.FormatMixed), "Question format: mixed, multiple-choice, true-false, short-answer")
	f.String("difficulty", string(quiz.DifficultyMedium), "Difficulty: easy, medium, hard")
	f.Int("count", 5, fmt.Sprintf("Number of questions (1-%d)", quiz.MaxQuestions))
	f.StringP("output", "o", "human", "Output format: human, json, yaml")
	f.Bool("answers", false, "Include answers and explanations in the output")
	f.String("out", "", "Also write the quiz file to this path (.json or .yaml)")
	f.Bool("no-save", false, "Do not save the quiz to the database")
	_ = generateCmd.MarkFlagRequired("topic")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	format, _ := cmd.Flags().GetString("format")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	output, _ := cmd.Flags().GetString("output")
	withAnswers, _ := cmd.Flags().GetBool("answers")
	outFile, _ := cmd.Flags().GetString("out")
	noSave, _ := cmd.Flags().GetBool("no-save")

	outFormat, err := render.ParseFormat(output)
	if err != nil {
		return err
	}

	in := quiz.GenerateInput{
		Topic:      topic,
		Format:     quiz.Format(format),
		Difficulty: quiz.Difficulty(difficulty),
		Count:      count,
	}.Normalize()
	// Fail on bad flags before touching the database or the model.
	if err := in.Validate(); err != nil {
		return err
	}

	d, err := openDeps(cmd, false)
	if err != nil {
		return err
	}
	defer d.Close()

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = fmt.Sprintf(" Generating %d %s questions on %q...", in.Count, in.Difficulty, in.Topic)
	s.Start()
	q, err := d.svc.Generate(cmd.Context(), in, !noSave)
	s.Stop()
	if err != nil {
		return fmt.Errorf("generate quiz: %w", err)
	}

	if outFile != "" && !q.IsEmpty() {
		if err := writeQuizFile(outFile, q, ""); err != nil {
			return err
		}
	}

	if err := render.Quiz(cmd.OutOrStdout(), q, outFormat, withAnswers); err != nil {
		return err
	}
	if q.ID != "" && outFormat == render.FormatHuman {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nSaved as %s. Play it with: quizai play %s\n", q.ID, q.ID)
	}
	return nil
}
