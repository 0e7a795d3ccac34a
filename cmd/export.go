package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizai/internal/quiz"
)

var exportCmd = &cobra.Command{
	Use:   "export <quiz-id>",
	Short: "Write a saved quiz to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		format, _ := cmd.Flags().GetString("format")

		d, err := openStore(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		q, err := newReadService(d).Quiz(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load quiz %s: %w", args[0], err)
		}

		if out == "" {
			ff, err := fileFormat(format, "")
			if err != nil {
				return err
			}
			return quiz.Encode(cmd.OutOrStdout(), q, ff)
		}
		if err := writeQuizFile(out, q, format); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", out)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a quiz file and save it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		q, err := quiz.Decode(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		d, err := openStore(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := newReadService(d).SaveQuiz(cmd.Context(), q); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %q as %s (%d questions)\n", q.Title, q.ID, len(q.Questions))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "Output file (default stdout)")
	exportCmd.Flags().String("format", "", "File format: json or yaml (default from --out extension, else json)")
}

// fileFormat picks the file encoding from an explicit name or a path extension.
func fileFormat(name, path string) (quiz.FileFormat, error) {
	if name == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return quiz.FileYAML, nil
		default:
			return quiz.FileJSON, nil
		}
	}
	switch ff := quiz.FileFormat(strings.ToLower(name)); ff {
	case quiz.FileJSON, quiz.FileYAML:
		return ff, nil
	}
	return "", fmt.Errorf("unknown file format %q (want json or yaml)", name)
}

// writeQuizFile encodes q to path. format may be empty to infer it from the
// extension.
func writeQuizFile(path string, q *quiz.Quiz, format string) error {
	ff, err := fileFormat(format, path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := quiz.Encode(f, q, ff); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
