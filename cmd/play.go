package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [quiz-id]",
	Short: "Launch the interactive quiz player",
	Long:  "Launch the TUI. With a quiz id, open that saved quiz directly.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id string
		if len(args) == 1 {
			id = args[0]
		}
		return runApp(cmd, id)
	},
}
