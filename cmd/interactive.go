package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dreedsanders/EggyCommutes-sub000/pkg/tui"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to view the board, browse the ferry schedule, and edit your commute stops interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
