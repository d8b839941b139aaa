package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dreedsanders/EggyCommutes-sub000/pkg/tui"
)

var rootCmd = &cobra.Command{
	Use:   "eggycommutes",
	Short: "An always-on departure board for your personal commute",
	Long: `eggycommutes tracks a fixed set of personal commute options (bus, train,
ferry, bike, walk, drive) and shows the next relevant departure for each,
refreshing from a directions provider and a static ferry timetable.`,
	// Running with no subcommand drops into the interactive TUI
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
