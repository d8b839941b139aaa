package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dreedsanders/EggyCommutes-sub000/pkg/config"
	"github.com/dreedsanders/EggyCommutes-sub000/pkg/engine"
	"github.com/dreedsanders/EggyCommutes-sub000/pkg/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage eggycommutes configuration",
	Long:  "View or edit your local configuration (home address, display zone, refresh interval, commute stops).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setHome, _ := cmd.Flags().GetString("set-home")
		setZone, _ := cmd.Flags().GetString("set-zone")

		changed := false

		if setHome != "" {
			old := cfg.HomeAddress
			cfg.HomeAddress = setHome
			for i := range cfg.Stops {
				s := &cfg.Stops[i]
				switch {
				case s.Bus != nil && s.Bus.Origin == old:
					s.Bus.Origin = setHome
				case s.Train != nil && s.Train.Origin == old:
					s.Train.Origin = setHome
				case s.Point != nil && s.Point.Origin == old:
					s.Point.Origin = setHome
				}
			}
			fmt.Printf("✅ Home address saved as: %s\n", setHome)
			changed = true
		}

		if setZone != "" {
			if _, err := engine.LoadCanonicalZone(setZone); err != nil {
				return err
			}
			cfg.CanonicalZone = setZone
			fmt.Printf("✅ Display zone set to: %s\n", setZone)
			changed = true
		}

		if changed {
			return config.Save(cfg)
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-home", "s", "", "Set your home address (propagates to stops that start at home)")
	configCmd.Flags().StringP("set-zone", "z", "", "Set the canonical display time zone (IANA name)")
}
