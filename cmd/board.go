package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dreedsanders/EggyCommutes-sub000/pkg/config"
	"github.com/dreedsanders/EggyCommutes-sub000/pkg/directions"
	"github.com/dreedsanders/EggyCommutes-sub000/pkg/engine"
	"github.com/dreedsanders/EggyCommutes-sub000/pkg/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Render the commute board",
	Long: `Fetch every configured stop concurrently and print the next departure for
each. With --watch the board re-renders on the configured refresh interval,
which is how the always-on dashboard runs it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		watch, _ := cmd.Flags().GetBool("watch")

		if !watch {
			return tui.RunBoardTUI()
		}

		return runWatch()
	},
}

// runWatch is the daemon loop behind the always-on display: refresh, render,
// sleep, repeat. Cycle outcomes go to structured logs on stderr so the board
// itself stays clean on stdout.
func runWatch() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zone, err := engine.LoadCanonicalZone(cfg.CanonicalZone)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	refresher := engine.NewRefresher(engine.NewProcessor(
		directions.NewFallback(directions.NewClient(config.LoadAPIKey())), zone))

	interval := time.Duration(cfg.RefreshSecondsOrDefault()) * time.Second

	for {
		// Re-read the config each cycle so edits from another terminal show
		// up without a restart.
		cfg, err = config.Load()
		if err != nil {
			logger.Error("failed to reload config", slog.String("error", err.Error()))
			time.Sleep(interval)
			continue
		}

		now := time.Now()
		start := time.Now()
		results := refresher.Refresh(context.Background(), cfg.Stops, now)

		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
				logger.Warn("stop failed this cycle",
					slog.String("stop", res.Name),
					slog.String("mode", string(res.Mode)),
					slog.String("error", res.Err.Error()))
			}
		}

		logger.Info("refresh cycle complete",
			slog.Int("stops", len(results)),
			slog.Int("failed", failed),
			slog.Duration("duration", time.Since(start)))

		fmt.Print("\033[H\033[2J") // clear screen between renders
		fmt.Println(tui.RenderBoard(results, nil, now, zone))

		time.Sleep(interval)
	}
}

func init() {
	rootCmd.AddCommand(boardCmd)
	boardCmd.Flags().BoolP("watch", "w", false, "Keep refreshing on the configured interval")
}
