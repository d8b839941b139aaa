package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dreedsanders/EggyCommutes-sub000/pkg/alerts"
	"github.com/dreedsanders/EggyCommutes-sub000/pkg/config"
	"github.com/dreedsanders/EggyCommutes-sub000/pkg/directions"
	"github.com/dreedsanders/EggyCommutes-sub000/pkg/engine"
)

var modeIcons = map[engine.Mode]string{
	engine.ModeBus:   "🚌",
	engine.ModeTrain: "🚆",
	engine.ModeFerry: "⛴️",
	engine.ModeBike:  "🚲",
	engine.ModeWalk:  "🚶",
	engine.ModeDrive: "🚗",
}

// FormatClock projects a canonical instant onto the 12-hour display clock.
// This is presentation only; the engine never sees formatted strings.
func FormatClock(t time.Time, zone *time.Location) string {
	return t.In(zone).Format("3:04 PM")
}

// RunBoardTUI renders the commute board once.
func RunBoardTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zone, err := engine.LoadCanonicalZone(cfg.CanonicalZone)
	if err != nil {
		return err
	}

	refresher := engine.NewRefresher(engine.NewProcessor(
		directions.NewFallback(directions.NewClient(config.LoadAPIKey())), zone))

	var results []engine.StopResult
	now := time.Now()

	_ = spinner.New().
		Title("Refreshing commute board...").
		Action(func() {
			results = refresher.Refresh(context.Background(), cfg.Stops, now)
		}).
		Run()

	fmt.Println(RenderBoard(results, fetchBulletinsIfFerry(cfg), now, zone))
	return nil
}

// fetchBulletinsIfFerry grabs operator advisories when the board has a ferry
// stop. Any failure just means no footer; advisories never block the board.
func fetchBulletinsIfFerry(cfg *config.AppConfig) []alerts.Bulletin {
	hasFerry := false
	for _, s := range cfg.Stops {
		if s.Mode == engine.ModeFerry {
			hasFerry = true
			break
		}
	}
	if !hasFerry {
		return nil
	}

	bulletins, err := alerts.NewClient().FetchBulletins()
	if err != nil {
		return nil
	}
	return bulletins
}

// RenderBoard formats one refresh cycle's results for the terminal.
func RenderBoard(results []engine.StopResult, bulletins []alerts.Bulletin, now time.Time, zone *time.Location) string {
	var b strings.Builder

	titler := cases.Title(language.AmericanEnglish)
	header := fmt.Sprintf("--- 🥚 EggyCommutes · %s ---", FormatClock(now, zone))
	b.WriteString(accentStyle.Render(header))
	b.WriteString("\n")

	for _, res := range results {
		icon := modeIcons[res.Mode]
		name := titler.String(res.Name)

		nameStr := lipgloss.NewStyle().Bold(true).Render(name)
		b.WriteString(fmt.Sprintf("\n%s %s\n", icon, nameStr))

		if res.Err != nil {
			b.WriteString("  " + errorStyle.Render("N/A") + dimStyle.Render(" (no data)") + "\n")
			continue
		}

		if res.Mode.IsPointToPoint() {
			if res.DurationMinutes == nil {
				b.WriteString("  " + errorStyle.Render("N/A") + "\n")
			} else {
				b.WriteString(fmt.Sprintf("  %d min\n", *res.DurationMinutes))
			}
			continue
		}

		if res.Next == nil {
			b.WriteString("  " + errorStyle.Render("N/A") + dimStyle.Render(" (no matching departures)") + "\n")
			continue
		}

		timeStr := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render(FormatClock(res.Next.Arrival, zone))
		liveStr := ""
		if res.Next.Live {
			liveStr = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Render(" ●live")
		}
		b.WriteString(fmt.Sprintf("  • %s%s", timeStr, liveStr))
		if res.Next.Headsign != "" {
			b.WriteString(dimStyle.Render(" → " + res.Next.Headsign))
		}
		b.WriteString("\n")

		if res.LastStop != nil && res.NextNearLast {
			lastStr := dimStyle.Render(fmt.Sprintf("  last departure: %s", FormatClock(*res.LastStop, zone)))
			b.WriteString(lastStr + "\n")
		}
	}

	if len(bulletins) > 0 {
		b.WriteString("\n" + accentStyle.Render("--- ⛴️ Ferry Bulletins ---") + "\n")
		for _, bl := range bulletins {
			b.WriteString(fmt.Sprintf("• %s", bl.Title))
			if bl.Posted != "" {
				b.WriteString(dimStyle.Render(" (" + bl.Posted + ")"))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RunFerryTUI prints the full generated ferry schedule for a chosen direction.
func RunFerryTUI() error {
	var direction string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which direction?").
				Options(
					huh.NewOption("Leaving Anacortes", string(engine.DirectionAnacortes)),
					huh.NewOption("Leaving Friday Harbor", string(engine.DirectionFridayHarbor)),
				).
				Value(&direction),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	zone, err := engine.LoadCanonicalZone(cfg.CanonicalZone)
	if err != nil {
		return err
	}

	now := time.Now()
	times, err := engine.GenerateSchedule(engine.FerryDirection(direction), now, zone)
	if err != nil {
		return fmt.Errorf("could not generate ferry schedule: %w", err)
	}

	fmt.Println(accentStyle.Render("\n--- ⛴️ Upcoming Sailings ---"))
	for _, t := range times {
		day := "today"
		if t.In(zone).Day() != now.In(zone).Day() {
			day = "tomorrow"
		}
		fmt.Printf("  • %s %s\n", FormatClock(t, zone), dimStyle.Render(day))
	}
	fmt.Println()

	return nil
}
