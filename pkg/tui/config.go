package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/dreedsanders/EggyCommutes-sub000/pkg/config"
	"github.com/dreedsanders/EggyCommutes-sub000/pkg/engine"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Home Address", "home"),
						huh.NewOption("Set Refresh Interval", "interval"),
						huh.NewOption("Manage Commute Stops", "stops"),
						huh.NewOption("Flip Ferry Direction", "ferry"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		if action == "theme" {
			err = runSetThemeTUI(cfg)
		} else if action == "home" {
			err = runSetHomeTUI(cfg)
		} else if action == "interval" {
			err = runSetIntervalTUI(cfg)
		} else if action == "stops" {
			err = runManageStopsTUI(cfg)
		} else if action == "ferry" {
			err = runFlipFerryTUI(cfg)
		} else if action == "view" {
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.eggycommutes.json) ---"))
			if cfg.HomeAddress == "" {
				fmt.Println("Home Address: Not set")
			} else {
				fmt.Printf("Home Address: %s\n", cfg.HomeAddress)
			}

			zone := cfg.CanonicalZone
			if zone == "" {
				zone = engine.CanonicalZoneName
			}
			fmt.Printf("Canonical Zone: %s\n", zone)
			fmt.Printf("Refresh Interval: %d s\n", cfg.RefreshSecondsOrDefault())
			fmt.Printf("Stops: %d\n", len(cfg.Stops))
			for _, s := range cfg.Stops {
				fmt.Printf("  - [%s] %s\n", s.Mode, s.Name)
			}
			fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var selected string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick an accent color").
				Options(
					huh.NewOption("Yolk Orange", "214"),
					huh.NewOption("Lake Blue", "39"),
					huh.NewOption("Ferry Green", "35"),
					huh.NewOption("Sunset Pink", "205"),
					huh.NewOption("Plain (no color)", "7"),
				).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.AccentColor = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Accent color saved.\n"))
	return nil
}

func runSetHomeTUI(cfg *config.AppConfig) error {
	home := cfg.HomeAddress

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Home address (used as origin for every stop that starts at home)").
				Value(&home),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	old := cfg.HomeAddress
	cfg.HomeAddress = home

	// Stops that pointed at the old home address follow it
	for i := range cfg.Stops {
		s := &cfg.Stops[i]
		switch {
		case s.Bus != nil && s.Bus.Origin == old:
			s.Bus.Origin = home
		case s.Train != nil && s.Train.Origin == old:
			s.Train.Origin = home
		case s.Point != nil && s.Point.Origin == old:
			s.Point.Origin = home
		}
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Home address saved as: %s\n", home)))
	return nil
}

func runSetIntervalTUI(cfg *config.AppConfig) error {
	interval := strconv.Itoa(cfg.RefreshSecondsOrDefault())

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Refresh interval in seconds").
				Value(&interval).
				Validate(func(s string) error {
					v, err := strconv.Atoi(s)
					if err != nil || v < 30 {
						return fmt.Errorf("must be a number of at least 30")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	v, _ := strconv.Atoi(interval)
	cfg.RefreshSeconds = v
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Refresh interval set to %d s\n", v)))
	return nil
}

func runFlipFerryTUI(cfg *config.AppConfig) error {
	flipped := 0
	for i := range cfg.Stops {
		s := &cfg.Stops[i]
		if s.Ferry == nil {
			continue
		}
		if s.Ferry.Direction == engine.DirectionAnacortes {
			s.Ferry.Direction = engine.DirectionFridayHarbor
		} else {
			s.Ferry.Direction = engine.DirectionAnacortes
		}
		flipped++
		fmt.Println(accentStyle.Render(fmt.Sprintf("✅ %s now leaving %s", s.Name, s.Ferry.Direction)))
	}

	if flipped == 0 {
		fmt.Println(errorStyle.Render("No ferry stops configured."))
		return nil
	}

	return config.Save(cfg)
}

func runManageStopsTUI(cfg *config.AppConfig) error {
	var action string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Commute Stops").
				Options(
					huh.NewOption("Add a stop", "add"),
					huh.NewOption("Remove a stop", "remove"),
					huh.NewOption("Back", "back"),
				).
				Value(&action),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	switch action {
	case "add":
		return runAddStopTUI(cfg)
	case "remove":
		return runRemoveStopTUI(cfg)
	}
	return nil
}

func runAddStopTUI(cfg *config.AppConfig) error {
	var name, mode string

	modeOptions := make([]huh.Option[string], 0, len(engine.Modes))
	for _, m := range engine.Modes {
		modeOptions = append(modeOptions, huh.NewOption(string(m), string(m)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Stop name").
				Value(&name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Mode").
				Options(modeOptions...).
				Value(&mode),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	stop := engine.StopConfig{
		ID:   uuid.NewString(),
		Name: name,
		Mode: engine.Mode(mode),
	}

	switch stop.Mode {
	case engine.ModeBus:
		bus := &engine.BusConfig{Origin: cfg.HomeAddress}
		if err := runRouteForm("Bus route number (exact match, e.g. 801)", &bus.Origin, &bus.Destination, &bus.Route); err != nil {
			return err
		}
		stop.Bus = bus
	case engine.ModeTrain:
		train := &engine.TrainConfig{Origin: cfg.HomeAddress, LineMatch: "caltrain"}
		if err := runRouteForm("Line match (substring, e.g. caltrain)", &train.Origin, &train.Destination, &train.LineMatch); err != nil {
			return err
		}
		stop.Train = train
	case engine.ModeFerry:
		var direction string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Ferry direction").
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
		stop.Ferry = &engine.FerryConfig{Direction: engine.FerryDirection(direction)}
	default:
		point := &engine.PointConfig{Origin: cfg.HomeAddress}
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Origin").Value(&point.Origin),
				huh.NewInput().Title("Destination").Value(&point.Destination),
			),
		).WithTheme(GetTheme())
		if err := form.Run(); err != nil {
			return err
		}
		stop.Point = point
	}

	if err := stop.Validate(); err != nil {
		return err
	}

	cfg.Stops = append(cfg.Stops, stop)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Added stop: %s\n", name)))
	return nil
}

func runRouteForm(filterTitle string, origin, destination, filter *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Origin").Value(origin),
			huh.NewInput().Title("Destination").Value(destination),
			huh.NewInput().Title(filterTitle).Value(filter),
		),
	).WithTheme(GetTheme())
	return form.Run()
}

func runRemoveStopTUI(cfg *config.AppConfig) error {
	if len(cfg.Stops) == 0 {
		fmt.Println(errorStyle.Render("No stops configured."))
		return nil
	}

	options := make([]huh.Option[string], 0, len(cfg.Stops))
	for _, s := range cfg.Stops {
		options = append(options, huh.NewOption(fmt.Sprintf("[%s] %s", s.Mode, s.Name), s.ID))
	}

	var id string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which stop should be removed?").
				Options(options...).
				Value(&id),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	kept := cfg.Stops[:0]
	for _, s := range cfg.Stops {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	cfg.Stops = kept

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Stop removed.\n"))
	return nil
}
