package config

import (
	"github.com/google/uuid"

	"github.com/dreedsanders/EggyCommutes-sub000/pkg/engine"
)

// Default returns the reference commute: one stop per mode, seeded with
// stable IDs so CRUD edits and refresh coalescing have something to key on.
func Default() *AppConfig {
	home := "2200 N Lincoln Ave, Chicago, IL"

	return &AppConfig{
		HomeAddress:    home,
		RefreshSeconds: DefaultRefreshSeconds,
		Stops: []engine.StopConfig{
			{
				ID:   uuid.NewString(),
				Name: "801 bus",
				Mode: engine.ModeBus,
				Bus: &engine.BusConfig{
					Origin:      home,
					Destination: "Downtown Transit Center",
					Route:       "801",
				},
			},
			{
				ID:   uuid.NewString(),
				Name: "caltrain",
				Mode: engine.ModeTrain,
				Train: &engine.TrainConfig{
					Origin:      home,
					Destination: "San Francisco, CA",
					LineMatch:   "caltrain",
				},
			},
			{
				ID:   uuid.NewString(),
				Name: "ferry",
				Mode: engine.ModeFerry,
				Ferry: &engine.FerryConfig{
					Direction: engine.DirectionAnacortes,
				},
			},
			{
				ID:   uuid.NewString(),
				Name: "bike to work",
				Mode: engine.ModeBike,
				Point: &engine.PointConfig{
					Origin:      home,
					Destination: "Downtown Transit Center",
				},
			},
			{
				ID:   uuid.NewString(),
				Name: "walk to work",
				Mode: engine.ModeWalk,
				Point: &engine.PointConfig{
					Origin:      home,
					Destination: "Downtown Transit Center",
				},
			},
			{
				ID:   uuid.NewString(),
				Name: "drive to work",
				Mode: engine.ModeDrive,
				Point: &engine.PointConfig{
					Origin:      home,
					Destination: "Downtown Transit Center",
				},
			},
		},
	}
}
