package engine

import "testing"

func TestStopConfig_ValidateRequiresMatchingBlock(t *testing.T) {
	valid := []StopConfig{
		{Name: "bus", Mode: ModeBus, Bus: &BusConfig{Origin: "a", Destination: "b", Route: "801"}},
		{Name: "train", Mode: ModeTrain, Train: &TrainConfig{Origin: "a", Destination: "b", LineMatch: "caltrain"}},
		{Name: "ferry", Mode: ModeFerry, Ferry: &FerryConfig{Direction: DirectionFridayHarbor}},
		{Name: "bike", Mode: ModeBike, Point: &PointConfig{Origin: "a", Destination: "b"}},
		{Name: "walk", Mode: ModeWalk, Point: &PointConfig{Origin: "a", Destination: "b"}},
		{Name: "drive", Mode: ModeDrive, Point: &PointConfig{Origin: "a", Destination: "b"}},
	}
	for _, s := range valid {
		if err := s.Validate(); err != nil {
			t.Errorf("expected %s stop to validate, got: %v", s.Mode, err)
		}
	}

	invalid := []StopConfig{
		{Name: "no block", Mode: ModeBus},
		{Name: "wrong block", Mode: ModeBus, Train: &TrainConfig{Origin: "a", Destination: "b", LineMatch: "x"}},
		{Name: "two blocks", Mode: ModeBus,
			Bus:   &BusConfig{Origin: "a", Destination: "b", Route: "801"},
			Train: &TrainConfig{Origin: "a", Destination: "b", LineMatch: "x"}},
		{Name: "missing route", Mode: ModeBus, Bus: &BusConfig{Origin: "a", Destination: "b"}},
		{Name: "missing match", Mode: ModeTrain, Train: &TrainConfig{Origin: "a", Destination: "b"}},
		{Name: "bad direction", Mode: ModeFerry, Ferry: &FerryConfig{Direction: "orcas"}},
		{Name: "missing dest", Mode: ModeWalk, Point: &PointConfig{Origin: "a"}},
		{Name: "bad mode", Mode: Mode("teleport"), Point: &PointConfig{Origin: "a", Destination: "b"}},
	}
	for _, s := range invalid {
		if err := s.Validate(); err == nil {
			t.Errorf("expected stop %q to fail validation", s.Name)
		}
	}
}
