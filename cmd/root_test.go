package cmd

import "testing"

func TestRootCommandLaunchesInteractive(t *testing.T) {
	// A bare invocation drops into the TUI rather than printing help
	if rootCmd.RunE == nil {
		t.Fatalf("expected the root command to run the interactive TUI when called with no subcommand")
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	want := map[string]bool{
		"board":       false,
		"ferry":       false,
		"config":      false,
		"export":      false,
		"interactive": false,
	}

	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}
