package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGetCustomThemeAppliesAccent(t *testing.T) {
	accent := lipgloss.Color("39")
	theme := GetCustomTheme("39")
	if theme == nil {
		t.Fatalf("expected a theme")
	}

	if got := theme.Focused.Title.GetForeground(); got != accent {
		t.Errorf("expected title foreground %v, got %v", accent, got)
	}
	if got := theme.Focused.SelectSelector.GetForeground(); got != accent {
		t.Errorf("expected select selector foreground %v, got %v", accent, got)
	}
	if got := theme.Focused.SelectedOption.GetForeground(); got != accent {
		t.Errorf("expected selected option foreground %v, got %v", accent, got)
	}
	if got := theme.Focused.TextInput.Prompt.GetForeground(); got != accent {
		t.Errorf("expected text input prompt foreground %v, got %v", accent, got)
	}
	if got := theme.Focused.Base.GetBorderTopForeground(); got != accent {
		t.Errorf("expected focused border foreground %v, got %v", accent, got)
	}
}
