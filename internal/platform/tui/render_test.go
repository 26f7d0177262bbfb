package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.SetColor(5, 1, '◆', core.ColorBrightYellow)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "◆"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestMonoThemeIsPlain(t *testing.T) {
	s := core.NewScreen(5, 3)
	s.DrawTextColor(0, 1, "hi", core.ColorBrightBlue)
	s.SetColor(4, 2, '▓', core.ColorRed)

	if got := MonoTheme().Render(s); got != s.String() {
		t.Errorf("mono render = %q, expected %q", got, s.String())
	}
}

func TestThemeFor(t *testing.T) {
	cfg := core.DefaultConfig()
	if len(ThemeFor(cfg)) == 0 {
		t.Error("default config should use the color theme")
	}
	cfg.Mono = true
	if len(ThemeFor(cfg)) != 0 {
		t.Error("mono config should use the plain theme")
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}

	for _, tc := range tests {
		if got := tickInterval(tc.rate); got != tc.expected {
			t.Errorf("tickInterval(%d) = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}
