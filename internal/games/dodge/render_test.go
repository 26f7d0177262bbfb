package dodge

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

func TestRenderPlayerPlacement(t *testing.T) {
	// 800x480 field on an 80x24 play area: one cell is 10x20 field units
	screen := core.NewScreen(80, 24+hudRows)
	snap := Snapshot{
		Field:    core.Vec2{X: 800, Y: 480},
		Player:   core.NewBox(375, 215, 50, 50),
		Interval: 30,
	}

	RenderSnapshot(screen, snap)

	tests := []struct {
		x, y   int
		player bool
	}{
		{37, 12, true},
		{41, 14, true},
		{36, 12, false},
		{42, 12, false},
		{37, 11, false},
		{37, 15, false},
	}
	for _, tc := range tests {
		cell := screen.GetCell(tc.x, tc.y)
		got := cell.Rune == PlayerChar
		if got != tc.player {
			t.Errorf("cell (%d, %d) = %q, player expected %v", tc.x, tc.y, cell.Rune, tc.player)
		}
		if got && cell.Color != core.ColorBrightBlue {
			t.Errorf("player cell color = %v", cell.Color)
		}
	}
}

func TestRenderClipsToField(t *testing.T) {
	screen := core.NewScreen(80, 26)
	snap := Snapshot{
		Field:     core.Vec2{X: 800, Y: 480},
		Player:    core.NewBox(375, 215, 50, 50),
		Obstacles: []core.Box{core.NewBox(-100, -100, 50, 50), core.NewBox(100, -10, 40, 40)},
	}

	RenderSnapshot(screen, snap)

	for y := 0; y < hudRows; y++ {
		if strings.ContainsRune(screen.Row(y), ObstacleChar) {
			t.Errorf("obstacle drawn over HUD row %d: %q", y, screen.Row(y))
		}
	}
	if !strings.ContainsRune(screen.Row(hudRows), ObstacleChar) {
		t.Error("obstacle entering from the top should show on the first field row")
	}
}

func TestRenderSkipsBoxesOutsideField(t *testing.T) {
	// One cell is 10x20 field units
	screen := core.NewScreen(80, 24+hudRows)
	snap := Snapshot{
		Field:  core.Vec2{X: 800, Y: 480},
		Player: core.NewBox(375, 215, 50, 50),
		Obstacles: []core.Box{
			core.NewBox(-7, 100, 6, 40),   // left of the field
			core.NewBox(200, -19, 40, 18), // above the field
		},
	}

	RenderSnapshot(screen, snap)

	if strings.ContainsRune(screen.String(), ObstacleChar) {
		t.Errorf("boxes outside the field should not be drawn:\n%s", screen.String())
	}
}

func TestRenderGameOver(t *testing.T) {
	s, err := NewSession(config.DefaultDodgeConfig(), scriptedSource())
	if err != nil {
		t.Fatal(err)
	}
	s.score = 42
	s.bonusScore = 200
	s.state = StateGameOver

	screen := core.NewScreen(80, 30)
	RenderSnapshot(screen, s.Snapshot())
	out := screen.String()

	for _, want := range []string{"Final Score: 242", "Press R to restart", "Score: 42"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	screen := core.NewScreen(0, 0)
	RenderSnapshot(screen, Snapshot{Field: core.Vec2{X: 10, Y: 10}})
}

func scriptedSource() *scriptedRand {
	return &scriptedRand{}
}
