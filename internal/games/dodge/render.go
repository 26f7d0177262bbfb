package dodge

import (
	"fmt"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	BonusChar    = '◆'
	BorderChar   = '─'
)

// hudRows is the number of rows above the field used for the scoreboard.
const hudRows = 2

var gameOverSprite = core.NewSprite(`
 ███   ███  █   █ █████    ███  █   █ █████ ████
█     █   █ ██ ██ █       █   █ █   █ █     █   █
█  ██ █████ █ █ █ ████    █   █ █   █ ████  ████
█   █ █   █ █   █ █       █   █  █ █  █     █  █
 ███  █   █ █   █ █████    ███    █   █████ █   █
`, core.ColorBrightRed)

// viewport maps field units onto the screen area below the HUD.
type viewport struct {
	area   core.Rect
	sx, sy float64
}

func newViewport(dst *core.Screen, field core.Vec2) viewport {
	area := core.NewRect(0, hudRows, dst.Width(), core.Max(dst.Height()-hudRows, 1))
	return viewport{
		area: area,
		sx:   field.X / float64(area.W),
		sy:   field.Y / float64(area.H),
	}
}

// fill draws a field-space box, clipped to the play area.
func (v viewport) fill(dst *core.Screen, b core.Box, r rune, c core.Color) {
	cells := b.Scale(v.sx, v.sy)
	cells.X += v.area.X
	cells.Y += v.area.Y

	if !cells.Intersects(v.area) {
		return
	}
	x0 := core.Clamp(cells.X, v.area.X, v.area.Right())
	y0 := core.Clamp(cells.Y, v.area.Y, v.area.Bottom())
	x1 := core.Clamp(cells.Right(), v.area.X, v.area.Right())
	y1 := core.Clamp(cells.Bottom(), v.area.Y, v.area.Bottom())
	dst.DrawRectColor(core.NewRect(x0, y0, x1-x0, y1-y0), r, c)
}

// RenderSnapshot draws one frame: scoreboard, field, entities and, after a
// collision, the game-over banner with the final score.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	hud := fmt.Sprintf(" Score: %d   Bonus: %d (×%d) ", snap.Score, snap.BonusScore, snap.BonusCount)
	dst.DrawTextColor(1, 0, hud, core.ColorBrightWhite)
	pace := fmt.Sprintf(" Spawn: %d ", snap.Interval)
	dst.DrawTextColor(dst.Width()-len(pace)-1, 0, pace, core.ColorGray)
	dst.DrawHLine(0, hudRows-1, dst.Width(), BorderChar)

	v := newViewport(dst, snap.Field)
	for _, b := range snap.Bonuses {
		v.fill(dst, b, BonusChar, core.ColorBrightYellow)
	}
	for _, o := range snap.Obstacles {
		v.fill(dst, o, ObstacleChar, core.ColorRed)
	}
	v.fill(dst, snap.Player, PlayerChar, core.ColorBrightBlue)

	if snap.Over {
		drawGameOver(dst, v.area, snap)
	}
}

// drawGameOver stretches the banner over the middle of the play area.
func drawGameOver(dst *core.Screen, area core.Rect, snap Snapshot) {
	w := core.Max(area.W*3/4, 1)
	h := core.Max(area.H/3, 1)
	banner := core.NewRect(area.X+(area.W-w)/2, area.Y+(area.H-h)/2-1, w, h)
	dst.DrawSprite(gameOverSprite, banner)

	lines := []string{
		fmt.Sprintf("Final Score: %d", snap.FinalScore),
		fmt.Sprintf("Survival %d  +  Bonus %d", snap.Score, snap.BonusScore),
		"Press R to restart",
	}
	y := banner.Bottom() + 1
	for i, line := range lines {
		x := area.X + (area.W-len([]rune(line)))/2
		dst.DrawTextColor(x, y+i, line, core.ColorBrightWhite)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
