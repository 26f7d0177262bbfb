package core

import "strings"

// SpriteTransparent marks sprite cells that are not drawn.
const SpriteTransparent = ' '

// Sprite is a small rune image drawn onto a Screen, optionally stretched.
type Sprite struct {
	rows  [][]rune
	width int
	Color Color
}

// NewSprite builds a sprite from text art, one line per row.
// Short rows are padded with transparent cells.
func NewSprite(art string, c Color) *Sprite {
	lines := strings.Split(strings.Trim(art, "\n"), "\n")
	sp := &Sprite{rows: make([][]rune, len(lines)), Color: c}
	for i, line := range lines {
		sp.rows[i] = []rune(line)
		sp.width = Max(sp.width, len(sp.rows[i]))
	}
	return sp
}

// Width returns the sprite width in cells.
func (sp *Sprite) Width() int {
	return sp.width
}

// Height returns the sprite height in cells.
func (sp *Sprite) Height() int {
	return len(sp.rows)
}

// At returns the rune at (x, y), or SpriteTransparent outside the art.
func (sp *Sprite) At(x, y int) rune {
	if y < 0 || y >= len(sp.rows) || x < 0 || x >= len(sp.rows[y]) {
		return SpriteTransparent
	}
	return sp.rows[y][x]
}
