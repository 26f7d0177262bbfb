package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// Rand is the random source used for spawning. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// uniform returns a value in [min, max).
func uniform(rng Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// Direction is one of the four movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all directions in the order they are applied each tick.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionFor maps a platform action to a direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Entity is the shared shape of everything on the field.
type Entity struct {
	Pos  core.Vec2 // Top-left corner
	Size core.Vec2 // Width and height, always positive
}

// Box returns the entity's bounding box.
func (e Entity) Box() core.Box {
	return core.NewBox(e.Pos.X, e.Pos.Y, e.Size.X, e.Size.Y)
}

// Player is the user-controlled square.
// Moves are unconditional; the Session keeps the player inside the field.
type Player struct {
	Entity
	Speed float64
}

// MoveUp shifts the player up by its speed.
func (p *Player) MoveUp() { p.Pos.Y -= p.Speed }

// MoveDown shifts the player down by its speed.
func (p *Player) MoveDown() { p.Pos.Y += p.Speed }

// MoveLeft shifts the player left by its speed.
func (p *Player) MoveLeft() { p.Pos.X -= p.Speed }

// MoveRight shifts the player right by its speed.
func (p *Player) MoveRight() { p.Pos.X += p.Speed }

// Move shifts the player one step in the given direction.
func (p *Player) Move(d Direction) {
	switch d {
	case DirUp:
		p.MoveUp()
	case DirDown:
		p.MoveDown()
	case DirLeft:
		p.MoveLeft()
	case DirRight:
		p.MoveRight()
	}
}
