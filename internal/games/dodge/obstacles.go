package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Edge identifies the side of the field an obstacle enters from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Obstacle is a square hazard moving in a straight line at constant velocity.
type Obstacle struct {
	Entity
	Vel core.Vec2
}

// SpawnObstacle creates an obstacle just outside a random edge of the field,
// moving inward with a random lateral drift.
func SpawnObstacle(field core.Vec2, cfg config.DodgeObstacles, rng Rand) Obstacle {
	size := uniform(rng, cfg.MinSize, cfg.MaxSize)
	edge := Edge(rng.Intn(4))
	inward := uniform(rng, cfg.MinSpeed, cfg.MaxSpeed)

	var pos, vel core.Vec2
	switch edge {
	case EdgeTop:
		pos = core.Vec2{X: rng.Float64() * field.X, Y: -size}
		vel = core.Vec2{X: uniform(rng, -cfg.LateralSpeed, cfg.LateralSpeed), Y: inward}
	case EdgeRight:
		pos = core.Vec2{X: field.X + size, Y: rng.Float64() * field.Y}
		vel = core.Vec2{X: -inward, Y: uniform(rng, -cfg.LateralSpeed, cfg.LateralSpeed)}
	case EdgeBottom:
		pos = core.Vec2{X: rng.Float64() * field.X, Y: field.Y + size}
		vel = core.Vec2{X: uniform(rng, -cfg.LateralSpeed, cfg.LateralSpeed), Y: -inward}
	default:
		pos = core.Vec2{X: -size, Y: rng.Float64() * field.Y}
		vel = core.Vec2{X: inward, Y: uniform(rng, -cfg.LateralSpeed, cfg.LateralSpeed)}
	}

	return Obstacle{
		Entity: Entity{Pos: pos, Size: core.Vec2{X: size, Y: size}},
		Vel:    vel,
	}
}

// Update advances the obstacle by one tick.
func (o *Obstacle) Update() {
	o.Pos = o.Pos.Add(o.Vel)
}

// Expired reports whether the obstacle lies entirely outside the field grown
// by the obstacle's own size on every side.
func (o Obstacle) Expired(field core.Vec2) bool {
	b := o.Box()
	return b.Right() < -b.W ||
		b.X > field.X+b.W ||
		b.Bottom() < -b.H ||
		b.Y > field.Y+b.H
}

// BonusPoint is a stationary collectible worth bonus points.
type BonusPoint struct {
	Entity
}

// SpawnBonus creates a bonus point fully inside the field.
func SpawnBonus(field core.Vec2, size float64, rng Rand) BonusPoint {
	return BonusPoint{
		Entity: Entity{
			Pos: core.Vec2{
				X: rng.Float64() * (field.X - size),
				Y: rng.Float64() * (field.Y - size),
			},
			Size: core.Vec2{X: size, Y: size},
		},
	}
}
