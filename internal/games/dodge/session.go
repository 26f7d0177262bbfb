package dodge

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game over"
	}
	return "playing"
}

// StepOutcome reports what happened during one tick.
type StepOutcome struct {
	SpawnedObstacle bool
	SpawnedBonus    bool
	Expired         int  // Obstacles pruned after leaving the field
	Collected       int  // Bonus points picked up
	Ramped          bool // Spawn interval shortened
	GameOver        bool // The player was hit on this tick
}

// Session owns all simulation state for one play field.
// It is single-threaded: the platform calls Tick once per frame and feeds
// input through SetDirection between ticks.
type Session struct {
	cfg   config.DodgeConfig
	field core.Vec2
	rng   Rand

	player    Player
	obstacles []Obstacle
	bonuses   []BonusPoint
	spawner   *SpawnScheduler
	held      [len(Directions)]bool

	frameCount int
	score      int
	bonusScore int
	bonusCount int
	state      State
}

// NewSession validates cfg and creates a session ready to play.
func NewSession(cfg config.DodgeConfig, rng Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dodge: %w", err)
	}
	if rng == nil {
		return nil, errors.New("dodge: nil random source")
	}

	s := &Session{
		cfg:       cfg,
		field:     core.Vec2{X: cfg.Field.Width, Y: cfg.Field.Height},
		rng:       rng,
		obstacles: make([]Obstacle, 0, 32),
		bonuses:   make([]BonusPoint, 0, 4),
		spawner:   NewSpawnScheduler(cfg.Spawn),
		player: Player{
			Entity: Entity{Size: core.Vec2{X: cfg.Player.Size, Y: cfg.Player.Size}},
			Speed:  cfg.Player.Speed,
		},
	}
	s.Reset()
	return s, nil
}

// Start begins the first round. It is the same as Reset.
func (s *Session) Start() {
	s.Reset()
}

// Reset returns the session to the start of a round: no obstacles or bonus
// points, zeroed counters, initial spawn interval, centred player.
func (s *Session) Reset() {
	s.obstacles = s.obstacles[:0]
	s.bonuses = s.bonuses[:0]
	s.spawner.Reset()
	s.held = [len(Directions)]bool{}
	s.frameCount = 0
	s.score = 0
	s.bonusScore = 0
	s.bonusCount = 0
	s.state = StatePlaying
	s.player.Pos = core.Vec2{
		X: (s.field.X - s.player.Size.X) / 2,
		Y: (s.field.Y - s.player.Size.Y) / 2,
	}
}

// SetDirection records whether a direction is currently held.
func (s *Session) SetDirection(d Direction, pressed bool) {
	if d < 0 || int(d) >= len(s.held) {
		return
	}
	s.held[d] = pressed
}

// Tick advances the simulation by one frame. It does nothing once the game is over.
// A tick on which the player is hit still scores and still collects bonuses.
func (s *Session) Tick() StepOutcome {
	var out StepOutcome
	if s.state == StateGameOver {
		return out
	}

	frame := s.frameCount

	for _, d := range Directions {
		if s.held[d] {
			s.movePlayer(d)
		}
	}

	decision := s.spawner.Decide(frame)
	if decision.Obstacle {
		s.obstacles = append(s.obstacles, SpawnObstacle(s.field, s.cfg.Obstacles, s.rng))
		out.SpawnedObstacle = true
	}
	if decision.Bonus {
		s.bonuses = append(s.bonuses, SpawnBonus(s.field, s.cfg.Bonus.Size, s.rng))
		out.SpawnedBonus = true
	}

	// Move obstacles and drop the ones that left the field
	alive := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Update()
		if o.Expired(s.field) {
			out.Expired++
			continue
		}
		alive = append(alive, o)
	}
	s.obstacles = alive

	playerBox := s.player.Box()
	for _, o := range s.obstacles {
		if playerBox.Intersects(o.Box()) {
			out.GameOver = true
			break
		}
	}

	remaining := s.bonuses[:0]
	for _, b := range s.bonuses {
		if playerBox.Intersects(b.Box()) {
			s.bonusScore += s.cfg.Bonus.Points
			s.bonusCount++
			out.Collected++
			continue
		}
		remaining = append(remaining, b)
	}
	s.bonuses = remaining

	s.score++
	s.frameCount++
	out.Ramped = s.spawner.Ramp(frame)

	if out.GameOver {
		s.state = StateGameOver
	}
	return out
}

// movePlayer moves one step in d, snapping to the field edge when a full
// step would leave the field.
func (s *Session) movePlayer(d Direction) {
	p := &s.player
	p.Move(d)
	p.Pos.X = core.ClampF(p.Pos.X, 0, s.field.X-p.Size.X)
	p.Pos.Y = core.ClampF(p.Pos.Y, 0, s.field.Y-p.Size.Y)
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Over reports whether the game has ended.
func (s *Session) Over() bool { return s.state == StateGameOver }

// Score returns the survival score (one point per tick alive).
func (s *Session) Score() int { return s.score }

// BonusScore returns points earned from bonus pickups.
func (s *Session) BonusScore() int { return s.bonusScore }

// BonusCount returns the number of bonus points collected.
func (s *Session) BonusCount() int { return s.bonusCount }

// FinalScore returns the survival score plus bonus points.
func (s *Session) FinalScore() int { return s.score + s.bonusScore }

// FrameCount returns the number of ticks played this round.
func (s *Session) FrameCount() int { return s.frameCount }

// SpawnInterval returns the current ticks between obstacle spawns.
func (s *Session) SpawnInterval() int { return s.spawner.Interval() }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Field returns the field size.
func (s *Session) Field() core.Vec2 { return s.field }
