package dodge

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

func testConfig() config.DodgeConfig {
	cfg := config.DefaultDodgeConfig()
	cfg.Field.Width = 500
	cfg.Field.Height = 500
	return cfg
}

func newTestSession(t *testing.T, seed int64) *Session {
	t.Helper()
	s, err := NewSession(testConfig(), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

// quiet skips past frame 0 so a tick spawns nothing.
func quiet(s *Session) {
	s.frameCount = 1
}

func TestNewSessionCentersPlayer(t *testing.T) {
	s := newTestSession(t, 1)

	p := s.Player()
	if p.Pos != (core.Vec2{X: 225, Y: 225}) {
		t.Errorf("player at %+v, expected (225, 225)", p.Pos)
	}
	if s.Over() || s.State() != StatePlaying {
		t.Error("new session should be playing")
	}
	if s.SpawnInterval() != 30 {
		t.Errorf("interval = %d, expected 30", s.SpawnInterval())
	}
}

func TestNewSessionErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.DodgeConfig)
	}{
		{"zero width", func(c *config.DodgeConfig) { c.Field.Width = 0 }},
		{"NaN width", func(c *config.DodgeConfig) { c.Field.Width = math.NaN() }},
		{"infinite height", func(c *config.DodgeConfig) { c.Field.Height = math.Inf(1) }},
		{"NaN speed", func(c *config.DodgeConfig) { c.Player.Speed = math.NaN() }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg)
			if _, err := NewSession(cfg, rand.New(rand.NewSource(1))); !errors.Is(err, config.ErrInvalid) {
				t.Errorf("NewSession() error = %v, expected ErrInvalid", err)
			}
		})
	}

	if _, err := NewSession(testConfig(), nil); err == nil {
		t.Error("nil random source should be rejected")
	}
}

func TestFirstTick(t *testing.T) {
	s := newTestSession(t, 1)

	out := s.Tick()

	if s.Score() != 1 || s.FrameCount() != 1 {
		t.Errorf("score = %d, frame = %d, expected 1 and 1", s.Score(), s.FrameCount())
	}
	if !out.SpawnedObstacle || !out.SpawnedBonus {
		t.Errorf("frame 0 should spawn an obstacle and a bonus, got %+v", out)
	}
	if len(s.obstacles) != 1 {
		t.Errorf("obstacles = %d, expected 1", len(s.obstacles))
	}
	// The bonus may land on the player and be collected right away
	if s.BonusCount()+len(s.bonuses) != 1 {
		t.Errorf("bonus count %d + bonuses on field %d, expected 1", s.BonusCount(), len(s.bonuses))
	}
	if s.Over() {
		t.Error("obstacles start outside the field and cannot reach the player on the first tick")
	}
	if !out.Ramped || s.SpawnInterval() != 20 {
		t.Errorf("frame 0 ramps the interval to 20, got %d", s.SpawnInterval())
	}
}

func TestTickNoOpWhenOver(t *testing.T) {
	s := newTestSession(t, 2)
	for i := 0; i < 50; i++ {
		s.Tick()
	}
	s.state = StateGameOver

	before := s.Snapshot()
	out := s.Tick()
	after := s.Snapshot()

	if out != (StepOutcome{}) {
		t.Errorf("Tick() after game over = %+v, expected zero outcome", out)
	}
	if !reflect.DeepEqual(before, after) {
		t.Error("Tick() after game over changed the session")
	}
}

func TestPlayerClamping(t *testing.T) {
	tests := []struct {
		name     string
		start    core.Vec2
		dirs     []Direction
		expected core.Vec2
	}{
		{"corner stays put", core.Vec2{X: 0, Y: 0}, []Direction{DirLeft, DirUp}, core.Vec2{X: 0, Y: 0}},
		{"snaps to left edge", core.Vec2{X: 3, Y: 100}, []Direction{DirLeft}, core.Vec2{X: 0, Y: 100}},
		{"snaps to top edge", core.Vec2{X: 100, Y: 2}, []Direction{DirUp}, core.Vec2{X: 100, Y: 0}},
		{"snaps to right edge", core.Vec2{X: 448, Y: 100}, []Direction{DirRight}, core.Vec2{X: 450, Y: 100}},
		{"snaps to bottom edge", core.Vec2{X: 100, Y: 446}, []Direction{DirDown}, core.Vec2{X: 100, Y: 450}},
		{"full step inside", core.Vec2{X: 100, Y: 100}, []Direction{DirRight, DirDown}, core.Vec2{X: 105, Y: 105}},
		{"opposite moves cancel", core.Vec2{X: 100, Y: 100}, []Direction{DirLeft, DirRight}, core.Vec2{X: 100, Y: 100}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, 1)
			quiet(s)
			s.player.Pos = tc.start
			for _, d := range tc.dirs {
				s.SetDirection(d, true)
			}

			s.Tick()

			if s.player.Pos != tc.expected {
				t.Errorf("player at %+v, expected %+v", s.player.Pos, tc.expected)
			}
		})
	}
}

func TestPlayerStaysInField(t *testing.T) {
	s := newTestSession(t, 1)
	walk := rand.New(rand.NewSource(99))
	maxX := s.field.X - s.player.Size.X
	maxY := s.field.Y - s.player.Size.Y

	for i := 0; i < 10000; i++ {
		s.movePlayer(Directions[walk.Intn(len(Directions))])
		p := s.player.Pos
		if p.X < 0 || p.X > maxX || p.Y < 0 || p.Y > maxY {
			t.Fatalf("step %d: player left the field at %+v", i, p)
		}
	}
}

func TestSetDirectionIgnoresUnknown(t *testing.T) {
	s := newTestSession(t, 1)
	s.SetDirection(Direction(-1), true)
	s.SetDirection(Direction(len(Directions)), true)

	if s.held != [len(Directions)]bool{} {
		t.Errorf("unknown directions should be ignored, held = %v", s.held)
	}
}

func TestDirectionReleased(t *testing.T) {
	s := newTestSession(t, 1)
	quiet(s)

	s.SetDirection(DirRight, true)
	s.Tick()
	s.SetDirection(DirRight, false)
	s.Tick()

	if s.player.Pos.X != 230 {
		t.Errorf("player x = %g, expected a single step to 230", s.player.Pos.X)
	}
}

func TestBonusCollected(t *testing.T) {
	tests := []struct {
		name    string
		bonuses int
	}{
		{"single", 1},
		{"two in one tick", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, 1)
			quiet(s)
			for i := 0; i < tc.bonuses; i++ {
				s.bonuses = append(s.bonuses, BonusPoint{Entity: Entity{
					Pos:  s.player.Pos.Add(core.Vec2{X: float64(i * 10), Y: 5}),
					Size: core.Vec2{X: 20, Y: 20},
				}})
			}

			out := s.Tick()

			if out.Collected != tc.bonuses {
				t.Errorf("collected = %d, expected %d", out.Collected, tc.bonuses)
			}
			if s.BonusScore() != 100*tc.bonuses || s.BonusCount() != tc.bonuses {
				t.Errorf("bonus score = %d count = %d, expected %d and %d",
					s.BonusScore(), s.BonusCount(), 100*tc.bonuses, tc.bonuses)
			}
			if len(s.bonuses) != 0 {
				t.Errorf("collected bonuses should leave the field, %d remain", len(s.bonuses))
			}
			if s.FinalScore() != s.Score()+s.BonusScore() {
				t.Errorf("final score = %d, expected score + bonus", s.FinalScore())
			}
		})
	}
}

func TestBonusNotTouched(t *testing.T) {
	s := newTestSession(t, 1)
	quiet(s)
	far := BonusPoint{Entity: Entity{Pos: core.Vec2{X: 10, Y: 10}, Size: core.Vec2{X: 20, Y: 20}}}
	s.bonuses = append(s.bonuses, far)

	s.Tick()

	if len(s.bonuses) != 1 || s.BonusCount() != 0 {
		t.Errorf("untouched bonus should stay, bonuses = %d count = %d", len(s.bonuses), s.BonusCount())
	}
}

func TestObstacleCollisionEndsGame(t *testing.T) {
	s := newTestSession(t, 1)
	quiet(s)
	s.obstacles = append(s.obstacles, Obstacle{
		Entity: Entity{Pos: s.player.Pos.Add(core.Vec2{X: 10, Y: 10}), Size: core.Vec2{X: 20, Y: 20}},
	})
	s.bonuses = append(s.bonuses, BonusPoint{Entity: Entity{Pos: s.player.Pos, Size: core.Vec2{X: 20, Y: 20}}})

	out := s.Tick()

	if !out.GameOver || !s.Over() || s.State() != StateGameOver {
		t.Fatalf("collision should end the game, outcome %+v", out)
	}
	// The hit frame still scores and still collects
	if s.Score() != 1 || s.BonusScore() != 100 || s.FinalScore() != 101 {
		t.Errorf("score = %d bonus = %d final = %d, expected 1, 100, 101",
			s.Score(), s.BonusScore(), s.FinalScore())
	}

	snap := s.Snapshot()
	if !snap.Over || snap.FinalScore != 101 {
		t.Errorf("snapshot over = %v final = %d", snap.Over, snap.FinalScore)
	}

	s.Tick()
	if s.Score() != 1 || s.FrameCount() != 2 {
		t.Errorf("ticks after game over should do nothing, score = %d frame = %d", s.Score(), s.FrameCount())
	}
}

func TestEdgeTouchIsNotCollision(t *testing.T) {
	s := newTestSession(t, 1)
	quiet(s)
	// Shares the player's left edge exactly
	s.obstacles = append(s.obstacles, Obstacle{
		Entity: Entity{Pos: core.Vec2{X: s.player.Pos.X - 20, Y: s.player.Pos.Y}, Size: core.Vec2{X: 20, Y: 20}},
	})

	s.Tick()

	if s.Over() {
		t.Error("touching edges should not count as a collision")
	}
}

func TestExpiredObstaclesPruned(t *testing.T) {
	s := newTestSession(t, 1)
	quiet(s)
	a := Obstacle{Entity: Entity{Pos: core.Vec2{X: 10, Y: 10}, Size: core.Vec2{X: 20, Y: 20}}}
	gone := Obstacle{Entity: Entity{Pos: core.Vec2{X: -1000, Y: 10}, Size: core.Vec2{X: 20, Y: 20}}}
	c := Obstacle{Entity: Entity{Pos: core.Vec2{X: 400, Y: 400}, Size: core.Vec2{X: 20, Y: 20}}, Vel: core.Vec2{X: 1, Y: -1}}
	s.obstacles = append(s.obstacles, a, gone, c)

	out := s.Tick()

	if out.Expired != 1 {
		t.Errorf("expired = %d, expected 1", out.Expired)
	}
	if len(s.obstacles) != 2 {
		t.Fatalf("obstacles = %d, expected 2", len(s.obstacles))
	}
	if s.obstacles[0].Pos != a.Pos || s.obstacles[1].Pos != (core.Vec2{X: 401, Y: 399}) {
		t.Errorf("survivors out of order or not moved: %+v", s.obstacles)
	}
}

func TestReset(t *testing.T) {
	s := newTestSession(t, 5)
	s.SetDirection(DirLeft, true)
	for i := 0; i < 700 && !s.Over(); i++ {
		s.Tick()
	}

	s.Reset()

	if s.Score() != 0 || s.BonusScore() != 0 || s.BonusCount() != 0 || s.FrameCount() != 0 {
		t.Errorf("counters not reset: score %d bonus %d count %d frame %d",
			s.Score(), s.BonusScore(), s.BonusCount(), s.FrameCount())
	}
	if len(s.obstacles) != 0 || len(s.bonuses) != 0 {
		t.Errorf("field not cleared: %d obstacles, %d bonuses", len(s.obstacles), len(s.bonuses))
	}
	if s.SpawnInterval() != 30 {
		t.Errorf("interval = %d, expected 30", s.SpawnInterval())
	}
	if s.Over() {
		t.Error("reset session should be playing")
	}
	if s.player.Pos != (core.Vec2{X: 225, Y: 225}) {
		t.Errorf("player at %+v, expected centre", s.player.Pos)
	}
	if s.held != [len(Directions)]bool{} {
		t.Error("held directions should be released")
	}
}

func TestDeterminism(t *testing.T) {
	a := newTestSession(t, 42)
	b := newTestSession(t, 42)

	for i := 0; i < 2000; i++ {
		d := Directions[(i/37)%len(Directions)]
		a.SetDirection(d, i%3 != 0)
		b.SetDirection(d, i%3 != 0)

		outA := a.Tick()
		outB := b.Tick()

		if outA != outB {
			t.Fatalf("tick %d: outcomes differ: %+v vs %+v", i, outA, outB)
		}
		if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
			t.Fatalf("tick %d: snapshots differ", i)
		}
		if a.Over() {
			break
		}
	}
}

func TestSurvivalScoreCountsTicks(t *testing.T) {
	s := newTestSession(t, 8)
	ticks := 0
	for ticks < 300 && !s.Over() {
		s.Tick()
		ticks++
	}
	if s.Score() != ticks || s.FrameCount() != ticks {
		t.Errorf("after %d ticks: score = %d frame = %d", ticks, s.Score(), s.FrameCount())
	}
}

func TestStateString(t *testing.T) {
	if StatePlaying.String() != "playing" || StateGameOver.String() != "game over" {
		t.Errorf("unexpected state names %q, %q", StatePlaying, StateGameOver)
	}
}
