package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Field      core.Vec2
	Player     core.Box
	Obstacles  []core.Box
	Bonuses    []core.Box
	Score      int
	BonusScore int
	BonusCount int
	Over       bool
	FinalScore int
	Frame      int
	Interval   int
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Field:      s.field,
		Player:     s.player.Box(),
		Obstacles:  make([]core.Box, len(s.obstacles)),
		Bonuses:    make([]core.Box, len(s.bonuses)),
		Score:      s.score,
		BonusScore: s.bonusScore,
		BonusCount: s.bonusCount,
		Over:       s.Over(),
		Frame:      s.frameCount,
		Interval:   s.spawner.Interval(),
	}
	for i, o := range s.obstacles {
		snap.Obstacles[i] = o.Box()
	}
	for i, b := range s.bonuses {
		snap.Bonuses[i] = b.Box()
	}
	if snap.Over {
		snap.FinalScore = s.FinalScore()
	}
	return snap
}
