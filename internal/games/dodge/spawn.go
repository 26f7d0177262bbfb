package dodge

import "github.com/vovakirdan/tui-dodge/internal/config"

// SpawnDecision says what to spawn on a given frame.
type SpawnDecision struct {
	Obstacle bool
	Bonus    bool
}

// SpawnScheduler is the frame-counted spawn policy.
// The obstacle interval shrinks by RampStep every RampEvery frames until it
// reaches MinInterval.
type SpawnScheduler struct {
	cfg      config.DodgeSpawn
	interval int
}

// NewSpawnScheduler creates a scheduler at its initial interval.
func NewSpawnScheduler(cfg config.DodgeSpawn) *SpawnScheduler {
	s := &SpawnScheduler{cfg: cfg}
	s.Reset()
	return s
}

// Reset restores the initial obstacle interval.
func (s *SpawnScheduler) Reset() {
	s.interval = s.cfg.InitialInterval
}

// Interval returns the current number of frames between obstacle spawns.
func (s *SpawnScheduler) Interval() int {
	return s.interval
}

// Decide reports what spawns on the given frame. Frame 0 spawns both.
func (s *SpawnScheduler) Decide(frame int) SpawnDecision {
	return SpawnDecision{
		Obstacle: frame%s.interval == 0,
		Bonus:    frame%s.cfg.BonusEvery == 0,
	}
}

// Ramp shortens the obstacle interval when frame lands on a ramp boundary,
// including frame 0.
// Returns true if the interval changed.
func (s *SpawnScheduler) Ramp(frame int) bool {
	if s.cfg.RampEvery <= 0 || s.cfg.RampStep <= 0 || frame%s.cfg.RampEvery != 0 {
		return false
	}
	if s.interval <= s.cfg.MinInterval {
		return false
	}
	s.interval -= s.cfg.RampStep
	if s.interval < s.cfg.MinInterval {
		s.interval = s.cfg.MinInterval
	}
	return true
}
