package game

// Phase is the run state. ENDED is terminal.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// checkWin moves the run to PhaseEnded the first time the zombie population
// is empty and reports whether it did.
func (s *Simulation) checkWin(now int64) bool {
	if s.phase == PhaseEnded || s.Zombies.Len() > 0 {
		return false
	}
	s.phase = PhaseEnded
	s.endedAt = now
	s.stats.Ended = true
	s.stats.EndedAtMs = now
	s.record("phase", "ended", "all zombies eliminated", float64(now))
	return true
}
