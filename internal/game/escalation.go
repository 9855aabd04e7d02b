package game

import "fmt"

// Timer fires when at least Period ms have passed since its last trigger.
// Every timer starts with Last = 0, the start of the run.
type Timer struct {
	Period int64
	Last   int64
}

// Due reports whether the timer is ready at now.
func (t *Timer) Due(now int64) bool {
	return now-t.Last >= t.Period
}

// Fire records a trigger at now.
func (t *Timer) Fire(now int64) {
	t.Last = now
}

// Escalation holds the four independent difficulty timers.
type Escalation struct {
	Growth        Timer // survivors grow
	Rate          Timer // frame rate rises
	LinkSpawn     Timer // one link joins, while under cap
	SurvivorSpawn Timer // one survivor joins, no cap
}

func newEscalation(cfg Config) Escalation {
	return Escalation{
		Growth:        Timer{Period: cfg.GrowthPeriodMs},
		Rate:          Timer{Period: cfg.RatePeriodMs},
		LinkSpawn:     Timer{Period: cfg.LinkSpawnPeriodMs},
		SurvivorSpawn: Timer{Period: cfg.SurvivorSpawnPeriodMs},
	}
}

// escalate checks the timers in fixed order: growth, rate, link spawn,
// survivor spawn. Each resets only itself.
func (s *Simulation) escalate(now int64) {
	esc := &s.Escalation

	if esc.Growth.Due(now) {
		s.Survivors.Each(func(_ int, sv *Survivor) {
			sv.Size += s.cfg.SurvivorGrowth
		})
		esc.Growth.Fire(now)
		s.record("escalate", "growth", fmt.Sprintf("%d survivors +%.0f", s.Survivors.Len(), s.cfg.SurvivorGrowth), s.cfg.SurvivorGrowth)
	}

	if esc.Rate.Due(now) {
		s.FrameRate = max(s.FrameRate+s.cfg.FrameRateStep, 1)
		esc.Rate.Fire(now)
		s.record("escalate", "rate", fmt.Sprintf("%d fps", s.FrameRate), float64(s.FrameRate))
	}

	// A blocked link spawn leaves its timer untouched, so it fires as soon
	// as a slot frees up.
	if esc.LinkSpawn.Due(now) && s.Links.Len() < s.cfg.MaxLinks {
		p := RandomPoint(s.rng, s.cfg.Width, s.cfg.Height)
		s.Links.Add(p)
		esc.LinkSpawn.Fire(now)
		s.stats.LinkSpawns++
		s.record("spawn", "link", fmt.Sprintf("at (%.0f,%.0f)", p.X, p.Y), float64(s.Links.Len()))
	}

	if esc.SurvivorSpawn.Due(now) {
		p := RandomPoint(s.rng, s.cfg.Width, s.cfg.Height)
		s.Survivors.Add(s.newSurvivor(p))
		// The lone hunter is relocated onto each new recruit.
		s.Legacy = p
		esc.SurvivorSpawn.Fire(now)
		s.stats.SurvivorSpawns++
		s.record("spawn", "survivor", fmt.Sprintf("at (%.0f,%.0f)", p.X, p.Y), float64(s.Survivors.Len()))
	}
}
