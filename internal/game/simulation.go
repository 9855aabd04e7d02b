package game

import "fmt"

// Simulation owns all state of one run. Every step mutates it in a fixed
// order from a single goroutine.
type Simulation struct {
	cfg   Config
	rng   Rand
	clock Clock
	rec   EventRecorder

	// Legacy is the lone hunter: fixed speed, cell-sized kill radius. It
	// moves and hunts separately from the Survivors population.
	Legacy    Vec
	Survivors *Population[Survivor]
	Zombies   *Population[Vec]
	Links     *Population[Vec]

	Escalation Escalation
	FrameRate  int

	phase   Phase
	endedAt int64
	frame   int
	now     int64
	stats   RunStats
}

// NewSimulation seeds the starting populations from rng. rec may be nil.
func NewSimulation(cfg Config, rng Rand, clock Clock, rec EventRecorder) *Simulation {
	s := &Simulation{
		cfg:        cfg,
		rng:        rng,
		clock:      clock,
		rec:        rec,
		Survivors:  NewPopulation[Survivor](),
		Zombies:    NewPopulation[Vec](),
		Links:      NewPopulation[Vec](),
		Escalation: newEscalation(cfg),
		FrameRate:  cfg.InitialFrameRate,
	}
	for i := 0; i < cfg.InitialZombies; i++ {
		s.Zombies.Add(RandomPoint(rng, cfg.Width, cfg.Height))
	}
	for i := 0; i < cfg.InitialLinks; i++ {
		s.Links.Add(RandomPoint(rng, cfg.Width, cfg.Height))
	}
	first := RandomPoint(rng, cfg.Width, cfg.Height)
	s.Survivors.Add(s.newSurvivor(first))
	s.Legacy = first
	s.stats.observe(s.Zombies.Len(), s.Links.Len())
	s.stats.FinalFrameRate = s.FrameRate
	return s
}

func (s *Simulation) newSurvivor(p Vec) Survivor {
	return Survivor{Pos: p, Speed: s.cfg.SurvivorSpeed, Size: s.cfg.SurvivorStartSize}
}

// Config returns the tuning the run was built with.
func (s *Simulation) Config() Config { return s.cfg }

// Phase returns the current run state.
func (s *Simulation) Phase() Phase { return s.phase }

// Ended reports whether the zombies have been wiped out.
func (s *Simulation) Ended() bool { return s.phase == PhaseEnded }

// EndedAt returns the clock reading at which the run ended.
func (s *Simulation) EndedAt() int64 { return s.endedAt }

// Frame returns the number of steps taken.
func (s *Simulation) Frame() int { return s.frame }

// Now returns the clock reading of the latest step.
func (s *Simulation) Now() int64 { return s.now }

// Stats returns a copy of the run tallies.
func (s *Simulation) Stats() RunStats { return s.stats }

// FramePeriodMs is the whole-millisecond frame duration at the current
// rate, never less than 1.
func (s *Simulation) FramePeriodMs() int64 {
	if s.FrameRate >= 1000 {
		return 1
	}
	return int64(1000 / s.FrameRate)
}

// Step advances one frame. Order: timers, survivor moves, survivor hunt,
// win check, lone hunter move, zombie moves, link moves, lone hunter hunt,
// link/zombie skirmish, link births, zombie births. Once ended, Step does
// nothing. It returns the phase after the frame.
func (s *Simulation) Step() Phase {
	if s.phase == PhaseEnded {
		return s.phase
	}
	now := s.clock.ElapsedMs()
	s.now = now
	s.frame++
	s.stats.Frames = s.frame
	s.stats.ElapsedMs = now

	s.escalate(now)
	s.stats.FinalFrameRate = s.FrameRate

	cfg := s.cfg
	wanderSurvivors(s.Survivors, cfg.CellSize, cfg.Width, cfg.Height, s.rng)
	if n := huntWithSurvivors(s.Survivors, s.Zombies); n > 0 {
		s.stats.KilledBySurvivors += n
		s.record("combat", "zombie_killed", fmt.Sprintf("%d by survivors", n), float64(n))
	}

	if s.checkWin(now) {
		return s.phase
	}

	s.Legacy = Wander(s.Legacy, cfg.LegacySpeed, cfg.CellSize, cfg.Width, cfg.Height, s.rng)
	wanderAll(s.Zombies, cfg.ZombieSpeed, cfg.CellSize, cfg.Width, cfg.Height, s.rng)
	wanderAll(s.Links, cfg.LinkSpeed, cfg.CellSize, cfg.Width, cfg.Height, s.rng)

	if n := HuntZombies(s.Zombies, s.Legacy, cfg.CellSize); n > 0 {
		s.stats.KilledByLegacy += n
		s.record("combat", "zombie_killed", fmt.Sprintf("%d by lone hunter", n), float64(n))
	}

	linksLost, zombiesLost := Skirmish(s.Links, s.Zombies, cfg.CellSize, cfg.LinkDeathProb, s.rng)
	if zombiesLost > 0 {
		s.stats.KilledByLinks += zombiesLost
		s.record("combat", "zombie_killed", fmt.Sprintf("%d by links", zombiesLost), float64(zombiesLost))
	}
	if linksLost > 0 {
		s.stats.LinksLost += linksLost
		s.record("combat", "link_killed", fmt.Sprintf("%d by zombies", linksLost), float64(linksLost))
	}

	if n := Reproduce(s.Links, cfg.MaxLinks, cfg.CellSize, cfg.Width, cfg.Height, cfg.ReproductionProb, s.rng); n > 0 {
		s.stats.LinkBirths += n
		s.record("birth", "link", fmt.Sprintf("+%d -> %d", n, s.Links.Len()), float64(n))
	}
	if n := Reproduce(s.Zombies, cfg.MaxZombies, cfg.CellSize, cfg.Width, cfg.Height, cfg.ReproductionProb, s.rng); n > 0 {
		s.stats.ZombieBirths += n
		s.record("birth", "zombie", fmt.Sprintf("+%d -> %d", n, s.Zombies.Len()), float64(n))
	}

	s.stats.observe(s.Zombies.Len(), s.Links.Len())
	return s.phase
}

func (s *Simulation) record(category, key, value string, num float64) {
	if s.rec == nil {
		return
	}
	s.rec.Record(Event{
		Frame:     s.frame,
		ElapsedMs: s.now,
		Category:  category,
		Key:       key,
		Value:     value,
		NumVal:    num,
	})
}
