package game

// TestSim is a headless simulation harness used by tests and the headless
// report. It has no Ebiten dependency: the clock advances one frame period
// per step and the random source is seeded.
type TestSim struct {
	Config Config
	Clock  *ManualClock
	Sim    *Simulation
	SimLog *SimLog

	rng Rand
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra      simOptionKind = iota // config, seed, rng: applied before the simulation exists
	simOptPopulation                      // populations and positions: applied after
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = NewRand(seed)
	}}
}

// WithRand installs a custom random source, e.g. a stub forcing draws.
func WithRand(r Rand) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = r
	}}
}

// WithScreen sets the playfield dimensions.
func WithScreen(w, h float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Config.Width = w
		ts.Config.Height = h
	}}
}

// WithConfig edits the tuning in place.
func WithConfig(edit func(*Config)) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		edit(&ts.Config)
	}}
}

// WithZombies replaces the starting zombies.
func WithZombies(ps ...Vec) SimOption {
	return SimOption{simOptPopulation, func(ts *TestSim) {
		ts.Sim.Zombies = NewPopulation(ps...)
	}}
}

// WithLinks replaces the starting links.
func WithLinks(ps ...Vec) SimOption {
	return SimOption{simOptPopulation, func(ts *TestSim) {
		ts.Sim.Links = NewPopulation(ps...)
	}}
}

// WithSurvivors replaces the starting survivor population.
func WithSurvivors(ss ...Survivor) SimOption {
	return SimOption{simOptPopulation, func(ts *TestSim) {
		ts.Sim.Survivors = NewPopulation(ss...)
	}}
}

// WithLegacy places the lone hunter.
func WithLegacy(p Vec) SimOption {
	return SimOption{simOptPopulation, func(ts *TestSim) {
		ts.Sim.Legacy = p
	}}
}

// NewTestSim constructs a TestSim from the given options in two passes:
//  1. Infrastructure (config, seed)
//  2. Build the simulation, then populations
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Config: DefaultConfig(),
		Clock:  &ManualClock{},
		SimLog: NewSimLog(),
		rng:    NewRand(1),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.Sim = NewSimulation(ts.Config, ts.rng, ts.Clock, ts.SimLog)
	for _, o := range opts {
		if o.kind == simOptPopulation {
			o.fn(ts)
		}
	}
	return ts
}

// Step runs one frame, then advances the clock by the frame period at the
// rate in force after the frame.
func (ts *TestSim) Step() Phase {
	phase := ts.Sim.Step()
	if phase == PhaseRunning {
		ts.Clock.Advance(ts.Sim.FramePeriodMs())
	}
	return phase
}

// RunFrames advances up to n frames, stopping early once the run ends.
// It returns the number of frames actually run.
func (ts *TestSim) RunFrames(n int) int {
	for i := 0; i < n; i++ {
		if ts.Sim.Ended() {
			return i
		}
		ts.Step()
	}
	return n
}

// RunUntil advances up to maxFrames, stopping early if predicate returns
// true. Returns the frame at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		ts.Step()
		if predicate(ts) {
			return ts.Sim.Frame()
		}
	}
	return -1
}

// RunUntilEnded advances until the zombies are gone or maxFrames pass.
// Returns the ending frame, or -1.
func (ts *TestSim) RunUntilEnded(maxFrames int) int {
	return ts.RunUntil(func(ts *TestSim) bool { return ts.Sim.Ended() }, maxFrames)
}

// Snapshot is a lightweight copy of the population state at a frame.
type Snapshot struct {
	Frame     int
	ElapsedMs int64
	Phase     Phase
	FrameRate int
	Legacy    Vec
	Survivors []Survivor
	Zombies   []Vec
	Links     []Vec
}

// Snapshot returns the current state.
func (ts *TestSim) Snapshot() Snapshot {
	s := ts.Sim
	return Snapshot{
		Frame:     s.Frame(),
		ElapsedMs: s.Now(),
		Phase:     s.Phase(),
		FrameRate: s.FrameRate,
		Legacy:    s.Legacy,
		Survivors: s.Survivors.Snapshot(),
		Zombies:   s.Zombies.Snapshot(),
		Links:     s.Links.Snapshot(),
	}
}
