package game

import (
	"strings"
	"testing"
)

func TestRunStats_ZombiesKilledSumsKillers(t *testing.T) {
	r := RunStats{KilledBySurvivors: 3, KilledByLegacy: 2, KilledByLinks: 4}
	if r.ZombiesKilled() != 9 {
		t.Fatalf("expected 9, got %d", r.ZombiesKilled())
	}
}

func TestRunStats_ObserveTracksPeaks(t *testing.T) {
	var r RunStats
	r.observe(10, 5)
	r.observe(8, 12)
	if r.PeakZombies != 10 || r.PeakLinks != 12 {
		t.Fatalf("expected peaks 10/12, got %d/%d", r.PeakZombies, r.PeakLinks)
	}
}

func TestRunStats_SummaryMentionsOutcome(t *testing.T) {
	r := RunStats{Ended: true, EndedAtMs: 12500, KilledByLinks: 7}
	s := r.Summary()
	if !strings.Contains(s, "cleared at 12.5s") {
		t.Fatalf("summary missing outcome:\n%s", s)
	}
	if !strings.Contains(s, "links=7") {
		t.Fatalf("summary missing link kills:\n%s", s)
	}
	if !strings.Contains(RunStats{}.Summary(), "running") {
		t.Fatal("unfinished run should read as running")
	}
}

func TestSimulation_StatsTrackPeaksAcrossRun(t *testing.T) {
	ts := NewTestSim(WithSeed(9))
	ts.RunFrames(100)
	st := ts.Sim.Stats()
	if st.PeakZombies < 50 || st.PeakLinks < 40 {
		t.Fatalf("peaks should include the starting populations, got %d/%d", st.PeakZombies, st.PeakLinks)
	}
	if st.Frames != ts.Sim.Frame() {
		t.Fatalf("frame tally %d != %d", st.Frames, ts.Sim.Frame())
	}
}
