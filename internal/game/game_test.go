package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// newEndedGame returns a game whose run cleared on its first frame at t=0.
func newEndedGame(t *testing.T) (*Game, *ManualClock) {
	t.Helper()
	ts := NewTestSim(WithZombies())
	if ts.Step() != PhaseEnded {
		t.Fatal("a run with no zombies should end on its first frame")
	}
	clock := &ManualClock{}
	g := &Game{cfg: ts.Config, sim: ts.Sim, clock: clock, log: ts.SimLog, tps: ts.Sim.FrameRate}
	return g, clock
}

func TestAdvance_HoldsEndScreen(t *testing.T) {
	g, clock := newEndedGame(t)
	clock.Advance(g.cfg.EndHoldMs - 1)
	if err := g.advance(); err != nil {
		t.Fatalf("expected nil before the hold elapses, got %v", err)
	}
}

func TestAdvance_TerminatesAfterHold(t *testing.T) {
	g, clock := newEndedGame(t)
	clock.Advance(g.cfg.EndHoldMs)
	if err := g.advance(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected ebiten.Termination once the hold elapses, got %v", err)
	}
}

func TestReport_CarriesSummaryAndEvents(t *testing.T) {
	g, _ := newEndedGame(t)
	r := g.report()
	if !strings.HasPrefix(r, "Zombie Life run: cleared") {
		t.Fatalf("report should open with the summary, got %q", r)
	}
	if !strings.Contains(r, "phase") {
		t.Fatalf("report should list the phase change event, got %q", r)
	}
}
