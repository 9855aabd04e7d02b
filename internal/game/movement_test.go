package game

import (
	"math"
	"testing"
)

func TestWander_MidDrawDoesNotMove(t *testing.T) {
	p := Vec{X: 300, Y: 300}
	got := Wander(p, 0.6, 60, 800, 800, fixedRand{f: 0.5})
	if got != p {
		t.Fatalf("U draw of 0.5 is a zero step, got %v", got)
	}
}

func TestWander_StepScalesWithSpeedAndCell(t *testing.T) {
	// Float64 = 0.75 -> uniform = -0.2 + 0.4*0.75 = 0.1 -> 0.1*60 = 6px.
	got := Wander(Vec{X: 300, Y: 300}, 0.2, 60, 800, 800, fixedRand{f: 0.75})
	if math.Abs(got.X-306) > 1e-9 || math.Abs(got.Y-306) > 1e-9 {
		t.Fatalf("expected (306,306), got (%.3f,%.3f)", got.X, got.Y)
	}
}

func TestWander_ClampsToFootprint(t *testing.T) {
	got := Wander(Vec{X: 735, Y: 5}, 1, 60, 800, 800, &seqRand{floats: []float64{0.99, 0.0}})
	if got.X != 740 {
		t.Fatalf("x should clamp to width-cell=740, got %.2f", got.X)
	}
	if got.Y != 0 {
		t.Fatalf("y should clamp to 0, got %.2f", got.Y)
	}
}

func TestWander_StaysInBoundsOverManySteps(t *testing.T) {
	rng := NewRand(99)
	p := Vec{X: 400, Y: 400}
	for i := 0; i < 5000; i++ {
		p = Wander(p, 1, 60, 800, 800, rng)
		if p.X < 0 || p.X > 740 || p.Y < 0 || p.Y > 740 {
			t.Fatalf("step %d left bounds: (%.2f,%.2f)", i, p.X, p.Y)
		}
	}
}

func TestWanderSurvivors_UsesPerAgentSpeed(t *testing.T) {
	pop := NewPopulation(
		Survivor{Pos: Vec{X: 100, Y: 100}, Speed: 0, Size: 40},
		Survivor{Pos: Vec{X: 100, Y: 100}, Speed: 1, Size: 40},
	)
	wanderSurvivors(pop, 60, 800, 800, fixedRand{f: 1})
	if pop.At(0).Pos != (Vec{X: 100, Y: 100}) {
		t.Fatalf("zero-speed survivor moved to %v", pop.At(0).Pos)
	}
	if pop.At(1).Pos != (Vec{X: 160, Y: 160}) {
		t.Fatalf("speed-1 survivor should step a full cell, got %v", pop.At(1).Pos)
	}
}
