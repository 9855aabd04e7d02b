package game

import "testing"

func TestPopulation_RemoveIfKeepsOrder(t *testing.T) {
	pop := NewPopulation(Vec{X: 1}, Vec{X: 2}, Vec{X: 3}, Vec{X: 4})
	n := pop.RemoveIf(func(v Vec) bool { return int(v.X)%2 == 0 })
	if n != 2 {
		t.Fatalf("expected 2 removed, got %d", n)
	}
	if pop.Len() != 2 || pop.At(0).X != 1 || pop.At(1).X != 3 {
		t.Fatalf("unexpected survivors: %v", pop.Items())
	}
}

func TestPopulation_SnapshotIsIndependent(t *testing.T) {
	pop := NewPopulation(Vec{X: 1}, Vec{X: 2})
	snap := pop.Snapshot()
	pop.RemoveIf(func(Vec) bool { return true })
	pop.Add(Vec{X: 9})
	if len(snap) != 2 || snap[0].X != 1 || snap[1].X != 2 {
		t.Fatalf("snapshot changed with population: %v", snap)
	}
}

func TestPopulation_EachMutatesInPlace(t *testing.T) {
	pop := NewPopulation(Survivor{Size: 40}, Survivor{Size: 70})
	pop.Each(func(_ int, s *Survivor) { s.Size += 30 })
	if pop.At(0).Size != 70 || pop.At(1).Size != 100 {
		t.Fatalf("sizes not updated: %v", pop.Items())
	}
}

func TestPopulation_RemoveMarked(t *testing.T) {
	pop := NewPopulation(Vec{X: 1}, Vec{X: 2}, Vec{X: 3})
	n := pop.removeMarked([]bool{true, false, true})
	if n != 2 || pop.Len() != 1 || pop.At(0).X != 2 {
		t.Fatalf("expected only X=2 left, got %v (removed %d)", pop.Items(), n)
	}
}

func TestPopulation_NewCopiesInput(t *testing.T) {
	src := []Vec{{X: 1}}
	pop := NewPopulation(src...)
	src[0].X = 5
	if pop.At(0).X != 1 {
		t.Fatal("population should not alias the caller's slice")
	}
}
