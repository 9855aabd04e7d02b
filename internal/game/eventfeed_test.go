package game

import "testing"

func TestEventFeed_KeepsChronologicalOrder(t *testing.T) {
	f := NewEventFeed()
	for i := 1; i <= 3; i++ {
		f.Record(Event{Frame: i})
	}
	got := f.Recent()
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	for i, e := range got {
		if e.Frame != i+1 {
			t.Fatalf("entry %d: expected frame %d, got %d", i, i+1, e.Frame)
		}
	}
}

func TestEventFeed_DropsOldestWhenFull(t *testing.T) {
	f := NewEventFeed()
	for i := 0; i < feedMaxEntries+5; i++ {
		f.Record(Event{Frame: i})
	}
	if f.Len() != feedMaxEntries {
		t.Fatalf("expected %d buffered, got %d", feedMaxEntries, f.Len())
	}
	got := f.Recent()
	if got[0].Frame != 5 || got[len(got)-1].Frame != feedMaxEntries+4 {
		t.Fatalf("expected frames 5..%d, got %d..%d", feedMaxEntries+4, got[0].Frame, got[len(got)-1].Frame)
	}
}

func TestEventFeed_ReceivesSimulationEvents(t *testing.T) {
	f := NewEventFeed()
	cfg := DefaultConfig()
	sim := NewSimulation(cfg, NewRand(3), &ManualClock{}, f)
	sim.Step()
	if f.Len() == 0 {
		t.Fatal("expected the first frame to record at least one event")
	}
}
