package game

import (
	"strings"
	"testing"
)

func TestSimLog_FilterAndLastOf(t *testing.T) {
	sl := NewSimLog()
	sl.Record(Event{Frame: 1, Category: "combat", Key: "zombie_killed", Value: "1 by survivors"})
	sl.Record(Event{Frame: 2, Category: "birth", Key: "zombie", Value: "+1 -> 41"})
	sl.Record(Event{Frame: 3, Category: "combat", Key: "zombie_killed", Value: "2 by links"})

	if n := sl.CountCategory("combat", ""); n != 2 {
		t.Fatalf("expected 2 combat events, got %d", n)
	}
	last, ok := sl.LastOf("combat", "zombie_killed")
	if !ok || last.Frame != 3 {
		t.Fatalf("expected last kill at frame 3, got %+v", last)
	}
	if _, ok := sl.LastOf("phase", "ended"); ok {
		t.Fatal("no phase event was recorded")
	}
	if got := len(sl.FilterFrameRange(2, 3)); got != 2 {
		t.Fatalf("expected 2 events in frames 2..3, got %d", got)
	}
}

func TestSimLog_FormatLines(t *testing.T) {
	sl := NewSimLog()
	sl.Record(Event{Frame: 42, ElapsedMs: 1400, Category: "combat", Key: "zombie_killed", Value: "2 by survivors"})
	out := sl.Format()
	if !strings.HasPrefix(out, "[F=0042 t=  1400ms] combat") || !strings.HasSuffix(out, "2 by survivors\n") {
		t.Fatalf("unexpected format %q", out)
	}
}

func TestRecorders_FanOut(t *testing.T) {
	a, b := NewSimLog(), NewSimLog()
	rec := Recorders(a, nil, b)
	rec.Record(Event{Category: "spawn", Key: "link"})
	if len(a.Entries()) != 1 || len(b.Entries()) != 1 {
		t.Fatal("both recorders should receive the event")
	}
	if Recorders(a) != EventRecorder(a) {
		t.Fatal("single recorder should be returned unwrapped")
	}
}

func TestEventFeed_RingKeepsNewest(t *testing.T) {
	f := NewEventFeed()
	for i := 0; i < feedMaxEntries+5; i++ {
		f.Record(Event{Frame: i})
	}
	if f.Len() != feedMaxEntries {
		t.Fatalf("expected %d buffered, got %d", feedMaxEntries, f.Len())
	}
	recent := f.Recent()
	if recent[0].Frame != 5 || recent[len(recent)-1].Frame != feedMaxEntries+4 {
		t.Fatalf("expected frames 5..%d, got %d..%d", feedMaxEntries+4, recent[0].Frame, recent[len(recent)-1].Frame)
	}
}

func TestEventFeed_ReceivesEscalationEvents(t *testing.T) {
	feed := NewEventFeed()
	sim := NewSimulation(DefaultConfig(), NewRand(1), &ManualClock{}, feed)
	sim.Links = NewPopulation[Vec]()
	sim.escalate(2000)
	if feed.Len() < 3 {
		t.Fatalf("expected growth, rate and link spawn events, got %d", feed.Len())
	}
}
