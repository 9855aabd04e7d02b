package game

import (
	"fmt"
	"strings"
)

// Event is one recorded simulation event.
type Event struct {
	Frame     int
	ElapsedMs int64
	Category  string  // combat, birth, spawn, escalate, phase
	Key       string  // specific event name within the category
	Value     string  // human-readable detail
	NumVal    float64 // optional numeric value for threshold checks
}

// String formats the event as a fixed-width log line.
//
//	[F=0042 t=  1400ms] combat    zombie_killed    2 by survivors
func (e Event) String() string {
	return fmt.Sprintf("[F=%04d t=%6dms] %-9s %-16s %s",
		e.Frame, e.ElapsedMs, e.Category, e.Key, e.Value)
}

// EventRecorder receives simulation events as they happen.
type EventRecorder interface {
	Record(e Event)
}

// SimLog collects every event of a run. Unlike EventFeed (on-screen ring
// buffer), SimLog is unbounded and machine-readable.
type SimLog struct {
	entries []Event
}

// NewSimLog creates an empty log.
func NewSimLog() *SimLog {
	return &SimLog{}
}

// Record implements EventRecorder.
func (sl *SimLog) Record(e Event) {
	sl.entries = append(sl.entries, e)
}

// Entries returns all recorded events.
func (sl *SimLog) Entries() []Event {
	return sl.entries
}

// Filter returns events matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterFrameRange returns events within [from, to] inclusive.
func (sl *SimLog) FilterFrameRange(from, to int) []Event {
	var out []Event
	for _, e := range sl.entries {
		if e.Frame >= from && e.Frame <= to {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many events match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent event matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (Event, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return Event{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one event matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a frame range.
func (sl *SimLog) FormatRange(from, to int) string {
	var sb strings.Builder
	for _, e := range sl.FilterFrameRange(from, to) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// multiRecorder fans an event out to several recorders.
type multiRecorder []EventRecorder

func (m multiRecorder) Record(e Event) {
	for _, r := range m {
		r.Record(e)
	}
}

// Recorders combines recorders, skipping nils.
func Recorders(rs ...EventRecorder) EventRecorder {
	var out multiRecorder
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}
