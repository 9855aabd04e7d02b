package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedPanelWidth = 300
	feedMaxEntries = 40
	feedLineHeight = 14
	feedVisible    = 12
)

// feedColors tints the category marker of each row.
var feedColors = map[string]color.RGBA{
	"combat":   {R: 210, G: 70, B: 70, A: 255},
	"birth":    {R: 90, G: 190, B: 90, A: 255},
	"spawn":    {R: 70, G: 110, B: 210, A: 255},
	"escalate": {R: 230, G: 190, B: 40, A: 255},
	"phase":    {R: 255, G: 255, B: 255, A: 255},
}

// EventFeed is a ring buffer of recent simulation events rendered on-screen.
type EventFeed struct {
	entries []Event
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]Event, feedMaxEntries),
	}
}

// Record implements EventRecorder.
func (f *EventFeed) Record(e Event) {
	f.entries[f.head] = e
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Len returns how many events are buffered.
func (f *EventFeed) Len() int {
	return f.count
}

// Recent returns buffered events in chronological order (oldest first).
func (f *EventFeed) Recent() []Event {
	result := make([]Event, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Draw renders the newest events in a panel anchored at the bottom-right.
func (f *EventFeed) Draw(screen *ebiten.Image, screenW, screenH int) {
	entries := f.Recent()
	if len(entries) > feedVisible {
		entries = entries[len(entries)-feedVisible:]
	}
	if len(entries) == 0 {
		return
	}

	h := 20 + len(entries)*feedLineHeight
	x := float32(screenW - feedPanelWidth - 4)
	y := float32(screenH - h - 4)

	vector.FillRect(screen, x, y, feedPanelWidth, float32(h), color.RGBA{R: 10, G: 12, B: 10, A: 200}, false)
	vector.StrokeRect(screen, x, y, feedPanelWidth, float32(h), 1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", int(x)+8, int(y)+2)

	row := int(y) + 18
	for _, e := range entries {
		dot, ok := feedColors[e.Category]
		if !ok {
			dot = color.RGBA{R: 160, G: 160, B: 160, A: 255}
		}
		vector.FillRect(screen, x+5, float32(row+4), 3, 6, dot, false)
		line := fmt.Sprintf("%5.1fs %s %s", float64(e.ElapsedMs)/1000, e.Key, e.Value)
		ebitenutil.DebugPrintAt(screen, line, int(x)+12, row)
		row += feedLineHeight
	}
}
