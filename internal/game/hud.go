package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// hudLines returns the HUD text for the current state.
func (g *Game) hudLines() []string {
	s := g.sim
	lines := []string{
		fmt.Sprintf("t=%.1fs  rate=%dfps", float64(s.Now())/1000, s.FrameRate),
		fmt.Sprintf("zombies=%d  links=%d  survivors=%d", s.Zombies.Len(), s.Links.Len(), s.Survivors.Len()),
		fmt.Sprintf("killed=%d  links lost=%d", s.Stats().ZombiesKilled(), s.Stats().LinksLost),
		"[H] HUD  [L] events  [C] copy stats",
	}
	if g.status != "" && g.clock.ElapsedMs() < g.statusUntil {
		lines = append(lines, g.status)
	}
	return lines
}

// drawHUD renders population counts and key hints in the top-left corner.
func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := g.hudLines()

	const lineH = 12 // debug font line height
	const charW = 6  // debug font char width
	const padX = 5
	const padY = 4

	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := float32(maxLen*charW + padX*2)
	boxH := float32(len(lines)*lineH + padY*2)
	bx, by := float32(4), float32(4)

	vector.FillRect(screen, bx, by, boxW, boxH,
		color.RGBA{R: 6, G: 10, B: 6, A: 190}, false)
	vector.StrokeRect(screen, bx, by, boxW, boxH,
		1.0, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(bx)+padX, int(by)+padY+i*lineH)
	}
}
