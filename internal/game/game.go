package game

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// endMessage is shown once every zombie is dead.
const endMessage = "Congratulations!! You killed all the zombies!"

// statusHoldMs is how long a HUD status line stays up.
const statusHoldMs = 2000

// reportFrames is how many trailing frames of events the copied report carries.
const reportFrames = 300

// Game adapts a Simulation to ebiten.Game: one Update is one simulation
// frame, and the frame rate is pushed to Ebiten as its TPS.
type Game struct {
	cfg    Config
	sim    *Simulation
	clock  Clock
	assets *Assets
	music  *Music
	feed   *EventFeed
	log    *SimLog

	tps int

	showHUD  bool
	showFeed bool
	prevKeys map[ebiten.Key]bool

	status      string
	statusUntil int64
}

// New builds a game around a fresh simulation. music may be nil.
func New(cfg Config, assets *Assets, music *Music) *Game {
	for _, msg := range cfg.Inconsistencies() {
		log.Printf("warning: %s", msg)
	}
	clock := NewRealClock()
	feed := NewEventFeed()
	simLog := NewSimLog()
	g := &Game{
		cfg:      cfg,
		clock:    clock,
		assets:   assets,
		music:    music,
		feed:     feed,
		log:      simLog,
		sim:      NewSimulation(cfg, NewTimeRand(), clock, Recorders(feed, simLog)),
		tps:      cfg.InitialFrameRate,
		showHUD:  true,
		prevKeys: make(map[ebiten.Key]bool),
	}
	ebiten.SetTPS(g.tps)
	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return g.shutdown()
	}
	g.handleInput()
	return g.advance()
}

// advance steps the simulation once, or holds the end screen for EndHoldMs
// and then stops the loop.
func (g *Game) advance() error {
	if g.sim.Ended() {
		// Hold the end screen, then quit.
		if g.clock.ElapsedMs()-g.sim.EndedAt() >= g.cfg.EndHoldMs {
			log.Print(g.sim.Stats().Summary())
			return g.shutdown()
		}
		return nil
	}

	g.sim.Step()
	if g.sim.FrameRate != g.tps {
		g.tps = g.sim.FrameRate
		ebiten.SetTPS(g.tps)
	}
	return nil
}

// shutdown releases the audio player and stops the game loop.
func (g *Game) shutdown() error {
	if err := g.music.Close(); err != nil {
		log.Printf("warning: closing music: %v", err)
	}
	return ebiten.Termination
}

// handleInput processes HUD keypresses (edge-triggered).
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	for _, k := range []ebiten.Key{ebiten.KeyH, ebiten.KeyL, ebiten.KeyC} {
		currentKeys[k] = ebiten.IsKeyPressed(k)
	}
	pressed := func(k ebiten.Key) bool {
		return currentKeys[k] && !g.prevKeys[k]
	}

	if pressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if pressed(ebiten.KeyL) {
		g.showFeed = !g.showFeed
	}
	if pressed(ebiten.KeyC) {
		g.copySummary()
	}

	g.prevKeys = currentKeys
}

func (g *Game) copySummary() {
	if err := setClipboardText(g.report()); err != nil {
		log.Printf("warning: copy summary: %v", err)
		g.setStatus("copy failed")
		return
	}
	g.setStatus("summary copied")
}

// report is the run summary followed by the events of the last reportFrames
// frames.
func (g *Game) report() string {
	frame := g.sim.Frame()
	return g.sim.Stats().Summary() + "\nRecent events:\n" +
		g.log.FormatRange(frame-reportFrames, frame)
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusUntil = g.clock.ElapsedMs() + statusHoldMs
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	if g.sim.Ended() {
		g.drawEndMessage(screen)
		return
	}

	size := g.cfg.SpriteSize
	drawSprite(screen, g.assets.Survivor, g.sim.Legacy, size)
	for _, z := range g.sim.Zombies.Items() {
		drawSprite(screen, g.assets.Zombie, z, size)
	}
	for _, l := range g.sim.Links.Items() {
		drawSprite(screen, g.assets.Link, l, size)
	}
	for _, s := range g.sim.Survivors.Items() {
		drawSprite(screen, g.assets.Survivor, s.Pos, s.Size)
	}

	if g.showHUD {
		g.drawHUD(screen)
	}
	if g.showFeed {
		g.feed.Draw(screen, int(g.cfg.Width), int(g.cfg.Height))
	}
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	bg := g.assets.Background
	b := bg.Bounds()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(g.cfg.Width/float64(b.Dx()), g.cfg.Height/float64(b.Dy()))
	screen.DrawImage(bg, opts)
}

// drawSprite draws img scaled to size×size with its top-left corner at p.
func drawSprite(screen, img *ebiten.Image, p Vec, size float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
	opts.GeoM.Translate(p.X, p.Y)
	screen.DrawImage(img, opts)
}

// drawEndMessage centres the victory text on a white box 20px larger than
// the text.
func (g *Game) drawEndMessage(screen *ebiten.Image) {
	face := g.assets.Face
	w, h := text.Measure(endMessage, face, 0)
	cx, cy := g.cfg.Width/2, g.cfg.Height/2

	const inflate = 20
	vector.FillRect(screen,
		float32(cx-w/2-inflate/2), float32(cy-h/2-inflate/2),
		float32(w+inflate), float32(h+inflate),
		color.White, false)

	opts := &text.DrawOptions{}
	opts.GeoM.Translate(cx-w/2, cy-h/2)
	opts.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, endMessage, face, opts)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.cfg.Width), int(g.cfg.Height)
}
