//go:build ebiten

package app

import (
	"context"
	"log"
	"time"

	"golife/internal/render"
	"golife/internal/ui"
	"golife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the status panel next to the board.
const HUDWidth = 260

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	palette render.Palette

	scale int
	seed  int64
	name  string
}

// New constructs a Game for the provided session.
func New(session *Session, cfg *Config) *Game {
	size := session.Game().Size()
	palette := cfg.Palette()
	return &Game{
		session: session,
		painter: render.NewGridPainter(size.W, size.H, palette),
		hud:     ui.NewHUD(session, HUDWidth),
		palette: palette,
		scale:   cfg.Scale,
		seed:    cfg.Seed,
		name:    cfg.Name,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.session.Prompt().Kind != PromptNone {
		g.handlePrompt()
	} else {
		g.handleKeys()
	}
	g.handlePointer()

	if g.hud != nil {
		g.hud.Update(g.viewWidth())
	}
	g.session.Update(time.Now())
	return nil
}

func (g *Game) handlePrompt() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyY), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.session.Answer(true)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.session.Answer(false)
	}
}

func (g *Game) handleKeys() {
	ctx := context.Background()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.session.TogglePlay()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.session.StepOnce()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.session.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.seed++
		g.replace(life.Random(g.session.Game().Size(), g.seed))
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if err := g.session.Save(ctx, g.name); err != nil {
			log.Printf("save: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		if err := g.session.Load(ctx, g.name); err != nil {
			log.Printf("load: %v", err)
			return
		}
		g.resize()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		g.session.AdjustDelay(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		g.session.AdjustDelay(-1)
	}
}

func (g *Game) handlePointer() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	size := g.session.Game().Size()
	row, col, ok := render.CellAt(size, size.W*g.scale, size.H*g.scale, x, y)
	if !ok {
		return
	}
	if err := g.session.Toggle(row, col); err != nil {
		log.Printf("toggle: %v", err)
	}
}

func (g *Game) replace(game *life.Game) {
	if err := g.session.Replace(game); err != nil {
		log.Printf("replace: %v", err)
		return
	}
	g.resize()
}

// resize rebuilds the painter when a loaded game has another board size.
func (g *Game) resize() {
	size := g.session.Game().Size()
	if w, h := g.painter.Size(); w == size.W && h == size.H {
		return
	}
	g.painter = render.NewGridPainter(size.W, size.H, g.palette)
	ebiten.SetWindowSize(size.W*g.scale+HUDWidth, size.H*g.scale)
}

func (g *Game) viewWidth() int {
	return g.session.Game().Width() * g.scale
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Game().Current(), g.scale)
	if g.hud != nil {
		g.hud.Draw(screen, g.viewWidth())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Game().Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
