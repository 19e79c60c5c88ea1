package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// overlay is a UI drawn over the game with its own frame lifecycle.
type overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

// Game implements ebiten.Game on top of a World.
type Game struct {
	world   *World
	overlay overlay

	cursorX, cursorY int
	cursorSeen       bool
}

func NewGame(cfg *Config, materials Materials) *Game {
	return &Game{world: NewWorld(cfg, materials)}
}

func (g *Game) World() *World {
	return g.world
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.pollInput()

	if g.overlay != nil {
		g.overlay.BeginFrame()
		defer g.overlay.EndFrame()
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	g.world.Update.Once(1 / float64(tps))
	return nil
}

func (g *Game) pollInput() {
	input := g.world.Input.Get()

	x, y := ebiten.CursorPosition()
	moved := !g.cursorSeen || x != g.cursorX || y != g.cursorY
	g.cursorX, g.cursorY, g.cursorSeen = x, y, true

	*input = Input{
		CursorX:         float32(x),
		CursorY:         float32(y),
		CursorMoved:     moved,
		LeftJustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		ResetPressed:    inpututil.IsKeyJustPressed(ebiten.KeyR),
		FPS:             ebiten.ActualFPS(),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Screen.Get().Image = screen
	g.world.Render.Once(0)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	*g.world.Window.Get() = Window{Width: outsideWidth, Height: outsideHeight}
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
