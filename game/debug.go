//go:build !js

package game

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/loliomg/hitcat/ecs"
	"github.com/loliomg/hitcat/ecs/debugui"
	debugui_ebiten "github.com/loliomg/hitcat/ecs/debugui/ebiten"
)

// EnableDebugUI creates the imgui window and spawns the debug windows. It
// must be called before ebiten.RunGame and replaces setting the window title
// and size.
func (g *Game) EnableDebugUI(title string, width, height int) {
	storage := g.world.Storage
	g.overlay = imguiOverlay{ecs.NewSingleton(storage, debugui_ebiten.NewImguiBackend(title, width, height))}

	g.world.Update.RegisterStage(ecs.StagePreUpdate, &debugui.ImguiSystem{})
	debugui.SpawnDebugUI(storage, g.world.Update, g.scoreDebugLines)
}

func (g *Game) scoreDebugLines() {
	score := g.world.Score.Get()
	imgui.Text(fmt.Sprintf("Hits: %d", score.Hits))
	imgui.Text(fmt.Sprintf("Escapes: %d", score.Escapes))
	imgui.Text(fmt.Sprintf("Seed: %d", g.world.Config.Get().Seed))
}

type imguiOverlay struct {
	backend *ecs.Singleton[debugui_ebiten.ImguiBackend]
}

func (o imguiOverlay) BeginFrame() { o.backend.Get().BeginFrame() }

func (o imguiOverlay) EndFrame() { o.backend.Get().EndFrame() }

func (o imguiOverlay) Draw(screen *ebiten.Image) { o.backend.Get().Draw(screen) }

func (o imguiOverlay) Layout(width, height int) { o.backend.Get().Layout(width, height) }
