package game

import (
	"math/rand/v2"

	"github.com/loliomg/hitcat/ecs"
)

// Autoplayer fills Input for headless runs. Each step it clicks with
// probability ClickRate; a click lands on a live hole with probability
// Accuracy and on a random pixel otherwise.
type Autoplayer struct {
	Rand      *rand.Rand
	ClickRate float64
	Accuracy  float64

	holes *ecs.View[struct {
		*Position
		*Timer
		*Hole
	}]
}

// Step writes the next frame of input into w.
func (a *Autoplayer) Step(w *World) {
	input := w.Input.Get()
	*input = Input{CursorX: input.CursorX, CursorY: input.CursorY}

	if a.Rand.Float64() >= a.ClickRate {
		return
	}

	window := *w.Window.Get()
	if window.Empty() {
		return
	}
	width, height := window.Size()

	x, y := a.Rand.Float32()*width, a.Rand.Float32()*height
	if a.Rand.Float64() < a.Accuracy {
		if a.holes == nil {
			a.holes = ecs.NewView[struct {
				*Position
				*Timer
				*Hole
			}](w.Storage)
		}
		for hole := range a.holes.Values() {
			if hole.Timer.Finished() {
				continue
			}
			p := hole.Position.Window(width, height)
			x, y = p.X, p.Y
			break
		}
	}

	input.CursorMoved = x != input.CursorX || y != input.CursorY
	input.CursorX, input.CursorY = x, y
	input.LeftJustPressed = true
}
