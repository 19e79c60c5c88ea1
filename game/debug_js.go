//go:build js

package game

import "github.com/hajimehoshi/ebiten/v2"

// EnableDebugUI is unavailable in the browser; it only sets up the window.
func (g *Game) EnableDebugUI(title string, width, height int) {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
}
