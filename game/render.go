package game

import (
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/loliomg/hitcat/ecs"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	clearColor   = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	textColor    = colornames.Lime
	hitboxColor  = colornames.Yellow
	hudFace      = text.NewGoXFace(basicfont.Face7x13)
	hudTextScale = 2.0
)

// Screen is the image the render scheduler draws into this frame.
type Screen struct {
	*ebiten.Image
}

type drawable struct {
	transform Transform
	sprite    Sprite
}

// RenderSystem clears the screen, draws sprites back to front and then the
// HUD text.
type RenderSystem struct {
	Screen  ecs.Singleton[Screen]
	Window  ecs.Singleton[Window]
	Config  ecs.Singleton[Config]
	Sprites ecs.Query[struct {
		*Transform
		*Sprite
	}]
	Holes ecs.Query[struct {
		*Position
		*Size
		*Hole
	}]
	Texts ecs.Query[struct {
		*Text
	}]

	queue []drawable
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Screen.Get()
	if screen == nil || screen.Image == nil {
		return
	}
	dst := screen.Image
	dst.Fill(clearColor)

	w, h := s.Window.Get().Size()

	s.queue = s.queue[:0]
	for e := range s.Sprites.Values() {
		s.queue = append(s.queue, drawable{*e.Transform, *e.Sprite})
	}
	slices.SortStableFunc(s.queue, func(a, b drawable) int {
		switch {
		case a.transform.Z < b.transform.Z:
			return -1
		case a.transform.Z > b.transform.Z:
			return 1
		}
		return 0
	})
	for _, d := range s.queue {
		drawSprite(dst, d, w, h)
	}

	if s.Config.Get().Hitboxes {
		for hole := range s.Holes.Values() {
			r := holeRect(hole.Position, hole.Size, w, h)
			vector.StrokeRect(dst, r.X, r.Y, r.W, r.H, 1, hitboxColor, false)
		}
	}

	for e := range s.Texts.Values() {
		drawText(dst, e.Text, float64(w))
	}
}

func drawSprite(dst *ebiten.Image, d drawable, w, h float32) {
	img := d.sprite.Image
	if img == nil || d.sprite.Width <= 0 || d.sprite.Height <= 0 {
		return
	}
	bounds := img.Bounds()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(
		float64(d.sprite.Width)/float64(bounds.Dx()),
		float64(d.sprite.Height)/float64(bounds.Dy()),
	)
	opts.GeoM.Translate(
		float64(d.transform.X+w/2-d.sprite.Width/2),
		float64(d.transform.Y+h/2-d.sprite.Height/2),
	)
	opts.Filter = ebiten.FilterLinear
	dst.DrawImage(img, opts)
}

func drawText(dst *ebiten.Image, t *Text, width float64) {
	opts := &text.DrawOptions{}
	opts.GeoM.Scale(hudTextScale, hudTextScale)
	x := t.X
	if t.Align == AlignRight {
		x = width - t.X
		opts.PrimaryAlign = text.AlignEnd
	}
	opts.GeoM.Translate(x, t.Y)
	opts.ColorScale.ScaleWithColor(textColor)
	text.Draw(dst, t.String(), hudFace, opts)
}
