package game

const (
	ArenaWidth  = 10
	ArenaHeight = 10

	HammerSize = 0.7
	HammerZ    = 5
	HoleSize   = 0.9
)

// Position is a point either in arena units or, when Absolute is set, in
// window pixels with the origin at the top left.
type Position struct {
	X, Y, Z  float32
	Absolute bool
}

// Add sums the coordinates. The result is in arena units.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Less orders by x, then by y.
func (p Position) Less(o Position) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// Window resolves p to window pixels. Arena units land in the middle of their
// arena cell.
func (p Position) Window(w, h float32) Position {
	if p.Absolute {
		return p
	}
	cellW, cellH := w/ArenaWidth, h/ArenaHeight
	return Position{
		X:        p.X*cellW + cellW/2,
		Y:        p.Y*cellH + cellH/2,
		Z:        p.Z,
		Absolute: true,
	}
}

// Convert shifts window pixels so the window center is the origin.
func (p Position) Convert(w, h float32) Position {
	p.X -= w / 2
	p.Y -= h / 2
	return p
}

// Size is a width and height in arena units.
type Size struct {
	Width, Height float32
}

func Square(s float32) Size {
	return Size{Width: s, Height: s}
}

// Scale converts the size to window pixels.
func (s Size) Scale(w, h float32) (float32, float32) {
	return s.Width / ArenaWidth * w, s.Height / ArenaHeight * h
}

// Transform is a translation with the window center as origin.
type Transform struct {
	X, Y, Z float32
}

// Rect is an axis aligned box in window pixels.
type Rect struct {
	X, Y, W, H float32
}

// CenteredRect returns the w by h box centered on (cx, cy).
func CenteredRect(cx, cy, w, h float32) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Contains reports whether (x, y) lies in r, edges included.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && y >= r.Y && x <= r.X+r.W && y <= r.Y+r.H
}
