package game

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/loliomg/hitcat/ecs"
	"github.com/loliomg/hitcat/ecs/debugui"
)

// Sprite is an image drawn at the entity's Transform, stretched to Width by
// Height pixels.
type Sprite struct {
	Image         *ebiten.Image
	Width, Height float32
}

type Hole struct{}

type Hammer struct{}

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Text is a HUD label. X is measured from the left window edge for
// AlignLeft and from the right edge for AlignRight; Y from the top.
type Text struct {
	Prefix string
	Value  string
	Suffix string
	Align  Align
	X, Y   float64
}

func (t *Text) String() string {
	return t.Prefix + t.Value + t.Suffix
}

// Window is the current window size in pixels.
type Window struct {
	Width, Height int
}

func (w Window) Size() (float32, float32) {
	return float32(w.Width), float32(w.Height)
}

func (w Window) Empty() bool {
	return w.Width <= 0 || w.Height <= 0
}

// Input is the engine input polled once per update.
type Input struct {
	CursorX, CursorY float32
	CursorMoved      bool
	LeftJustPressed  bool
	ResetPressed     bool
	FPS              float64
}

type Score struct {
	Hits    int
	Escapes int
}

// Hud points at the text entities showing the score and frame rate.
type Hud struct {
	HitsText    *ecs.EntityRef
	EscapesText *ecs.EntityRef
	FpsText     *ecs.EntityRef
}

type Spawner struct {
	Rand *rand.Rand
}

const fpsSamples = 20

// Frames keeps a rolling window of frame rate samples.
type Frames struct {
	samples [fpsSamples]float64
	next    int
	count   int
}

func (f *Frames) Record(fps float64) {
	f.samples[f.next] = fps
	f.next = (f.next + 1) % fpsSamples
	f.count = min(f.count+1, fpsSamples)
}

// Average returns the mean of the recorded samples and false if there are
// none.
func (f *Frames) Average() (float64, bool) {
	if f.count == 0 {
		return 0, false
	}
	var sum float64
	for _, s := range f.samples[:f.count] {
		sum += s
	}
	return sum / float64(f.count), true
}

// Materials holds the decoded sprite images.
type Materials struct {
	Hammer *ebiten.Image
	Hole   *ebiten.Image
}

type Outcome int

const (
	Hit Outcome = iota
	Escaped
)

func (o Outcome) String() string {
	if o == Hit {
		return "hit"
	}
	return "escaped"
}

// HoleResolved is sent once a hole is whacked or its timer runs out.
type HoleResolved struct {
	Entity  ecs.EntityId
	Outcome Outcome
}

type CursorMoved struct {
	X, Y float32
}

// RegisterComponents registers every component type spawned by the game.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Size](registry)
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Sprite](registry)
	ecs.RegisterComponent[Timer](registry)
	ecs.RegisterComponent[Hole](registry)
	ecs.RegisterComponent[Hammer](registry)
	ecs.RegisterComponent[Text](registry)
	ecs.RegisterComponent[debugui.ImguiItem](registry)
}
