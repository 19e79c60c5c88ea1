package game

import (
	"strconv"

	"github.com/kamstrup/intmap"
	"github.com/loliomg/hitcat/ecs"
	"github.com/loliomg/hitcat/ecs/debugui"
)

// CursorSystem turns polled cursor motion into a CursorMoved event.
type CursorSystem struct {
	Input ecs.Singleton[Input]
	Moved ecs.Events[CursorMoved]
}

func (s *CursorSystem) Execute(frame *ecs.UpdateFrame) {
	input := s.Input.Get()
	if input.CursorMoved {
		s.Moved.Send(CursorMoved{X: input.CursorX, Y: input.CursorY})
	}
}

// HammerSystem moves every hammer to the cursor.
type HammerSystem struct {
	Moved   ecs.Events[CursorMoved]
	Hammers ecs.Query[struct {
		*Position
		*Hammer
	}]
}

func (s *HammerSystem) Execute(frame *ecs.UpdateFrame) {
	for event := range s.Moved.Iter() {
		for hammer := range s.Hammers.Values() {
			hammer.Position.X = event.X
			hammer.Position.Y = event.Y
			hammer.Position.Absolute = true
		}
	}
}

// SpawnSystem places one hole at a random window pixel. It is meant to be
// wrapped with ecs.Every.
type SpawnSystem struct {
	Window    ecs.Singleton[Window]
	Spawner   ecs.Singleton[Spawner]
	Materials ecs.Singleton[Materials]
	Config    ecs.Singleton[Config]
}

func (s *SpawnSystem) Execute(frame *ecs.UpdateFrame) {
	window := *s.Window.Get()
	if window.Empty() {
		return
	}
	w, h := window.Size()
	rng := s.Spawner.Get().Rand

	frame.Commands.Spawn(
		Hole{},
		Position{X: rng.Float32() * w, Y: rng.Float32() * h, Absolute: true},
		Square(HoleSize),
		NewTimer(s.Config.Get().HoleLifetime),
		Transform{},
		Sprite{Image: s.Materials.Get().Hole},
	)
}

// ExpirySystem ticks hole timers and counts the holes that ran out as
// escaped.
type ExpirySystem struct {
	Score    ecs.Singleton[Score]
	Resolved ecs.Events[HoleResolved]
	Holes    ecs.Query[struct {
		ecs.EntityId
		*Timer
		*Hole
	}]
}

func (s *ExpirySystem) Execute(frame *ecs.UpdateFrame) {
	for hole := range s.Holes.Values() {
		if hole.Timer.Tick(frame.DeltaTime) {
			s.Score.Get().Escapes++
			s.Resolved.Send(HoleResolved{Entity: hole.EntityId, Outcome: Escaped})
		}
	}
}

// HitSystem tests a left click at the hammer against every live hole. One
// click may hit several overlapping holes.
type HitSystem struct {
	Input    ecs.Singleton[Input]
	Imgui    ecs.Singleton[debugui.ImguiInputState]
	Window   ecs.Singleton[Window]
	Score    ecs.Singleton[Score]
	Resolved ecs.Events[HoleResolved]
	Hammers  ecs.Query[struct {
		*Position
		*Hammer
	}]
	Holes ecs.Query[struct {
		ecs.EntityId
		*Position
		*Size
		*Timer
		*Hole
	}]
	hit *intmap.Map[ecs.EntityId, struct{}]
}

func (s *HitSystem) Execute(frame *ecs.UpdateFrame) {
	if !s.Input.Get().LeftJustPressed {
		return
	}
	if state := s.Imgui.Get(); state != nil && state.WantCaptureMouse {
		return
	}

	if s.hit == nil {
		s.hit = intmap.New[ecs.EntityId, struct{}](16)
	}
	s.hit.Clear()

	w, h := s.Window.Get().Size()
	for hammer := range s.Hammers.Values() {
		p := hammer.Position.Window(w, h)
		if p.X < 0 || p.Y < 0 || p.X > w || p.Y > h {
			continue
		}
		for hole := range s.Holes.Values() {
			if hole.Timer.Finished() || s.hit.Has(hole.EntityId) {
				continue
			}
			if holeRect(hole.Position, hole.Size, w, h).Contains(p.X, p.Y) {
				s.hit.Put(hole.EntityId, struct{}{})
				s.Score.Get().Hits++
				s.Resolved.Send(HoleResolved{Entity: hole.EntityId, Outcome: Hit})
			}
		}
	}
}

// holeRect is the pixel box of a hole centered on its position.
func holeRect(pos *Position, size *Size, w, h float32) Rect {
	center := pos.Window(w, h)
	sw, sh := size.Scale(w, h)
	return CenteredRect(center.X, center.Y, sw, sh)
}

// ResolveSystem deletes each resolved hole once, however many events name it.
type ResolveSystem struct {
	Resolved ecs.Events[HoleResolved]
	seen     *intmap.Map[ecs.EntityId, struct{}]
}

func (s *ResolveSystem) Execute(frame *ecs.UpdateFrame) {
	if s.seen == nil {
		s.seen = intmap.New[ecs.EntityId, struct{}](16)
	}
	s.seen.Clear()

	for event := range s.Resolved.Iter() {
		if _, ok := s.seen.Get(event.Entity); ok {
			continue
		}
		s.seen.Put(event.Entity, struct{}{})
		frame.Commands.Delete(event.Entity)
	}
}

// ScoreTextSystem copies the score into the HUD whenever a hole resolved.
type ScoreTextSystem struct {
	Resolved ecs.Events[HoleResolved]
	Score    ecs.Singleton[Score]
	Hud      ecs.Singleton[Hud]
}

func (s *ScoreTextSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Resolved.Len() == 0 {
		return
	}
	s.Resolved.Clear()
	writeScore(frame.Storage, s.Hud.Get(), s.Score.Get())
}

func writeScore(storage *ecs.Storage, hud *Hud, score *Score) {
	if text := hudText(storage, hud.HitsText); text != nil {
		text.Value = strconv.Itoa(score.Hits)
	}
	if text := hudText(storage, hud.EscapesText); text != nil {
		text.Value = strconv.Itoa(score.Escapes)
	}
}

func hudText(storage *ecs.Storage, ref *ecs.EntityRef) *Text {
	id, ok := storage.ResolveEntityRef(ref)
	if !ok {
		return nil
	}
	return ecs.ReadComponent[Text](storage, id)
}

// FpsSystem shows the rolling average frame rate.
type FpsSystem struct {
	Input  ecs.Singleton[Input]
	Frames ecs.Singleton[Frames]
	Hud    ecs.Singleton[Hud]
}

func (s *FpsSystem) Execute(frame *ecs.UpdateFrame) {
	frames := s.Frames.Get()
	if fps := s.Input.Get().FPS; fps > 0 {
		frames.Record(fps)
	}
	avg, ok := frames.Average()
	if !ok {
		return
	}
	if text := hudText(frame.Storage, s.Hud.Get().FpsText); text != nil {
		text.Value = strconv.FormatFloat(avg, 'f', 2, 64)
	}
}

// ResetSystem zeroes the score and clears the arena when reset is pressed.
type ResetSystem struct {
	Input ecs.Singleton[Input]
	Score ecs.Singleton[Score]
	Hud   ecs.Singleton[Hud]
	Holes ecs.Query[struct {
		ecs.EntityId
		*Hole
	}]
}

func (s *ResetSystem) Execute(frame *ecs.UpdateFrame) {
	if !s.Input.Get().ResetPressed {
		return
	}
	for hole := range s.Holes.Values() {
		frame.Commands.Delete(hole.EntityId)
	}
	score := s.Score.Get()
	*score = Score{}
	writeScore(frame.Storage, s.Hud.Get(), score)
}
