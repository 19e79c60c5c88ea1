package game

import "github.com/loliomg/hitcat/ecs"

// PositionTranslationSystem writes the centered window translation of every
// positioned entity.
type PositionTranslationSystem struct {
	Window   ecs.Singleton[Window]
	Entities ecs.Query[struct {
		*Position
		*Transform
	}]
}

func (s *PositionTranslationSystem) Execute(frame *ecs.UpdateFrame) {
	w, h := s.Window.Get().Size()
	for e := range s.Entities.Values() {
		p := e.Position.Window(w, h).Convert(w, h)
		*e.Transform = Transform{X: p.X, Y: p.Y, Z: p.Z}
	}
}

// SizeScalingSystem resizes sprites to the window.
type SizeScalingSystem struct {
	Window   ecs.Singleton[Window]
	Entities ecs.Query[struct {
		*Size
		*Sprite
	}]
}

func (s *SizeScalingSystem) Execute(frame *ecs.UpdateFrame) {
	w, h := s.Window.Get().Size()
	for e := range s.Entities.Values() {
		e.Sprite.Width, e.Sprite.Height = e.Size.Scale(w, h)
	}
}
