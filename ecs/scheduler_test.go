package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/loliomg/hitcat/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for item := range s.Entities.Values() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type HealthSystem struct {
	Entities ecs.Query[struct {
		*Health
	}]
	ExecuteCount int
	TotalHealth  int
}

func (s *HealthSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	s.TotalHealth = 0
	for item := range s.Entities.Values() {
		s.TotalHealth += item.Health.Current
	}
}

type tickCounter struct {
	Ticks int
}

type tickSystem struct {
	Counter ecs.Singleton[tickCounter]
	dts     []float64
}

func (s *tickSystem) Execute(frame *ecs.UpdateFrame) {
	s.Counter.Get().Ticks++
	s.dts = append(s.dts, frame.DeltaTime)
}

func TestScheduler(t *testing.T) {
	registry := newTestRegistry()

	t.Run("execution and query binding", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		health := &HealthSystem{}
		scheduler.Register(movement)
		scheduler.Register(health)

		id := storage.Spawn(Position{}, Velocity{DX: 1, DY: 2})
		storage.Spawn(Health{Current: 100, Max: 100})

		scheduler.Once(1.0)
		scheduler.Once(1.0)

		assert.Equal(t, 2, movement.ExecuteCount)
		assert.Equal(t, 2, health.ExecuteCount)
		pos := ecs.ReadComponent[Position](storage, id)
		assert.Equal(t, float32(2), pos.X)
		assert.Equal(t, float32(4), pos.Y)
	})

	t.Run("queries see entities spawned between frames", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)
		health := &HealthSystem{}
		scheduler.Register(health)

		storage.Spawn(Health{Current: 50})
		scheduler.Once(1.0)
		assert.Equal(t, 50, health.TotalHealth)

		storage.Spawn(Health{Current: 25})
		scheduler.Once(1.0)
		assert.Equal(t, 75, health.TotalHealth)
	})

	t.Run("singleton fields are bound", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		ecs.NewSingleton[tickCounter](storage)
		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(&tickSystem{})

		scheduler.Once(0.5)
		scheduler.Once(0.5)

		var counter *tickCounter
		require.True(t, storage.ReadSingleton(&counter))
		assert.Equal(t, 2, counter.Ticks)
	})

	t.Run("context cancellation stops run", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)
		movement := &MovementSystem{}
		scheduler.Register(movement)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			scheduler.Run(ctx, time.Millisecond)
			close(done)
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop")
		}
		assert.Greater(t, scheduler.GetStats().Frames, int64(0))
	})
}

type spawnVelocitySystem struct{}

func (s *spawnVelocitySystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(Position{}, Velocity{DX: 10})
}

func TestSchedulerStages(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	movement := &MovementSystem{}
	scheduler.Register(&spawnVelocitySystem{})
	scheduler.RegisterStage(ecs.StagePostUpdate, movement)

	scheduler.Once(1)

	// the spawn was flushed at the end of the update stage, so post-update
	// already moved it once
	view := ecs.NewView[struct{ *Position }](storage)
	var xs []float32
	for item := range view.Values() {
		xs = append(xs, item.Position.X)
	}
	assert.Equal(t, []float32{10}, xs)

	var order []ecs.Stage
	scheduler.RegisterStage(ecs.StagePostUpdate, ecs.SystemFunc(func(*ecs.UpdateFrame) { order = append(order, ecs.StagePostUpdate) }))
	scheduler.Register(ecs.SystemFunc(func(*ecs.UpdateFrame) { order = append(order, ecs.StageUpdate) }))
	scheduler.RegisterStage(ecs.StagePreUpdate, ecs.SystemFunc(func(*ecs.UpdateFrame) { order = append(order, ecs.StagePreUpdate) }))
	scheduler.Once(1)
	assert.Equal(t, []ecs.Stage{ecs.StagePreUpdate, ecs.StageUpdate, ecs.StagePostUpdate}, order, "stage order wins over registration order")
	assert.Equal(t, "pre-update", ecs.StagePreUpdate.String())

	assert.Panics(t, func() { scheduler.RegisterStage(ecs.Stage(7), movement) })
}

func TestFixedStep(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	ecs.NewSingleton[tickCounter](storage)
	scheduler := ecs.NewScheduler(storage)

	inner := &tickSystem{}
	step := ecs.Every(500*time.Millisecond, inner)
	scheduler.Register(step)

	scheduler.Once(0.25)
	assert.Equal(t, 0, ecs.NewSingleton[tickCounter](storage).Get().Ticks)

	scheduler.Once(0.25)
	assert.Equal(t, 1, ecs.NewSingleton[tickCounter](storage).Get().Ticks)

	// a long frame catches up
	scheduler.Once(1.25)
	assert.Equal(t, 3, ecs.NewSingleton[tickCounter](storage).Get().Ticks)
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, inner.dts)

	step.Reset()
	scheduler.Once(0.25)
	assert.Equal(t, 3, ecs.NewSingleton[tickCounter](storage).Get().Ticks)

	assert.Equal(t, 500*time.Millisecond, step.Interval())
	assert.Equal(t, "tickSystem@500ms", scheduler.GetStats().Systems[0].Name)
	assert.Panics(t, func() { ecs.Every(0, inner) })
}

func TestSchedulerStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&HealthSystem{})
	scheduler.RegisterStage(ecs.StagePostUpdate, ecs.SystemFunc(func(*ecs.UpdateFrame) {}))

	stats := scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration)

	for range 3 {
		scheduler.Once(0.016)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, int64(6), stats.TotalExecutions)
	assert.Equal(t, int64(3), stats.Frames)
	assert.Equal(t, "HealthSystem", stats.Systems[0].Name)
	assert.Equal(t, ecs.StageUpdate, stats.Systems[0].Stage)
	assert.Equal(t, "ecs.SystemFunc", stats.Systems[1].Name)
	assert.Equal(t, ecs.StagePostUpdate, stats.Systems[1].Stage)
	for _, s := range stats.Systems {
		assert.Equal(t, int64(3), s.ExecutionCount)
		assert.LessOrEqual(t, s.MinDuration, s.MaxDuration)
	}
}
