package ecs_test

import (
	"fmt"
	"time"

	"github.com/loliomg/hitcat/ecs"
)

func ExampleStorage_Spawn() {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 3})

	pos := ecs.ReadComponent[Position](storage, id)
	fmt.Println(pos.X, pos.Y)
	// Output: 1 2
}

func ExampleNewSingleton() {
	storage := ecs.NewStorage(newTestRegistry())

	score := ecs.NewSingleton(storage, roundScore{Hits: 2})
	score.Get().Hits++

	var read *roundScore
	storage.ReadSingleton(&read)
	fmt.Println(read.Hits)
	// Output: 3
}

func ExampleCommands() {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Health{Current: 3})

	cmds := &ecs.Commands{}
	cmds.Delete(id)
	cmds.Spawn(Health{Current: 7})
	fmt.Println(storage.Alive(id), cmds.Pending())

	cmds.Flush(storage)
	for item := range ecs.NewView[struct{ *Health }](storage).Values() {
		fmt.Println(item.Health.Current)
	}
	// Output:
	// true 2
	// 7
}

func ExampleEvents() {
	storage := ecs.NewStorage(newTestRegistry())
	sender := ecs.NewEvents[Clicked](storage)
	reader := ecs.NewEvents[Clicked](storage)

	sender.Send(Clicked{X: 10, Y: 20})
	for click := range reader.Iter() {
		fmt.Println(click.X, click.Y)
	}
	fmt.Println(reader.Len())
	// Output:
	// 10 20
	// 0
}

func ExampleEvery() {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	ticks := 0
	scheduler.Register(ecs.Every(500*time.Millisecond, ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		ticks++
	})))

	for range 5 {
		scheduler.Once(0.25)
	}
	fmt.Println(ticks)
	// Output: 2
}
