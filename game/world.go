package game

import (
	"math/rand/v2"

	"github.com/loliomg/hitcat/ecs"
	"github.com/loliomg/hitcat/ecs/debugui"
)

// World is the game state together with the schedulers that advance and
// draw it.
type World struct {
	Storage *ecs.Storage
	Update  *ecs.Scheduler
	Render  *ecs.Scheduler

	Config *ecs.Singleton[Config]
	Input  *ecs.Singleton[Input]
	Window *ecs.Singleton[Window]
	Screen *ecs.Singleton[Screen]
	Score  *ecs.Singleton[Score]
}

// NewWorld builds the storage, spawns the hammer and HUD and registers every
// system in execution order.
func NewWorld(cfg *Config, materials Materials) *World {
	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	settings := *cfg
	if settings.Seed == 0 {
		settings.Seed = rand.Uint64()
	}
	seed := settings.Seed

	ecs.NewSingleton(storage, materials)
	ecs.NewSingleton(storage, Spawner{Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))})
	ecs.NewSingleton[Frames](storage)
	ecs.NewSingleton[debugui.ImguiInputState](storage)

	w := &World{
		Storage: storage,
		Config:  ecs.NewSingleton(storage, settings),
		Input:   ecs.NewSingleton[Input](storage),
		Window:  ecs.NewSingleton(storage, Window{Width: cfg.Width, Height: cfg.Height}),
		Screen:  ecs.NewSingleton[Screen](storage),
		Score:   ecs.NewSingleton[Score](storage),
	}

	storage.Spawn(
		Hammer{},
		Position{X: ArenaWidth / 2, Y: ArenaHeight / 2, Z: HammerZ},
		Square(HammerSize),
		Transform{},
		Sprite{Image: materials.Hammer},
	)
	spawnHud(storage)

	w.Update = ecs.NewScheduler(storage)
	w.Update.Register(&CursorSystem{})
	w.Update.Register(&HammerSystem{})
	w.Update.Register(ecs.Every(cfg.SpawnInterval, &SpawnSystem{}))
	w.Update.Register(&ExpirySystem{})
	w.Update.Register(&HitSystem{})
	w.Update.Register(&ResolveSystem{})
	w.Update.Register(&ScoreTextSystem{})
	w.Update.Register(&FpsSystem{})
	w.Update.Register(&ResetSystem{})
	w.Update.RegisterStage(ecs.StagePostUpdate, &PositionTranslationSystem{})
	w.Update.RegisterStage(ecs.StagePostUpdate, &SizeScalingSystem{})

	w.Render = ecs.NewScheduler(storage, ecs.WithoutEventSwap())
	w.Render.Register(&RenderSystem{})

	return w
}

func spawnHud(storage *ecs.Storage) {
	fps := storage.Spawn(Text{Prefix: "fps: ", Align: AlignRight, X: 70, Y: 23})
	hits := storage.Spawn(Text{Value: "0", Suffix: " cats whacked", X: 150, Y: 23})
	escapes := storage.Spawn(Text{Value: "0", Suffix: " cats escaped", X: 150, Y: 50})

	ecs.NewSingleton(storage, Hud{
		HitsText:    storage.CreateEntityRef(hits),
		EscapesText: storage.CreateEntityRef(escapes),
		FpsText:     storage.CreateEntityRef(fps),
	})
}
