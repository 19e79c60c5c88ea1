// Command hitcat-stress plays the game headlessly with a scripted player and
// reports timings.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/loliomg/hitcat/game"
)

func main() {
	cfg := game.NewConfig()
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 36000, "number of frames to simulate")
	clickRate := flag.Float64("click-rate", 0.1, "chance of a click each frame")
	accuracy := flag.Float64("accuracy", 0.8, "chance a click is aimed at a hole")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if *frames <= 0 {
		log.Fatalf("invalid config: frames %d must be positive", *frames)
	}

	world := game.NewWorld(cfg, game.Materials{})
	seed := world.Config.Get().Seed
	player := &game.Autoplayer{
		Rand:      rand.New(rand.NewPCG(seed, seed+1)),
		ClickRate: *clickRate,
		Accuracy:  *accuracy,
	}

	report := &Report{
		Frames:        *frames,
		SpawnInterval: cfg.SpawnInterval,
		ClickRate:     *clickRate,
		Accuracy:      *accuracy,
		Seed:          seed,
		UpdateTime:    Stats{Samples: make([]time.Duration, 0, *frames)},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Simulating %d frames at %d tps...\n", *frames, cfg.TPS)
	dt := 1 / float64(cfg.TPS)
	start := time.Now()
	for range *frames {
		player.Step(world)

		updateStart := time.Now()
		world.Update.Once(dt)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
	}

	report.TotalTime = time.Since(start)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	score := world.Score.Get()
	report.Hits, report.Escapes = score.Hits, score.Escapes
	report.Scheduler = world.Update.GetStats()
	report.Storage = world.Storage.CollectStats()

	fmt.Println("--- Stress Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
