//go:build !js

package debugui

import "github.com/loliomg/hitcat/ecs"

// SpawnDebugUI spawns the stats and inspector windows. extra, if not nil,
// renders application lines at the bottom of the stats window. ImguiItem and
// ImguiInputState must be registered with the storage.
func SpawnDebugUI(storage *ecs.Storage, scheduler *ecs.Scheduler, extra func()) {
	ecs.NewSingleton[ImguiInputState](storage)
	SpawnStatsWindow(storage, scheduler, extra)
	SpawnInspectorWindow(storage, 50)
}
