//go:build !js

package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/loliomg/hitcat/ecs"
)

const frameHistory = 120

type statsWindow struct {
	storage    *ecs.Storage
	scheduler  *ecs.Scheduler
	extra      func()
	timer      frameTimer
	frames     [frameHistory]float32
	frameIndex int
	archetypes archetypeTable
}

// SpawnStatsWindow spawns a window with storage counts, frame times,
// per-system timings and the archetype table.
func SpawnStatsWindow(storage *ecs.Storage, scheduler *ecs.Scheduler, extra func()) ecs.EntityId {
	w := &statsWindow{
		storage:    storage,
		scheduler:  scheduler,
		extra:      extra,
		archetypes: archetypeTable{sortColumn: archetypeColumnEntities},
	}
	return storage.Spawn(ImguiItem{Render: w.render})
}

func (w *statsWindow) record(ms float32) {
	w.frames[w.frameIndex] = ms
	w.frameIndex = (w.frameIndex + 1) % frameHistory
}

func (w *statsWindow) averageFrameTime() float32 {
	var sum float32
	for _, ft := range w.frames {
		sum += ft
	}
	return sum / frameHistory
}

func (w *statsWindow) render() {
	w.record(w.timer.delta() * 1000)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 80), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 420), imgui.CondOnce)
	if !imgui.BeginV("Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := w.storage.CollectStats()
	imgui.Text(fmt.Sprintf("Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d  Event types: %d", stats.SingletonCount, stats.EventTypeCount))

	avg := w.averageFrameTime()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000/avg))
	}
	imgui.PlotLinesFloatPtr("##frametime", &w.frames[0], int32(frameHistory))

	if w.scheduler != nil && imgui.TreeNodeStr("Systems") {
		renderSystemTable(w.scheduler.GetStats())
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Archetypes") {
		w.archetypes.render(stats.ArchetypeBreakdown)
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singletons") {
		for _, name := range stats.SingletonTypes {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	if w.extra != nil {
		imgui.Separator()
		w.extra()
	}

	imgui.End()
}

func renderSystemTable(stats *ecs.SchedulerStats) {
	imgui.Text(fmt.Sprintf("Frames: %d  Executions: %d", stats.Frames, stats.TotalExecutions))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV("SystemTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Stage")
	imgui.TableSetupColumn("Last")
	imgui.TableSetupColumn("Avg")
	imgui.TableSetupColumn("Max")
	imgui.TableHeadersRow()

	for _, s := range stats.Systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(s.Name)
		imgui.TableNextColumn()
		imgui.Text(s.Stage.String())
		imgui.TableNextColumn()
		imgui.Text(s.LastDuration.String())
		imgui.TableNextColumn()
		imgui.Text(s.AvgDuration.String())
		imgui.TableNextColumn()
		imgui.Text(s.MaxDuration.String())
	}
	imgui.EndTable()
}

type frameTimer struct {
	last time.Time
}

// delta returns the seconds since the previous call, or 0 on the first.
func (ft *frameTimer) delta() float32 {
	now := time.Now()
	defer func() { ft.last = now }()
	if ft.last.IsZero() {
		return 0
	}
	return float32(now.Sub(ft.last).Seconds())
}
