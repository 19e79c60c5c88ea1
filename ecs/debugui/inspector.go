//go:build !js

package debugui

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/loliomg/hitcat/ecs"
)

type entityRow struct {
	ID         ecs.EntityId
	Components []string
}

// collectEntities lists every live entity ordered by id.
func collectEntities(storage *ecs.Storage) []entityRow {
	var rows []entityRow
	for a := range storage.Archetypes() {
		names := make([]string, len(a.Types()))
		for i, t := range a.Types() {
			names[i] = t.String()
		}
		for id := range a.Iter() {
			rows = append(rows, entityRow{ID: id, Components: names})
		}
	}
	slices.SortFunc(rows, func(a, b entityRow) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return rows
}

// filterEntities keeps rows whose id, archetype id or component names contain
// filter, ignoring case.
func filterEntities(rows []entityRow, filter string) []entityRow {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return rows
	}
	var out []entityRow
	for _, row := range rows {
		if strings.Contains(strconv.FormatUint(uint64(row.ID), 10), filter) ||
			strings.Contains(fmt.Sprintf("0x%x", row.ID.ArchetypeId()), filter) ||
			strings.Contains(strings.ToLower(strings.Join(row.Components, " ")), filter) {
			out = append(out, row)
		}
	}
	return out
}

type inspectorWindow struct {
	storage  *ecs.Storage
	filter   string
	selected ecs.EntityId
	perPage  int
	page     int
}

// SpawnInspectorWindow spawns a read-only entity browser. Selecting an entity
// shows the fields of each of its components.
func SpawnInspectorWindow(storage *ecs.Storage, perPage int) ecs.EntityId {
	w := &inspectorWindow{storage: storage, perPage: max(perPage, 1)}
	return storage.Spawn(ImguiItem{Render: w.render})
}

func (w *inspectorWindow) render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(440, 80), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 420), imgui.CondOnce)
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &w.filter, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear") {
		w.filter = ""
		w.page = 0
	}

	rows := filterEntities(collectEntities(w.storage), w.filter)
	pages := max((len(rows)+w.perPage-1)/w.perPage, 1)
	w.page = min(w.page, pages-1)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 2, tableFlags, imgui.NewVec2(0, 200), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		start := w.page * w.perPage
		end := min(start+w.perPage, len(rows))
		for _, row := range rows[start:end] {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			if imgui.SelectableBoolV(strconv.FormatUint(uint64(row.ID), 10), w.selected == row.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				w.selected = row.ID
			}
			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.Components, ", "))
		}
		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", w.page+1, pages, len(rows)))
	imgui.SameLine()
	if imgui.Button("Prev") && w.page > 0 {
		w.page--
	}
	imgui.SameLine()
	if imgui.Button("Next") && w.page < pages-1 {
		w.page++
	}

	imgui.Separator()
	w.renderSelected()
	imgui.End()
}

func (w *inspectorWindow) renderSelected() {
	if w.selected == 0 {
		imgui.Text("No entity selected")
		return
	}
	if !w.storage.Alive(w.selected) {
		imgui.Text(fmt.Sprintf("Entity %d is gone", w.selected))
		return
	}

	for a := range w.storage.Archetypes() {
		if a.ID() != w.selected.ArchetypeId() {
			continue
		}
		for _, t := range a.Types() {
			component := w.storage.GetComponent(w.selected, t)
			if component == nil || !imgui.TreeNodeStr(t.String()) {
				continue
			}
			for _, line := range describe(component) {
				imgui.Text(fmt.Sprintf("%s: %s", line.Name, line.Value))
			}
			imgui.TreePop()
		}
	}
}
