//go:build !js

package debugui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/loliomg/hitcat/ecs"
)

const (
	archetypeColumnID = iota
	archetypeColumnComponents
	archetypeColumnCount
	archetypeColumnEntities
)

type archetypeTable struct {
	sortColumn int
	ascending  bool
	selected   uint32
}

// sortRows orders rows in place by the table's sort column.
func (t *archetypeTable) sortRows(rows []ecs.ArchetypeStats) {
	slices.SortStableFunc(rows, func(a, b ecs.ArchetypeStats) int {
		var c int
		switch t.sortColumn {
		case archetypeColumnID:
			c = cmp.Compare(a.ID, b.ID)
		case archetypeColumnComponents:
			c = strings.Compare(strings.Join(a.ComponentTypes, ","), strings.Join(b.ComponentTypes, ","))
		case archetypeColumnCount:
			c = cmp.Compare(len(a.ComponentTypes), len(b.ComponentTypes))
		default:
			c = cmp.Compare(a.EntityCount, b.EntityCount)
		}
		if !t.ascending {
			c = -c
		}
		return c
	})
}

func (t *archetypeTable) render(rows []ecs.ArchetypeStats) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable
	if !imgui.BeginTableV("ArchetypeTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("Archetype ID")
	imgui.TableSetupColumn("Components")
	imgui.TableSetupColumn("Comp Count")
	imgui.TableSetupColumn("Entity Count")
	imgui.TableHeadersRow()

	if specs := imgui.TableGetSortSpecs(); specs.SpecsDirty() && specs.SpecsCount() > 0 {
		spec := specs.Specs()
		t.sortColumn = int(spec.ColumnIndex())
		t.ascending = spec.SortDirection() == imgui.SortDirectionAscending
		specs.SetSpecsDirty(false)
	}
	t.sortRows(rows)

	maxEntities := 0
	for _, row := range rows {
		maxEntities = max(maxEntities, row.EntityCount)
	}

	for _, row := range rows {
		imgui.TableNextRow()

		imgui.TableNextColumn()
		if imgui.SelectableBoolV(fmt.Sprintf("0x%X", row.ID), t.selected == row.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
			t.selected = row.ID
		}

		imgui.TableNextColumn()
		imgui.Text(strings.Join(row.ComponentTypes, ", "))

		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", len(row.ComponentTypes)))

		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", row.EntityCount))
		if maxEntities > 0 {
			width := float32(row.EntityCount) / float32(maxEntities) * 80
			imgui.SameLine()
			pos := imgui.CursorScreenPos()
			color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
			imgui.WindowDrawList().AddRectFilled(pos, imgui.NewVec2(pos.X+width, pos.Y+10), color)
		}
	}

	imgui.EndTable()
}
