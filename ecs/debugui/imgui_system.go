//go:build !js

package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/loliomg/hitcat/ecs"
)

// ImguiSystem updates ImguiInputState and defers every ImguiItem render
// function to the end of the stage, inside the backend's frame. Register it
// in StagePreUpdate so input systems see this frame's capture state.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if state := i.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for item := range i.Items.Values() {
		if item.ImguiItem.Render != nil {
			frame.Commands.Defer(item.ImguiItem.Render)
		}
	}
}
