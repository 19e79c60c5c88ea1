// Package debugui provides Dear ImGui windows for inspecting a running ECS
// storage. Windows are entities carrying an ImguiItem; ImguiSystem queues
// their render functions each frame.
package debugui

// ImguiItem is a component that holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState is a singleton reporting whether ImGui consumed the mouse
// or keyboard this frame. Game input systems should check it before acting.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}
