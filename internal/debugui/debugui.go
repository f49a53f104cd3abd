// Package debugui draws Dear ImGui debug windows over the ebiten host. Each
// window is an entity carrying an ImguiItem.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ballgame/ecs"
	"github.com/plus3/ballgame/internal/input"
)

// ImguiItem is a component holding a function that issues ImGui calls.
type ImguiItem struct {
	Render func()
}

// ImguiInputState records whether ImGui wants the mouse or keyboard this
// frame.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes ImguiInputState and queues every ImguiItem's Render
// to run when the frame's commands are flushed. The host must call
// BeginFrame before stepping the scheduler and EndFrame after.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := i.InputState.MustGet()
	io := imgui.CurrentIO()
	state.WantCaptureMouse = io.WantCaptureMouse()
	state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for item := range i.Items.Values() {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}

// GuardSource hides src from the scene while an ImGui widget has keyboard
// focus.
func GuardSource(src input.Source, state *ecs.Singleton[ImguiInputState]) input.Source {
	return input.SourceFunc(func(key input.Key) bool {
		if s := state.Get(); s != nil && s.WantCaptureKeyboard {
			return false
		}
		return src.IsKeyPressed(key)
	})
}

// RegisterComponents adds the debug UI component types to registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}
