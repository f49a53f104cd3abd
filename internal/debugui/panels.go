package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ballgame/ecs"
	"github.com/plus3/ballgame/internal/input"
	"github.com/plus3/ballgame/internal/scene"
	"github.com/plus3/ballgame/internal/window"
)

// Spawn adds the scene and performance windows to storage.
func Spawn(storage *ecs.Storage, scheduler *ecs.Scheduler) {
	ecs.NewSingleton[ImguiInputState](storage)
	storage.Spawn(ImguiItem{Render: scenePanel(storage)})
	storage.Spawn(ImguiItem{Render: performancePanel(storage, scheduler, 120)})
}

func scenePanel(storage *ecs.Storage) func() {
	players := ecs.NewView[struct {
		*scene.Player
		*scene.Transform
	}](storage)

	return func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(260, 160), imgui.CondOnce)

		if !imgui.BeginV("Scene", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		var w *window.Primary
		if storage.ReadSingleton(&w) {
			imgui.Text(fmt.Sprintf("Window: %.0f x %.0f", w.Width, w.Height))
		}

		for id, p := range players.Iter() {
			imgui.Text(fmt.Sprintf("Player 0x%X", uint64(id)))
			imgui.Text(fmt.Sprintf("Position: (%.1f, %.1f)", p.Translation.X, p.Translation.Y))
		}

		var kb *input.Keyboard
		if storage.ReadSingleton(&kb) {
			imgui.Separator()
			imgui.Text(fmt.Sprintf("Held: %v", kb.Held()))
		}

		imgui.End()
	}
}

func performancePanel(storage *ecs.Storage, scheduler *ecs.Scheduler, historyFrames int) func() {
	history := NewFrameHistory(historyFrames)
	last := time.Now()

	return func() {
		now := time.Now()
		history.Record(now.Sub(last))
		last = now

		imgui.SetNextWindowPosV(imgui.NewVec2(10, 180), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(320, 300), imgui.CondOnce)

		if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		stats := storage.CollectStats()
		imgui.Text(fmt.Sprintf("Entities: %d", stats.TotalEntityCount))
		imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", history.Average(), history.FPS()))

		if samples := history.Samples(); len(samples) > 0 {
			imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))
		}

		if imgui.TreeNodeStr("Systems") {
			for _, sys := range scheduler.GetStats().Systems {
				imgui.BulletText(fmt.Sprintf("%s: %.3f ms avg, %d runs",
					sys.Name, float64(sys.AvgDuration.Microseconds())/1000.0, sys.ExecutionCount))
			}
			imgui.TreePop()
		}

		if imgui.TreeNodeStr("Singletons") {
			for _, name := range stats.SingletonTypes {
				imgui.BulletText(name)
			}
			imgui.TreePop()
		}

		imgui.End()
	}
}
