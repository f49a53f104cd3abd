// Package app assembles the ball scene: component registry, storage,
// singletons and the update and render schedulers shared by every host.
package app

import (
	"context"
	"errors"
	"log"

	"github.com/plus3/ballgame/ecs"
	"github.com/plus3/ballgame/internal/asset"
	"github.com/plus3/ballgame/internal/audio"
	"github.com/plus3/ballgame/internal/input"
	"github.com/plus3/ballgame/internal/scene"
	"github.com/plus3/ballgame/internal/window"
)

// Host supplies the platform pieces the scene reads every frame.
type Host struct {
	Keys input.Source
	Size window.Source
	// Systems run at the start of every update pass, before the window and
	// keyboard singletons are refreshed.
	Systems []ecs.System
}

// App owns the scene's storage and schedulers.
type App struct {
	Config Config
	Logger *log.Logger

	Registry  *ecs.ComponentRegistry
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler
	// Render is stepped by hosts with a separate draw callback.
	Render *ecs.Scheduler
	Input  *input.CaptureSystem
	Window *window.SyncSystem
}

// New validates cfg and builds the scene. A nil logger uses log.Default().
func New(cfg Config, host Host, logger *log.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if host.Keys == nil || host.Size == nil {
		return nil, errors.New("app: host must provide keys and size")
	}
	if logger == nil {
		logger = log.Default()
	}

	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)

	storage := ecs.NewStorage(registry)
	storage.AddSingleton(window.Primary{
		Width:  float32(cfg.Width),
		Height: float32(cfg.Height),
		Title:  cfg.Title,
	})
	storage.AddSingleton(input.NewKeyboard())
	storage.AddSingleton(asset.NewCatalog(cfg.AssetRoot))

	a := &App{
		Config:    cfg,
		Logger:    logger,
		Registry:  registry,
		Storage:   storage,
		Scheduler: ecs.NewScheduler(storage),
		Render:    ecs.NewScheduler(storage),
		Input:     &input.CaptureSystem{Source: host.Keys},
		Window:    &window.SyncSystem{Source: host.Size},
	}

	a.Scheduler.RegisterStartup(&window.SyncSystem{Source: host.Size})
	for _, sys := range host.Systems {
		a.Scheduler.Register(sys)
	}
	a.Scheduler.Register(a.Window)
	a.Scheduler.Register(a.Input)
	scene.AddSystems(a.Scheduler)

	return a, nil
}

// EnableSound plays a bump through sink whenever the player hits an edge.
func (a *App) EnableSound(sink audio.Sink) {
	a.Scheduler.Register(&audio.BumpSystem{Sink: sink})
}

// Step runs one update pass of dt seconds.
func (a *App) Step(dt float64) error {
	if err := a.Scheduler.Step(dt); err != nil {
		a.Logger.Printf("frame %d aborted: %v", a.Scheduler.GetStats().Frames, err)
		return err
	}
	return nil
}

// RunFrames steps n fixed frames of dt seconds without a real clock.
func (a *App) RunFrames(n int, dt float64) error {
	for range n {
		if err := a.Step(dt); err != nil {
			return err
		}
	}
	return nil
}

// Run steps the update scheduler at the configured rate until ctx ends.
func (a *App) Run(ctx context.Context) error {
	a.Logger.Printf("running %q at %d tps", a.Config.Title, a.Config.TPS)
	err := a.Scheduler.Run(ctx, a.Config.FrameInterval())
	if err != nil {
		a.Logger.Printf("stopped: %v", err)
	}
	return err
}

// Player returns the player's current position.
func (a *App) Player() (scene.Vec2, error) {
	q := ecs.NewQuery[struct {
		*scene.Player
		*scene.Transform
	}](a.Storage)
	q.Execute()
	_, p, err := q.Single()
	if err != nil {
		return scene.Vec2{}, err
	}
	return p.Translation.XY(), nil
}
