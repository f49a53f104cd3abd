// Package ebitenhost runs the scene in an ebiten window.
package ebitenhost

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ballgame/ecs"
	"github.com/plus3/ballgame/internal/app"
	"github.com/plus3/ballgame/internal/asset"
	"github.com/plus3/ballgame/internal/debugui"
)

// Game implements ebiten.Game on top of an app.App.
type Game struct {
	App *app.App

	screen  *ecs.Singleton[Screen]
	imgui   *debugui.Backend
	width   int
	height  int
	drawErr error
}

// New builds the scene for cfg. With cfg.Debug set an ImGui overlay is
// created, which also opens the window.
func New(cfg app.Config, logger *log.Logger) (*Game, error) {
	g := &Game{width: cfg.Width, height: cfg.Height}

	a, err := app.New(cfg, app.Host{Keys: KeySource{}, Size: g}, logger)
	if err != nil {
		return nil, err
	}
	g.App = a

	g.screen = ecs.NewSingleton[Screen](a.Storage)
	a.Render.Register(&SpriteSystem{
		Images: asset.NewCache[*ebiten.Image](ImageLoader{}, a.Logger),
	})

	if cfg.Debug {
		g.imgui = debugui.NewBackend(cfg.Title, cfg.Width, cfg.Height)
		debugui.RegisterComponents(a.Registry)
		debugui.Spawn(a.Storage, a.Scheduler)

		state := ecs.NewSingleton[debugui.ImguiInputState](a.Storage)
		a.Input.Source = debugui.GuardSource(a.Input.Source, state)
		a.Scheduler.Register(&debugui.ImguiSystem{})
	}

	return g, nil
}

// Size reports the last layout size.
func (g *Game) Size() (int, int) {
	return g.width, g.height
}

func (g *Game) Update() error {
	if g.drawErr != nil {
		return g.drawErr
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.imgui != nil {
		g.imgui.BeginFrame()
		defer g.imgui.EndFrame()
	}

	return g.App.Step(1.0 / float64(ebiten.TPS()))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.MustGet().Image = screen
	if err := g.App.Render.Step(0); err != nil && g.drawErr == nil {
		g.App.Logger.Printf("draw: %v", err)
		g.drawErr = err
	}
	g.screen.MustGet().Image = nil

	if g.imgui != nil {
		g.imgui.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed or a frame fails.
func (g *Game) Run() error {
	cfg := g.App.Config
	if g.imgui == nil {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	g.App.Logger.Printf("opening %dx%d window %q", cfg.Width, cfg.Height, cfg.Title)
	return ebiten.RunGame(g)
}
