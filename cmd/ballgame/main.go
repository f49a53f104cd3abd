package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/plus3/ballgame/internal/app"
	"github.com/plus3/ballgame/internal/audio"
	"github.com/plus3/ballgame/internal/audio/device"
	"github.com/plus3/ballgame/internal/ebitenhost"
	"github.com/plus3/ballgame/internal/terminal"
)

// speaker is an audio sink holding the output device open.
type speaker interface {
	audio.Sink
	Close()
}

var openSpeaker = func() (speaker, error) { return device.OpenSpeaker() }

var hosts = map[string]func(app.Config, audio.Sink) error{
	app.BackendEbiten:   runEbiten,
	app.BackendTerminal: runTerminal,
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the exit code once every deferred close has happened.
func run(args []string) int {
	cfg := app.DefaultConfig()
	flags := flag.NewFlagSet("ballgame", flag.ContinueOnError)
	flags.StringVar(&cfg.Backend, "backend", cfg.Backend, "Host to run in: ebiten or terminal.")
	flags.IntVar(&cfg.Width, "width", cfg.Width, "Initial window width in pixels.")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "Initial window height in pixels.")
	flags.StringVar(&cfg.Title, "title", cfg.Title, "Window title.")
	flags.StringVar(&cfg.AssetRoot, "assets", cfg.AssetRoot, "Directory sprites are loaded from.")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Show the ImGui debug overlay (ebiten only).")
	flags.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play a bump when the ball hits the window edge.")
	flags.IntVar(&cfg.TPS, "tps", cfg.TPS, "Update passes per second.")
	flags.DurationVar(&cfg.KeyHold, "hold", cfg.KeyHold, "How long a terminal key press counts as held.")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid flags: %v", err)
		return 2
	}

	var sink audio.Sink
	if cfg.Sound {
		spk, err := openSpeaker()
		if err != nil {
			// Non-fatal, the scene runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer spk.Close()
			sink = spk
		}
	}

	if err := hosts[cfg.Backend](cfg, sink); err != nil {
		log.Printf("ballgame: %v", err)
		return 1
	}
	return 0
}

func runEbiten(cfg app.Config, sink audio.Sink) error {
	g, err := ebitenhost.New(cfg, log.Default())
	if err != nil {
		return err
	}
	if sink != nil {
		g.App.EnableSound(sink)
	}
	return g.Run()
}

func runTerminal(cfg app.Config, sink audio.Sink) error {
	// Log lines would corrupt the screen.
	logFile, err := os.CreateTemp("", "ballgame-*.log")
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := log.New(logFile, "", log.LstdFlags)

	h, err := terminal.New(cfg, nil, logger)
	if err != nil {
		return err
	}
	defer h.Close()
	if sink != nil {
		h.App.EnableSound(sink)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return h.Run(ctx)
}
