package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/ballgame/internal/app"
	"github.com/plus3/ballgame/internal/input"
	"github.com/plus3/ballgame/internal/scene"
	"github.com/plus3/ballgame/internal/window"
)

type options struct {
	Duration    time.Duration
	Width       int
	Height      int
	SwitchEvery int
	Seed        int64
}

func main() {
	var opts options
	flag.DurationVar(&opts.Duration, "duration", 5*time.Second, "How long to run the scene for.")
	flag.IntVar(&opts.Width, "width", 800, "Window width in pixels.")
	flag.IntVar(&opts.Height, "height", 600, "Window height in pixels.")
	flag.IntVar(&opts.SwitchEvery, "switch-every", 30, "Frames between changes of the held keys.")
	flag.Int64Var(&opts.Seed, "seed", 1, "Seed for the scripted input.")
	flag.Parse()

	log.Println("Starting scene benchmark...")

	ctx, cancel := context.WithTimeout(context.Background(), opts.Duration)
	defer cancel()

	report, err := run(ctx, opts, log.Default())
	if err != nil {
		log.Fatalf("Benchmark failed: %v", err)
	}

	fmt.Println("\n\n--- Scene Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// bumpCounter counts edge hits instead of playing them.
type bumpCounter struct {
	n int64
}

func (b *bumpCounter) Bump() {
	b.n++
}

// script picks a random combination of movement keys every few frames.
type script struct {
	rng   *rand.Rand
	keys  *input.Static
	every int
	frame int
}

var movementKeys = []input.Key{
	input.KeyLeft, input.KeyRight, input.KeyUp, input.KeyDown,
	input.KeyA, input.KeyD, input.KeyW, input.KeyS,
}

func (s *script) advance() {
	if s.frame%s.every == 0 {
		var held []input.Key
		for _, k := range movementKeys {
			if s.rng.Intn(4) == 0 {
				held = append(held, k)
			}
		}
		s.keys.Hold(held...)
	}
	s.frame++
}

func run(ctx context.Context, opts options, logger *log.Logger) (*Report, error) {
	if opts.SwitchEvery <= 0 {
		return nil, fmt.Errorf("switch-every must be positive, got %d", opts.SwitchEvery)
	}

	cfg := app.DefaultConfig()
	cfg.Width, cfg.Height = opts.Width, opts.Height
	cfg.Title = "scene-bench"

	keys := input.NewStatic()
	a, err := app.New(cfg, app.Host{
		Keys: keys,
		Size: window.Fixed{Width: opts.Width, Height: opts.Height},
	}, logger)
	if err != nil {
		return nil, err
	}

	bumps := &bumpCounter{}
	a.EnableSound(bumps)

	driver := &script{rng: rand.New(rand.NewSource(opts.Seed)), keys: keys, every: opts.SwitchEvery}
	report := &Report{
		Duration:    opts.Duration,
		Width:       opts.Width,
		Height:      opts.Height,
		SwitchEvery: opts.SwitchEvery,
		Seed:        opts.Seed,
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	logger.Printf("Running %dx%d scene for %s...", opts.Width, opts.Height, opts.Duration)

	const dt = 1.0 / 60
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			driver.advance()

			updateStart := time.Now()
			if err := a.Step(dt); err != nil {
				return nil, err
			}
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalFrames++

			pos, err := a.Player()
			if err != nil {
				return nil, err
			}
			if scene.Confine(pos, float32(opts.Width), float32(opts.Height), scene.PlayerSize) != pos {
				report.Violations++
			}
			report.Final = pos
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Bumps = bumps.n
	report.Systems = a.Scheduler.GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Println("Benchmark finished.")
	return report, nil
}
