package app

import (
	"errors"
	"fmt"
	"time"
)

const (
	BackendEbiten   = "ebiten"
	BackendTerminal = "terminal"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings shared by every host.
type Config struct {
	Backend   string
	Width     int
	Height    int
	Title     string
	AssetRoot string
	Debug     bool
	Sound     bool
	TPS       int
	// KeyHold is how long the terminal host treats a key as held after its
	// last key event.
	KeyHold time.Duration
}

func DefaultConfig() Config {
	return Config{
		Backend:   BackendEbiten,
		Width:     800,
		Height:    600,
		Title:     "ballgame",
		AssetRoot: "assets",
		TPS:       60,
		KeyHold:   150 * time.Millisecond,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Backend != BackendEbiten && c.Backend != BackendTerminal:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	case c.KeyHold < 0:
		return fmt.Errorf("%w: negative key hold %s", ErrInvalidConfig, c.KeyHold)
	case c.KeyHold == 0 && c.Backend == BackendTerminal:
		return fmt.Errorf("%w: the %s backend needs a positive key hold", ErrInvalidConfig, BackendTerminal)
	case c.Debug && c.Backend != BackendEbiten:
		return fmt.Errorf("%w: debug overlay requires the %s backend", ErrInvalidConfig, BackendEbiten)
	}
	return nil
}

// FrameInterval is the wall time between update passes.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.TPS)
}
