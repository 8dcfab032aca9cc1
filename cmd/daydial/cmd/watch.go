package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/go-drift/daydial/internal/tui"
	"github.com/go-drift/daydial/pkg/animation"
	"github.com/go-drift/daydial/pkg/display"
	"github.com/go-drift/daydial/pkg/errors"
	"github.com/go-drift/daydial/pkg/render"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Run the dial in the terminal",
		Long: `Run the dial in the terminal.

The dial follows the wall clock. Press space or enter to reveal the date,
q to quit. --speed fast-forwards the dial clock; reveal animations keep
their normal pace. The terminal belongs to the dial while it runs, so log
output goes to --log FILE or is discarded.`,
		Usage: "daydial watch [--speed N] [--profile NAME] [--log FILE]",
		Run:   runWatch,
	})
}

func runWatch(env *Env, args []string) error {
	var profile string
	var speed float64
	var logPath string

	fs := pflag.NewFlagSet("watch", pflag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.StringVar(&profile, "profile", "", "screen profile preset; config overrides still apply (default: from config)")
	fs.Float64Var(&speed, "speed", 1, "dial clock speed multiplier")
	fs.StringVar(&logPath, "log", "", "append log output to this file while the dial runs")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if speed <= 0 {
		return fmt.Errorf("--speed must be positive (got %g)", speed)
	}

	cfg, err := env.Resolve(profile)
	if err != nil {
		return err
	}
	bg, err := render.Background(cfg.Profile, cfg.Background)
	if err != nil {
		return err
	}

	logger, closeLog, err := watchLogger(logPath, env.Verbose)
	if err != nil {
		return err
	}
	defer closeLog()
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: env.Verbose})

	raster := render.NewRaster(cfg.Profile, bg)
	state, err := display.New(cfg.Profile, raster, animation.NewFrameScheduler(), cfg.Options(logger)...)
	if err != nil {
		return err
	}
	defer state.Close()

	return tui.Run(state, raster, tui.Options{Speed: speed, Now: now})
}

// watchLogger returns the logger used while the terminal UI owns the
// screen. Records are appended to path, or dropped when path is empty.
func watchLogger(path string, verbose bool) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, verbose), f.Close, nil
}
