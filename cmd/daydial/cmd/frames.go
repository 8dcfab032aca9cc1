package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/go-drift/daydial/pkg/animation"
	"github.com/go-drift/daydial/pkg/display"
	"github.com/go-drift/daydial/pkg/render"
)

// now is the wall clock, replaceable in tests.
var now = time.Now

func init() {
	RegisterCommand(&Command{
		Name:  "frames",
		Short: "Print element frames for a time of day",
		Long: `Print the frame of every dial element for a time of day.

Frames are printed as left,top followed by width x height, one element
per line: the background tiles, the needle and the date label with its
text. The label is shown hidden, as it is between reveals.`,
		Usage: "daydial frames [--time HH:MM[:SS]] [--date YYYY-MM-DD] [--profile NAME] [--seconds]",
		Run:   runFrames,
	})
}

func runFrames(env *Env, args []string) error {
	var tf timeFlags
	var profile string
	var seconds bool

	fs := pflag.NewFlagSet("frames", pflag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	tf.add(fs)
	fs.StringVar(&profile, "profile", "", "screen profile preset; config overrides still apply (default: from config)")
	fs.BoolVar(&seconds, "seconds", false, "project with per-second resolution")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	cfg, err := env.Resolve(profile)
	if err != nil {
		return err
	}
	t, err := tf.resolve(now())
	if err != nil {
		return err
	}

	opts := cfg.Options(env.Logger)
	if seconds {
		opts = append(opts, display.WithTickUnit(display.TickSecond))
	}
	rec := render.NewRecorder()
	state, err := display.New(cfg.Profile, rec, animation.NewFrameScheduler(), opts...)
	if err != nil {
		return err
	}
	defer state.Close()
	state.Tick(t)

	fmt.Fprintf(env.Stdout, "%s %s (%s, %dx%d)\n",
		t.Format("15:04:05"), state.Label(), cfg.Profile.Name, cfg.Profile.Width, cfg.Profile.Height)
	fmt.Fprint(env.Stdout, rec.Dump())
	return nil
}
