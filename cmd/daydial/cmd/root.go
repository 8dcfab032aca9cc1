// Package cmd implements the daydial CLI commands.
//
// A root command dispatches to subcommands (frames, snapshot, watch,
// profiles). Each subcommand parses its own flags.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-drift/daydial/internal/config"
	"github.com/go-drift/daydial/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(env *Env, args []string) error
}

// Env carries the global flags and output streams into a command.
type Env struct {
	ConfigDir string
	Verbose   bool
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
}

// Resolve loads the configuration. A non-empty profile replaces the file's
// preset; the file's overrides are applied on top of it.
func (e *Env) Resolve(profile string) (*config.Resolved, error) {
	r, err := config.ResolveProfile(e.ConfigDir, profile)
	if err != nil {
		return nil, err
	}
	e.Logger.Debug("config resolved", slog.Any("config", r))
	return r, nil
}

const rootLong = `daydial renders a 24-hour dial: a wide strip of artwork scrolls
behind a fixed needle so the needle points at the current time. A
trigger slides the date label in, holds it, and slides it back out.

Use "daydial <command> --help" for more information about a command.`

// Commands registered with the CLI, in help order.
var commands []*Command

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands = append(commands, cmd)
}

func lookup(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run runs the CLI with args, writing to stdout and stderr.
func Run(args []string, stdout, stderr io.Writer) error {
	env := &Env{ConfigDir: ".", Stdout: stdout, Stderr: stderr}

	if len(args) == 0 {
		printHelp(stdout)
		return nil
	}

	// Handle global flags and extract --config and --verbose.
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(stdout)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "daydial version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			env.Verbose = true
		case "--config":
			if i+1 >= len(args) {
				return fmt.Errorf("--config requires a directory path")
			}
			env.ConfigDir = args[i+1]
			i++
		default:
			if dir, ok := strings.CutPrefix(arg, "--config="); ok {
				env.ConfigDir = dir
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(stdout)
		return nil
	}

	env.Logger = newLogger(stderr, env.Verbose)
	errors.SetHandler(&errors.LogHandler{Logger: env.Logger, Verbose: env.Verbose})

	cmd := lookup(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", args[0])
		printHelp(stderr)
		return fmt.Errorf("unknown command: %s", args[0])
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(stdout, cmd)
			return nil
		}
	}

	return cmd.Run(env, cmdArgs)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, rootLong)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  daydial [--config DIR] [--verbose] <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range commands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  --version            Show version information")
	fmt.Fprintf(w, "  --config DIR         Directory holding %s (default: .)\n", config.FileName)
	fmt.Fprintln(w, "  --verbose            Log debug output to stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  daydial frames --time 12:00              Print element frames at noon")
	fmt.Fprintln(w, "  daydial snapshot --reveal 1 -o dial.png  Render the dial with the date shown")
	fmt.Fprintln(w, "  daydial watch --speed 60                 Run the dial in the terminal")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}
