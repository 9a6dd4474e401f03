// Package cmd wires up the CLI flags and dispatches to the game core.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"guessnum/config"
	"guessnum/internal/core"
	"guessnum/internal/metrics"
	"guessnum/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X guessnum/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// streams bundles the process I/O so tests can drive a full game.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// Execute parses args and plays one game on the process's stdio.
func Execute(ctx context.Context, args []string) error {
	return run(ctx, args, streams{in: os.Stdin, out: os.Stdout, err: os.Stderr})
}

func run(ctx context.Context, args []string, std streams) error {
	cfg := config.New()
	if err := config.LoadFromEnv(cfg); err != nil {
		return err
	}

	fs := flag.NewFlagSet("guessnum", flag.ContinueOnError)
	fs.SetOutput(std.err)

	// ── range ────────────────────────────────────────────────────
	fs.IntVar(&cfg.Low, "low", cfg.Low, "Lowest possible number (inclusive)")
	fs.IntVar(&cfg.High, "high", cfg.High, "Highest possible number (inclusive)")

	// ── gameplay ─────────────────────────────────────────────────
	fs.BoolVarP(&cfg.Hints, "hints", "H", cfg.Hints, "Say whether the number is higher or lower after a miss")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Stop on input that is not a whole number")
	fs.Int64VarP(&cfg.Seed, "seed", "s", cfg.Seed, "Random seed (0 picks one at random)")
	fs.BoolVar(&cfg.HideTarget, "hide-target", cfg.HideTarget, "Do not print the number before the first prompt")

	// ── output ───────────────────────────────────────────────────
	fs.BoolVar(&cfg.Stats, "stats", cfg.Stats, "Print session statistics as JSON to stderr")
	envVerbose := cfg.Verbose // CountVarP resets its target to zero
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")

	var showVersion, showHelp, dryRun bool
	fs.BoolVar(&dryRun, "dry-run", false, "Validate configuration and exit")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(std.err, fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !fs.Changed("verbose") {
		cfg.Verbose = envVerbose
	}

	if showHelp {
		printUsage(std.err, fs)
		return nil
	}
	if showVersion {
		fmt.Fprintf(std.out, "guessnum %s\n", version)
		return nil
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q (use --help for usage)", fs.Arg(0))
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := util.NewLogger(cfg.Verbose)
	logger.SetOutput(std.err)

	if dryRun {
		logger.Info("configuration valid: range [%d, %d]", cfg.Low, cfg.High)
		return nil
	}

	// ── build components ─────────────────────────────────────────
	var collector *metrics.Collector
	if cfg.Stats {
		collector = metrics.New()
	}

	mode, err := core.Build(cfg, logger, collector)
	if err != nil {
		return err
	}
	gm := mode.(*core.GuessMode)
	gm.Stdout = std.out
	console := util.NewLineReader(std.in)
	if !console.Interactive {
		logger.Verbose("stdin is not a terminal, reading scripted guesses")
	}
	gm.Input = console

	err = gm.Run(ctx)
	if cfg.Stats {
		fmt.Fprintln(std.err, collector.JSON())
	}
	return err
}

// ── helpers ──────────────────────────────────────────────────────────

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `guessnum – Guess the Number v%s

Draws a secret number and asks for guesses until one is right.

Usage:
  guessnum [options]

Options:
`, version)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Environment:
  %[1]sLOW, %[1]sHIGH, %[1]sHINTS, %[1]sSTRICT, %[1]sSEED,
  %[1]sHIDE_TARGET, %[1]sSTATS, %[1]sVERBOSE  (flags take precedence)

Examples:
  guessnum                                    Classic 1-10 game
  guessnum --high 100 --hints                 1-100 with higher/lower hints
  guessnum --hide-target --strict             No peeking, no typos
  printf '3\n7\n' | guessnum -s 42            Scripted play
`, config.EnvPrefix)
}
