package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/appengine-ltd/age-of-polders/internal/game"
	"github.com/appengine-ltd/age-of-polders/internal/terrain"
	"github.com/appengine-ltd/age-of-polders/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	showVersion bool
	terminal    bool
	layout      string
	seed        int64
	width       int
	height      int
	seaLevel    int
	logLevel    string
	logFile     string
	snapshot    string
	snapshotDir string
}

func parseFlags() options {
	var opts options
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.BoolVar(&opts.terminal, "terminal", false, "use the terminal client instead of the window")
	flag.StringVar(&opts.layout, "layout", string(game.LayoutRandom), "map layout: "+layoutNames())
	flag.Int64Var(&opts.seed, "seed", 0, "map seed (0 picks one from the clock)")
	flag.IntVar(&opts.width, "width", game.DefaultWidth, "map width in tiles")
	flag.IntVar(&opts.height, "height", game.DefaultHeight, "map height in tiles")
	flag.IntVar(&opts.seaLevel, "sea-level", terrain.SeaLevel, "starting sea level")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flag.StringVar(&opts.logFile, "log-file", "", "append logs to this file instead of stderr")
	flag.StringVar(&opts.snapshot, "snapshot", "", "write the generated map to this PNG and exit")
	flag.StringVar(&opts.snapshotDir, "snapshot-dir", ".", "directory for in-game snapshots")
	flag.Parse()
	return opts
}

func layoutNames() string {
	names := make([]string, 0, len(game.Layouts()))
	for _, l := range game.Layouts() {
		names = append(names, string(l))
	}
	return strings.Join(names, ", ")
}

func printVersion() {
	fmt.Printf("Age of Polders %s (%s) %s\n", version, commit, date)
}

func (o options) runConfig() (game.RunConfig, error) {
	layout, err := game.ParseLayout(o.layout)
	if err != nil {
		return game.RunConfig{}, err
	}
	config := game.RunConfig{
		Layout:   layout,
		Width:    o.width,
		Height:   o.height,
		Seed:     o.seed,
		SeaLevel: o.seaLevel,
	}
	return config, config.Validate()
}

// newLogger builds the process logger. The returned close func releases the
// log file, if any.
func (o options) newLogger() (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", o.logLevel, err)
	}
	var out io.Writer = os.Stderr
	closeFn := func() {}
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	return logger, closeFn, nil
}

// writeSnapshot renders a freshly generated map straight to a PNG.
func writeSnapshot(config game.RunConfig, path string, logger *slog.Logger) error {
	run, err := game.NewRunState(config, logger)
	if err != nil {
		return err
	}
	if err := ui.WriteSnapshot(run.Grid, path, ui.SnapshotOptions{CellSize: ui.DefaultSnapshotCellSize}); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s, seed %d)\n", path, run.Config.Layout, run.Config.Seed)
	return nil
}

// setup parses flags and prepares logging. ok is false when the process
// should exit without starting a client.
func setup() (opts options, config game.RunConfig, logger *slog.Logger, closeLog func(), ok bool) {
	opts = parseFlags()
	if opts.showVersion {
		printVersion()
		return opts, config, nil, nil, false
	}

	var err error
	config, err = opts.runConfig()
	if err != nil {
		fatal(err)
	}
	logger, closeLog, err = opts.newLogger()
	if err != nil {
		fatal(err)
	}
	slog.SetDefault(logger)

	if opts.snapshot != "" {
		err := writeSnapshot(config, opts.snapshot, logger)
		closeLog()
		if err != nil {
			fatal(err)
		}
		return opts, config, nil, nil, false
	}
	return opts, config, logger, closeLog, true
}

func terminalApp(opts options, config game.RunConfig, logger *slog.Logger) *ui.App {
	return ui.NewApp(ui.AppConfig{
		Version:     version,
		Commit:      commit,
		BuildDate:   date,
		Run:         config,
		SnapshotDir: opts.snapshotDir,
		Logger:      logger,
	})
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
