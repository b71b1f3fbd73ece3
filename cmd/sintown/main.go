// Sintown is a remake of the 1981 adult text adventure, played in the
// terminal. Usage: sintown [--version] [--plain] [--script <file>]
// [--trace] [--seed <n>] [--game <dir>] [--load <slot>]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nmorales/sintown/cli"
	"github.com/nmorales/sintown/config"
	"github.com/nmorales/sintown/engine"
	"github.com/nmorales/sintown/engine/state"
	"github.com/nmorales/sintown/gamedata"
	"github.com/nmorales/sintown/loader"
	"github.com/nmorales/sintown/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "print version and exit")
		plain       = flag.Bool("plain", false, "plain terminal output instead of the TUI")
		trace       = flag.Bool("trace", false, "print state after each turn (plain mode)")
		scriptFile  = flag.String("script", "", "play commands from a file")
		seed        = flag.Int64("seed", 0, "RNG seed (0 = time-based)")
		gameDir     = flag.String("game", "", "world directory (default: embedded game)")
		loadSlot    = flag.String("load", "", "resume from a save slot")
		configPath  = flag.String("config", config.DefaultPath(), "config file")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("sintown %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *gameDir == "" {
		*gameDir = cfg.GameDir
	}
	if *seed == 0 {
		cfg.Seed = pickSeed(cfg.Seed)
	} else {
		cfg.Seed = *seed
	}
	if *plain {
		cfg.Plain = true
	}

	defs, err := loadWorld(*gameDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(defs, cfg.Seed)

	// Script mode: read commands from the file, force plain, echo input.
	if *scriptFile != "" {
		f, err := os.Open(*scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(eng, defs)
		c.SaveDir = cfg.SaveDir
		c.In = f
		c.EchoInput = true
		c.NoDelay = true
		c.Trace = *trace
		c.Run()
		return
	}

	if cfg.Plain || !isTerminal() {
		c := cli.New(eng, defs)
		c.SaveDir = cfg.SaveDir
		c.Trace = *trace
		if *loadSlot != "" {
			if err := c.LoadGame(*loadSlot); err != nil {
				fmt.Fprintf(os.Stderr, "Error loading save: %v\n", err)
				os.Exit(1)
			}
		}
		c.Run()
		return
	}

	if *loadSlot != "" {
		c := cli.New(eng, defs)
		c.SaveDir = cfg.SaveDir
		c.Out = os.Stderr
		if err := c.LoadGame(*loadSlot); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading save: %v\n", err)
			os.Exit(1)
		}
	}
	if err := tui.Run(eng, defs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadWorld compiles the world, either from an external directory or
// from the embedded game data.
func loadWorld(dir string) (*state.Defs, error) {
	if dir != "" {
		return loader.Load(dir)
	}
	return loader.LoadFS(gamedata.FS)
}

func pickSeed(configured int64) int64 {
	if configured != 0 {
		return configured
	}
	return time.Now().UnixNano()
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
