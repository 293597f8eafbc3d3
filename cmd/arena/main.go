// Copyright 2025 The Arena Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the arena game catalog viewer.

Arena fetches a catalog of game reviews once per session and lets you search
it by title. Matching records are grouped by title into cards that list every
platform the game shipped on, its rating, genre and an Editor's Choice marker.
A suggestion panel under the search box offers matching titles while typing,
and results can be sorted by score.

# Usage

Start the interactive viewer:

	arena

Read the catalog from a local file and start sorted by best score:

	arena -source ./games.json -sort desc

Run the line based CLI with debug logging:

	arena -c -d

Serve a session to another process over msgpack:

	arena -ipc

# Modes

The default mode is a full screen terminal UI. The search box starts
focused; tab moves focus between the search box and the results list,
the arrow keys walk the suggestion panel and enter picks a suggestion.
ctrl+s (or s while the results list is focused) cycles the sort policy
through none, ascending and descending. Logs go to
$XDG_STATE_HOME/arena/arena.log so they do not fight the UI for the
terminal.

CLI mode (-c) reads one line at a time from stdin. A plain line replaces the
search text; lines starting with ':' are commands:

	:sort asc|desc|none
	:pick N
	:focus
	:blur
	:clear
	:q

IPC mode (-ipc) speaks MessagePack over stdin/stdout, one request per UI
event and one snapshot per response. See package server for the protocol.

# Data

The catalog is a JSON array of review records. The first element of the
array is a header and is never shown:

	[
	  {"title": "...", "platform": "...", "score": 0, "genre": "...", "editors_choice": "N"},
	  {"title": "Halo", "platform": "Xbox", "score": 9, "genre": "FPS", "editors_choice": "Y"}
	]

If the fetch fails the error is logged and the session continues with an
empty catalog. There is no retry.

# Configuration

Settings are read from $XDG_CONFIG_HOME/arena/config.toml, created with
defaults the first time it is missing:

	[source]
	url = "https://s3-ap-southeast-1.amazonaws.com/he-public-data/gamesarena274f2bf.json"
	timeout = "15s"

	[ui]
	default_sort = ""
	max_suggestions = 8
	did_you_mean_distance = 3
	alt_screen = true

	[server]
	max_request_bytes = 4096

ARENA_SOURCE_URL, ARENA_SOURCE_TIMEOUT and ARENA_DEFAULT_SORT override the
file. Command line flags override both.

# Command Line Flags

	-version
	    Show current version
	-d  Enable debug mode with detailed logging
	-c  Run the line based CLI instead of the TUI
	-ipc
	    Serve a session over msgpack on stdin/stdout
	-source string
	    Catalog URL or file path
	-config string
	    Path to a config file
	-sort string
	    Initial sort policy: "", asc or desc
	-timeout duration
	    Fetch timeout
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bastiangx/arena/internal/cli"
	"github.com/bastiangx/arena/internal/logger"
	"github.com/bastiangx/arena/internal/tui"
	"github.com/bastiangx/arena/pkg/catalog"
	"github.com/bastiangx/arena/pkg/config"
	"github.com/bastiangx/arena/pkg/query"
	"github.com/bastiangx/arena/pkg/server"
	"github.com/bastiangx/arena/pkg/session"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "arena"
)

// sigHandler is a simple handler for OS signals to exit normally.
// The TUI handles ctrl+c itself and does not install it.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main resolves config and hands off to the TUI, the CLI or the IPC server.
func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the line based CLI instead of the TUI")
	ipcMode := flag.Bool("ipc", false, "Serve a session over msgpack on stdin/stdout")
	source := flag.String("source", "", "Catalog URL or file path (default from config)")
	configPath := flag.String("config", "", "Path to a config file")
	sortFlag := flag.String("sort", "", `Initial sort policy: "", asc or desc (default from config)`)
	timeout := flag.Duration("timeout", 0, "Fetch timeout (default from config)")

	flag.Parse()

	if *showVersion {
		banner := logger.Banner()
		banner.Print("")
		banner.Print("[ Games Arena ] Search and sort game reviews")
		banner.Print("", "version", Version)
		banner.Print("")
		banner.Print("use -h or --help to see available options")
		banner.Print("Default catalog", "source", catalog.DefaultSourceURL)
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *cliMode && *ipcMode {
		log.Fatal("-c and -ipc are mutually exclusive")
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			cfg.Source.URL = *source
		case "sort":
			cfg.UI.DefaultSort = *sortFlag
		case "timeout":
			cfg.Source.Timeout = config.Duration{Duration: *timeout}
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	sort := cfg.SortPolicy()
	loader := catalog.NewLoader(cfg.Source.URL, cfg.Source.Timeout.Duration)
	log.Debug("Catalog source", "source", loader.Source(), "timeout", cfg.Source.Timeout.Duration, "sort", sort)

	switch {
	case *ipcMode:
		sigHandler()
		runServer(loader, cfg, sort)
	case *cliMode:
		sigHandler()
		log.SetReportTimestamp(false)
		runCLI(loader, cfg, sort)
	default:
		if err := runTUI(loader, cfg, sort); err != nil {
			log.Fatalf("TUI error: %v", err)
		}
	}
}

// loadState performs the single fetch and folds it into a fresh session.
func loadState(loader *catalog.Loader, sort query.SortPolicy, l *log.Logger) session.State {
	start := time.Now()
	ds := catalog.LoadOrEmpty(context.Background(), loader, l)
	log.Debug("Catalog loaded", "records", ds.Len(), "took", time.Since(start))
	return session.Reduce(session.New(sort), session.Loaded{Dataset: ds})
}

func runServer(loader *catalog.Loader, cfg *config.Config, sort query.SortPolicy) {
	log.Debug("spawning IPC")
	state := loadState(loader, sort, logger.New("ipc"))

	srv := server.NewServer(state, cfg, os.Stdin, os.Stdout)
	if err := srv.Start(); err != nil {
		log.Fatalf("IPC server error: %v", err)
	}
}

func runCLI(loader *catalog.Loader, cfg *config.Config, sort query.SortPolicy) {
	out := logger.New("")
	state := loadState(loader, sort, out)

	inputHandler := cli.NewInputHandler(state, os.Stdin, out, cfg.UI.MaxSuggestions, cfg.UI.DidYouMeanDistance)
	if err := inputHandler.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

func runTUI(loader *catalog.Loader, cfg *config.Config, sort query.SortPolicy) error {
	logPath, closer, err := logger.ToStateFile(AppName)
	if err != nil {
		log.Warnf("Logging to stderr: %v", err)
	} else {
		defer func() {
			log.SetOutput(os.Stderr)
			closer.Close()
		}()
		log.Debugf("Logging to %s", logPath)
	}

	return tui.Run(tui.Params{
		Load: func() catalog.Dataset {
			return catalog.LoadOrEmpty(context.Background(), loader, log.Default())
		},
		Sort:           sort,
		MaxSuggestions: cfg.UI.MaxSuggestions,
		HintDistance:   cfg.UI.DidYouMeanDistance,
		AltScreen:      cfg.UI.AltScreen,
	})
}
