// Copyright 2025 The wordrank Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordrank guess ranking CLI and IPC server.

wordrank scores every candidate guess for a five-letter word game against the
full list of possible solutions. A candidate's score is the sum of squared
feedback-group sizes: for each solution the candidate's letter marks are
computed, equal mark patterns are tallied, and the tally counts are squared
and summed. A low score means the guess splits the remaining solutions into
many small groups, so it is the better opener.

# Usage

Rank the default lists and show the ten best guesses:

	wordrank

Use custom word lists and show the twenty best:

	wordrank -words allowed.txt -targets solutions.txt -top 20

Only rank candidates starting with a prefix, show everything:

	wordrank -prefix cr -all

Run interactively, ranking one prefix per line:

	wordrank -c

Start the msgpack IPC server for editor/tool integration:

	wordrank -serve

# Word lists

Lists are plain text with each word wrapped in double quotes, for example:

	"crane" "slate" "adieu"

Entries that are not exactly five characters between quotes are skipped with
a warning. Scoring is case-sensitive, so keep both lists in one case.

# Configuration

Runtime defaults live in a TOML file, auto-created on first run:

	[ranker]
	workers = 0        # 0 means one worker per CPU
	show_count = 10

	[dict]
	words_file = "words.txt"
	targets_file = "targets.txt"

	[cli]
	show_all = false

Flags override the config file; the -config flag points at an alternate file.

# IPC protocol

Server mode speaks msgpack over stdin/stdout. A request selects a prefix and
a result limit; the response carries (word, score) pairs ascending by score
with timing information. See the server package for message layouts.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/wordrank/internal/cli"
	"github.com/bastiangx/wordrank/internal/utils"
	"github.com/bastiangx/wordrank/pkg/config"
	"github.com/bastiangx/wordrank/pkg/dictionary"
	"github.com/bastiangx/wordrank/pkg/rank"
	"github.com/bastiangx/wordrank/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "wordrank"
	gh      = "https://github.com/bastiangx/wordrank"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wordrank ] Ranks five-letter guesses by how hard they split the field!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// main wires config, word lists and the engine together and picks a mode.
// The ranking logic itself lives in the library packages.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run interactive CLI mode")
	serveMode := flag.Bool("serve", false, "Run msgpack IPC server mode")
	configPath := flag.String("config", "", "Path to an alternate config.toml")
	wordsFile := flag.String("words", "", "Candidate word list (quoted format)")
	targetsFile := flag.String("targets", "", "Solution word list (quoted format)")
	topCount := flag.Int("top", 0, "Number of best guesses to show")
	prefix := flag.String("prefix", "", "Only rank candidates with this prefix")
	showAll := flag.Bool("all", false, "Show every candidate, not just the best")
	workers := flag.Int("workers", 0, "Worker count (0 = one per CPU)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, _ := config.LoadConfigWithPriority(*configPath)
	if activePath != "" {
		log.Debugf("Using config at: %s", utils.GetAbsolutePath(activePath))
	}

	if *wordsFile == "" {
		*wordsFile = cfg.Dict.WordsFile
	}
	if *targetsFile == "" {
		*targetsFile = cfg.Dict.TargetsFile
	}
	if *topCount <= 0 {
		*topCount = cfg.Ranker.ShowCount
	}
	if *workers <= 0 {
		*workers = cfg.Ranker.Workers
	}

	candidates, targets, err := dictionary.LoadPair(*wordsFile, *targetsFile)
	if err != nil {
		log.Fatalf("Failed to load word lists: %v", err)
	}
	log.Debugf("Loaded %d candidates, %d targets", len(candidates), len(targets))

	index := dictionary.NewIndex(candidates)
	engine := rank.NewEngine(*workers)

	switch {
	case *serveMode:
		srv := server.NewServer(engine, index, targets, *topCount)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server failed: %v", err)
		}

	case *cliMode:
		handler := cli.NewInputHandler(engine, index, targets, *topCount)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI failed: %v", err)
		}

	default:
		selected := index.FilterPrefix(*prefix)
		if len(selected) == 0 {
			log.Fatalf("No candidates match prefix %q", *prefix)
		}

		scores, err := engine.ScoreAll(selected, targets)
		if err != nil {
			log.Fatalf("Scoring failed: %v", err)
		}

		show := *topCount
		if *showAll || cfg.CLI.ShowAll {
			show = len(selected)
		}
		cli.NewRenderer().Render(rank.Best(selected, scores, show))
	}
}
