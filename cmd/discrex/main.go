// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

// Command discrex prints a regular expression separating two word lists,
// or benchmarks every pair of named word lists with the bench subcommand.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/woozymasta/discrex"
	"github.com/woozymasta/discrex/internal/harness"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command line and returns process exit code.
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "bench" {
		return runBench(args[1:], stdout, stderr)
	}

	return runCompute(args, stdout, stderr)
}

// fileList is a repeatable path flag.
type fileList []string

func (f *fileList) String() string {
	return strings.Join(*f, ",")
}

func (f *fileList) Set(value string) error {
	if value == "" {
		return errors.New("empty path")
	}

	*f = append(*f, value)
	return nil
}

// runCompute prints one verified pattern for include and exclude word files.
func runCompute(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("discrex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "usage: discrex -include FILE [-include FILE...] [-exclude FILE...] [-rewrite MODE] [-fragments] [-v]")
		_, _ = fmt.Fprintln(stderr, "       discrex bench [-lists FILE] [-bests FILE] [-workers N] [-dry-run] [-v]")
		fs.PrintDefaults()
	}

	var include, exclude fileList
	fs.Var(&include, "include", "file with words the pattern must match (repeatable)")
	fs.Var(&exclude, "exclude", "file with words the pattern must not match (repeatable)")
	rewrite := fs.String("rewrite", string(discrex.RewriteFixedPoint), "shrink mode: fixed-point, single-pass or none")
	fragments := fs.Bool("fragments", false, "print locked fragments after the pattern")
	verbose := fs.Bool("v", false, "debug logging to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	if len(include) == 0 || fs.NArg() > 0 {
		fs.Usage()
		return exitUsage
	}

	logger := newLogger(stderr, *verbose)

	includeWords, err := discrex.LoadWordsFiles(include...)
	if err != nil {
		logger.Error("load include words", slog.Any("error", err))
		return exitError
	}

	excludeWords, err := discrex.LoadWordsFiles(exclude...)
	if err != nil {
		logger.Error("load exclude words", slog.Any("error", err))
		return exitError
	}

	p, err := discrex.NewPattern(includeWords, excludeWords, discrex.Options{
		Logger:  logger,
		Rewrite: discrex.RewriteMode(*rewrite),
	})
	if err != nil {
		logger.Error("compute pattern", slog.Any("error", err))
		return exitError
	}

	_, _ = fmt.Fprintln(stdout, p.String())
	if *fragments {
		for _, f := range p.Fragments() {
			_, _ = fmt.Fprintf(stdout, "%s\t%.3f\n", f.Value, f.Cost)
		}
	}

	return exitOK
}

// runBench benchmarks every ordered pair of word lists and reports against stored bests.
func runBench(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("discrex bench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	listsPath := fs.String("lists", "", "YAML word lists file (default: built-in lists)")
	bestsPath := fs.String("bests", "bests.json", "best results JSON file, empty keeps results in memory")
	workers := fs.Int("workers", 0, "concurrent pairs (default: GOMAXPROCS)")
	dryRun := fs.Bool("dry-run", false, "do not update best results file")
	verbose := fs.Bool("v", false, "debug logging to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	if fs.NArg() > 0 {
		fs.Usage()
		return exitUsage
	}

	logger := newLogger(stderr, *verbose)

	lists := harness.BuiltinLists()
	var opts discrex.Options
	if *listsPath != "" {
		cfg, err := harness.LoadConfig(*listsPath)
		if err != nil {
			logger.Error("load lists", slog.Any("error", err))
			return exitError
		}

		lists = cfg.Lists
		opts = cfg.Options
	}

	if *verbose {
		opts.Logger = logger
	}

	store, err := harness.OpenStore(*bestsPath)
	if err != nil {
		logger.Error("open store", slog.Any("error", err))
		return exitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := &harness.Runner{
		Lists:   lists,
		Store:   store,
		Logger:  logger,
		Options: opts,
		Workers: *workers,
	}

	results, runErr := runner.Run(ctx)
	if results == nil && runErr != nil {
		logger.Error("bench", slog.Any("error", runErr))
		return exitError
	}

	if err := harness.WriteReport(stdout, results); err != nil {
		logger.Error("write report", slog.Any("error", err))
		return exitError
	}

	if !*dryRun {
		if err := store.Save(); err != nil {
			logger.Error("save store", slog.Any("error", err))
			return exitError
		}
	}

	if runErr != nil {
		return exitError
	}

	return exitOK
}

// newLogger returns text logger on w, debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
