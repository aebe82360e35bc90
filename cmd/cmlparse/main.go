/*
Command cmlparse parses Chart Markup Language documents and prints a summary
of each one.

Usage:

	cmlparse [-config path] [-format text|yaml|json] [-watch] [-history n] file.cml...

With -watch the files are re-parsed on the configured cron schedule whenever
their content changes. When a SQLite path is configured every parse is
recorded, and -history n prints the n most recent runs.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/markdicksonjr/chart-markup-language/internal/config"
	"github.com/markdicksonjr/chart-markup-language/internal/parser"
	"github.com/markdicksonjr/chart-markup-language/internal/recorder"
	"github.com/markdicksonjr/chart-markup-language/internal/report"
	"github.com/markdicksonjr/chart-markup-language/internal/scheduler"
)

var (
	configPath = flag.String("config", defaultConfigPath(), "Path to the YAML config file")
	format     = flag.String("format", "", "Output format: text, yaml or json (overrides config)")
	watch      = flag.Bool("watch", false, "Re-parse files when they change")
	history    = flag.Int("history", -1, "Print the n most recent recorded parse runs (overrides config)")
)

func defaultConfigPath() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "configs/config.yaml"
}

func main() {
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *history >= 0 {
		cfg.Output.History = *history
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("log level")
	}
	zerolog.SetGlobalLevel(level)

	files := flag.Args()
	if len(files) == 0 && cfg.Output.History == 0 {
		fmt.Fprintln(os.Stderr, "usage: cmlparse [-config path] [-format text|yaml|json] [-watch] [-history n] file.cml...")
		os.Exit(2)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log.Logger)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}
	defer rec.Close()

	app := &app{
		parser: parser.New(log.Logger),
		rec:    rec,
		format: cfg.Output.Format,
		out:    os.Stdout,
		log:    log.Logger,
	}

	code := 0
	switch {
	case *watch && len(files) > 0:
		code = app.watch(cfg.Watch.Cron, files)
	case len(files) > 0:
		code = app.parseAll(files)
	}
	if cfg.Output.History > 0 {
		if err := app.printHistory(cfg.Output.History); err != nil {
			log.Error().Err(err).Msg("print history")
			code = 1
		}
	}
	if code != 0 {
		rec.Close()
		os.Exit(code)
	}
}

type app struct {
	parser *parser.Parser
	rec    recorder.Recorder
	format string
	out    io.Writer
	log    zerolog.Logger
}

// parseAll parses every file once and prints the summaries together.
// It returns the process exit code.
func (a *app) parseAll(files []string) int {
	code := 0
	summaries := make([]report.Summary, 0, len(files))
	for _, path := range files {
		res := parseFile(a.parser, path)
		if s, ok := a.handle(res, "cli"); ok {
			summaries = append(summaries, s)
		} else {
			code = 1
		}
	}
	if len(summaries) == 0 {
		return code
	}
	if err := a.print(summaries); err != nil {
		a.log.Error().Err(err).Msg("render report")
		return 1
	}
	return code
}

// watch prints each file now and again whenever it changes, until SIGINT
// or SIGTERM.
func (a *app) watch(schedule string, files []string) int {
	w, err := scheduler.NewWatcher(schedule, files, a.parser, func(res scheduler.Result) {
		if s, ok := a.handle(res, "watch"); ok {
			if err := a.print([]report.Summary{s}); err != nil {
				a.log.Error().Err(err).Msg("render report")
			}
		}
	}, a.log)
	if err != nil {
		a.log.Error().Err(err).Msg("init watcher")
		return 1
	}

	w.Check()
	w.Start()
	defer w.Stop()

	a.log.Info().Str("cron", schedule).Msg("watching; press Ctrl+C to stop")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	a.log.Info().Msg("shutdown signal received, stopping")
	return 0
}

// handle records a parse result and returns its summary when parsing succeeded.
func (a *app) handle(res scheduler.Result, trigger string) (report.Summary, bool) {
	evt := &recorder.ParseEvent{
		Path:     res.Path,
		Hash:     res.Hash,
		Trigger:  trigger,
		Duration: res.Duration,
	}
	var summary report.Summary
	if res.Err != nil {
		evt.Error = res.Err.Error()
		event := a.log.Error().Err(res.Err).Str("path", res.Path)
		var fe *parser.FormatError
		if errors.As(res.Err, &fe) && fe.Line > 0 {
			event = event.Int("line", fe.Line)
		}
		event.Msg("parse failed")
	} else {
		summary = report.Summarize(res.Path, res.Chart)
		evt.Title = summary.Title
		evt.Symbol = summary.Symbol
		evt.Bars = len(res.Chart.Bars)
		evt.Drawings = len(res.Chart.Drawings)
		evt.Indicators = len(res.Chart.Indicators)
	}
	if err := a.rec.RecordParse(evt); err != nil {
		a.log.Error().Err(err).Msg("record parse")
	}
	return summary, res.Err == nil
}

func (a *app) print(summaries []report.Summary) error {
	out, err := report.Render(a.format, summaries)
	if err != nil {
		return err
	}
	_, err = io.WriteString(a.out, out)
	return err
}

func (a *app) printHistory(limit int) error {
	runs, err := a.rec.Recent(limit)
	if err != nil {
		return err
	}
	for _, r := range runs {
		status := "ok"
		if r.Error != "" {
			status = r.Error
		}
		fmt.Fprintf(a.out, "%s  %-5s  %s  bars=%d drawings=%d indicators=%d  %s  %s\n",
			r.Timestamp.Format(time.RFC3339), r.Trigger, r.Path,
			r.Bars, r.Drawings, r.Indicators, r.Duration, status)
	}
	return nil
}

// parseFile reads and parses path, hashing the bytes it read.
func parseFile(p *parser.Parser, path string) scheduler.Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return scheduler.Result{Path: path, Err: &parser.FileAccessError{Path: path, Err: err}}
	}
	start := time.Now()
	chart, err := p.Parse(string(data))
	return scheduler.Result{
		Path:     path,
		Hash:     scheduler.ContentHash(data),
		Chart:    chart,
		Err:      err,
		Duration: time.Since(start),
	}
}
