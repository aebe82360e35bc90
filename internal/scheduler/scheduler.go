// Package scheduler re-parses watched CML documents on a cron schedule.
package scheduler

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/markdicksonjr/chart-markup-language/internal/model"
	"github.com/markdicksonjr/chart-markup-language/internal/parser"
)

// Result is the outcome of parsing one watched file.
type Result struct {
	Path     string
	Hash     string
	Chart    *model.Chart // nil when Err is set
	Err      error
	Duration time.Duration
}

// Handler receives a Result each time a watched file changes.
type Handler func(Result)

// Watcher polls a fixed set of files and re-parses the ones whose content
// hash changed since the previous tick.
type Watcher struct {
	Cron    *cron.Cron
	parser  *parser.Parser
	paths   []string
	handler Handler
	log     zerolog.Logger

	mu     sync.Mutex
	hashes map[string]string
}

// NewWatcher registers a check of paths on the cron schedule (six fields, with
// seconds). Nothing runs until Start.
func NewWatcher(schedule string, paths []string, p *parser.Parser, handler Handler, logger zerolog.Logger) (*Watcher, error) {
	w := &Watcher{
		Cron:    cron.New(cron.WithSeconds()),
		parser:  p,
		paths:   paths,
		handler: handler,
		log:     logger,
		hashes:  make(map[string]string, len(paths)),
	}
	if _, err := w.Cron.AddFunc(schedule, w.tick); err != nil {
		return nil, fmt.Errorf("register watch task: %w", err)
	}
	return w, nil
}

// Start starts the cron scheduler.
func (w *Watcher) Start() {
	w.Cron.Start()
	w.log.Info().Int("files", len(w.paths)).Msg("watcher started")
}

// Stop stops the scheduler and waits for a running check to finish.
func (w *Watcher) Stop() {
	<-w.Cron.Stop().Done()
	w.log.Info().Msg("watcher stopped")
}

// Check runs one pass over the watched files and returns how many changed.
func (w *Watcher) Check() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	changed := 0
	for _, path := range w.paths {
		if w.checkFile(path) {
			changed++
		}
	}
	return changed
}

func (w *Watcher) tick() {
	if n := w.Check(); n > 0 {
		w.log.Debug().Int("changed", n).Msg("watch pass")
	}
}

// checkFile reports whether path changed. An unreadable file is reported
// once until it becomes readable again.
func (w *Watcher) checkFile(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if prev, seen := w.hashes[path]; seen && prev == "" {
			return false
		}
		w.hashes[path] = ""
		w.handler(Result{Path: path, Err: &parser.FileAccessError{Path: path, Err: err}})
		return true
	}

	hash := ContentHash(data)
	if w.hashes[path] == hash {
		return false
	}
	w.hashes[path] = hash

	start := time.Now()
	chart, err := w.parser.Parse(string(data))
	w.handler(Result{
		Path:     path,
		Hash:     hash,
		Chart:    chart,
		Err:      err,
		Duration: time.Since(start),
	})
	return true
}

// ContentHash returns the hex sha256 of data.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
