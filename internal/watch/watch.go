// Package watch re-solves days whenever their input files change.
package watch

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pymaldebaran/adventofcode2022/pkg/log"
)

// DefaultDebounce is the quiet period after the last write before solving.
const DefaultDebounce = 200 * time.Millisecond

// SolveFunc solves the given days. No days means every day.
type SolveFunc func(ctx context.Context, days []int) error

// Config holds configuration options for the watcher.
type Config struct {
	// Dir is the directory holding the input files.
	Dir string

	// Days restricts watching to these days. Empty watches every input file.
	Days []int

	// Debounce is the delay to wait after a file change before solving.
	// Default: 200 milliseconds
	Debounce time.Duration

	// DayOf maps a changed file to its day. Files it rejects are ignored.
	DayOf func(path string) (int, bool)
}

// Watcher runs a SolveFunc once, then again for every day whose input
// changes, until its context is canceled.
type Watcher struct {
	cfg    Config
	solve  SolveFunc
	logger log.Logger

	mu      sync.Mutex
	pending map[int]bool
}

// New creates a watcher. A nil logger discards everything.
func New(cfg Config, solve SolveFunc, logger log.Logger) *Watcher {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		cfg:     cfg,
		solve:   solve,
		logger:  logger,
		pending: make(map[int]bool),
	}
}

// Run blocks until ctx is canceled. Solve errors are logged, not returned;
// only a failure to watch Dir ends Run early.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.cfg.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.cfg.Dir, err)
	}

	w.logger.Info("watching inputs",
		log.String("dir", w.cfg.Dir),
		log.Ints("days", w.cfg.Days),
		log.Duration("debounce", w.cfg.Debounce),
	)
	w.run(ctx, w.cfg.Days)

	debounce := time.NewTimer(w.cfg.Debounce)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			day, ok := w.dayOf(event.Name)
			if !ok {
				continue
			}
			w.logger.Debug("input changed", log.String("file", event.Name), log.Int("day", day))
			w.mark(day)
			debounce.Reset(w.cfg.Debounce)

		case <-debounce.C:
			if days := w.drain(); len(days) > 0 {
				w.run(ctx, days)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) run(ctx context.Context, days []int) {
	if err := w.solve(ctx, days); err != nil && ctx.Err() == nil {
		w.logger.Error("solve failed", log.Ints("days", days), log.Err(err))
	}
}

func (w *Watcher) dayOf(path string) (int, bool) {
	if w.cfg.DayOf == nil {
		return 0, false
	}
	day, ok := w.cfg.DayOf(path)
	if !ok {
		return 0, false
	}
	if len(w.cfg.Days) > 0 && !slices.Contains(w.cfg.Days, day) {
		return 0, false
	}
	return day, true
}

func (w *Watcher) mark(day int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[day] = true
}

// drain returns the pending days in ascending order and clears them.
func (w *Watcher) drain() []int {
	w.mu.Lock()
	defer w.mu.Unlock()

	days := make([]int, 0, len(w.pending))
	for d := range w.pending {
		days = append(days, d)
	}
	clear(w.pending)
	slices.Sort(days)
	return days
}
