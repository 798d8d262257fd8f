package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/pymaldebaran/adventofcode2022/internal/adapters/fs"
)

// recorder collects the days passed to every solve call.
type recorder struct {
	calls chan []int
	err   error
}

func newRecorder() *recorder {
	return &recorder{calls: make(chan []int, 16)}
}

func (r *recorder) solve(ctx context.Context, days []int) error {
	r.calls <- days
	return r.err
}

func (r *recorder) next(t *testing.T) []int {
	t.Helper()
	select {
	case days := <-r.calls:
		return days
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a solve")
		return nil
	}
}

func startWatcher(t *testing.T, cfg Config, rec *recorder) (cancel func()) {
	t.Helper()
	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)

	w := New(cfg, rec.solve, nil)
	go func() { done <- w.Run(ctx) }()

	return func() {
		stop()
		if err := <-done; err != nil {
			t.Errorf("Run() returned %v", err)
		}
	}
}

func writeInput(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestWatcher_ResolvesChangedDay(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	rec := newRecorder()
	cancel := startWatcher(t, Config{Dir: dir, Debounce: 20 * time.Millisecond, DayOf: fs.DayOf}, rec)

	if got := rec.next(t); got != nil {
		t.Errorf("initial solve days = %v, want nil", got)
	}

	writeInput(t, dir, "day03.txt", "vJrwpWtwJgWrhcsFMMfFFhFp")

	if diff := cmp.Diff([]int{3}, rec.next(t)); diff != "" {
		t.Errorf("solve days mismatch (-want +got):\n%s", diff)
	}
	cancel()
}

func TestWatcher_DebouncesBurst(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	rec := newRecorder()
	cancel := startWatcher(t, Config{Dir: dir, Debounce: 200 * time.Millisecond, DayOf: fs.DayOf}, rec)
	rec.next(t)

	writeInput(t, dir, "day02.txt", "A Y")
	writeInput(t, dir, "day01.txt", "1000")
	writeInput(t, dir, "day02.txt", "A Y\nB X")

	if diff := cmp.Diff([]int{1, 2}, rec.next(t)); diff != "" {
		t.Errorf("solve days mismatch (-want +got):\n%s", diff)
	}
	cancel()
}

func TestWatcher_IgnoresUnwatchedFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	rec := newRecorder()
	cfg := Config{Dir: dir, Days: []int{4}, Debounce: 20 * time.Millisecond, DayOf: fs.DayOf}
	cancel := startWatcher(t, cfg, rec)

	if diff := cmp.Diff([]int{4}, rec.next(t)); diff != "" {
		t.Errorf("initial solve days mismatch (-want +got):\n%s", diff)
	}

	writeInput(t, dir, "notes.md", "# scratch")
	writeInput(t, dir, "day01.txt", "1000")
	writeInput(t, dir, "day04.txt", "2-4,6-8")

	if diff := cmp.Diff([]int{4}, rec.next(t)); diff != "" {
		t.Errorf("solve days mismatch (-want +got):\n%s", diff)
	}
	cancel()
}

func TestWatcher_SolveErrorKeepsWatching(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	rec := newRecorder()
	rec.err = errors.New("boom")
	cancel := startWatcher(t, Config{Dir: dir, Debounce: 20 * time.Millisecond, DayOf: fs.DayOf}, rec)
	rec.next(t)

	writeInput(t, dir, "day01.txt", "1000")
	if diff := cmp.Diff([]int{1}, rec.next(t)); diff != "" {
		t.Errorf("solve days mismatch (-want +got):\n%s", diff)
	}
	cancel()
}

func TestWatcher_MissingDir(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := New(Config{Dir: filepath.Join(t.TempDir(), "absent"), DayOf: fs.DayOf}, newRecorder().solve, nil)
	if err := w.Run(context.Background()); err == nil {
		t.Error("Run() expected error for missing directory")
	}
}
