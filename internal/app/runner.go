// Package app orchestrates solving: it loads inputs through ports.InputLoader,
// runs the registered solvers and hands results to a ports.Renderer.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pymaldebaran/adventofcode2022/internal/domain"
	"github.com/pymaldebaran/adventofcode2022/internal/ports"
	"github.com/pymaldebaran/adventofcode2022/internal/puzzle"
	"github.com/pymaldebaran/adventofcode2022/pkg/log"
)

// RunnerConfig contains configuration for the runner.
type RunnerConfig struct {
	// Parts to solve, in order. Empty means both.
	Parts []puzzle.Part

	// Sample solves the embedded example input instead of the real one.
	Sample bool
	// Verify checks every solver against its sample answers first.
	Verify bool
	// Instructions renders the puzzle notes before the answers.
	Instructions bool

	// Parallelism bounds the number of days solved at once.
	Parallelism int
}

// Result is everything produced for one day.
type Result struct {
	Solver  puzzle.Solver
	Checks  []puzzle.Check
	Answers []puzzle.Answer
	Elapsed time.Duration
}

// Runner solves days and reports their results.
type Runner struct {
	config   RunnerConfig
	registry *puzzle.Registry
	loader   ports.InputLoader
	renderer ports.Renderer
	logger   log.Logger
}

// NewRunner creates a new runner with the given dependencies.
func NewRunner(
	config RunnerConfig,
	registry *puzzle.Registry,
	loader ports.InputLoader,
	renderer ports.Renderer,
	logger log.Logger,
) *Runner {
	if len(config.Parts) == 0 {
		config.Parts = puzzle.Parts
	}
	if config.Parallelism <= 0 {
		config.Parallelism = 1
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Runner{
		config:   config,
		registry: registry,
		loader:   loader,
		renderer: renderer,
		logger:   logger,
	}
}

// Run solves days, reports every result produced and returns the first error.
// No days means every registered day.
func (r *Runner) Run(ctx context.Context, days []int) error {
	results, err := r.Solve(ctx, days)
	if rerr := r.Report(results); rerr != nil && err == nil {
		err = rerr
	}
	return err
}

// Solve solves days concurrently, at most Parallelism at a time, and returns
// the results in the order of days. The first error cancels the remaining
// days; results of days that did complete are still returned.
func (r *Runner) Solve(ctx context.Context, days []int) ([]Result, error) {
	if len(days) == 0 {
		days = r.registry.Days()
	}

	results := make([]Result, len(days))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Parallelism)

	for i, day := range days {
		i, day := i, day
		g.Go(func() error {
			res, err := r.SolveDay(gctx, day)
			results[i] = res
			return err
		})
	}

	err := g.Wait()
	return results, err
}

// SolveDay verifies (when configured) and solves every configured part of day.
// On a sample mismatch the returned Result holds the failing checks.
func (r *Runner) SolveDay(ctx context.Context, day int) (Result, error) {
	solver, err := r.registry.Lookup(day)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	res := Result{Solver: solver}

	if r.config.Verify {
		checks, err := r.verify(solver)
		res.Checks = checks
		if err != nil {
			return res, err
		}
	}

	input, err := r.input(ctx, solver)
	if err != nil {
		return res, err
	}

	for _, part := range r.config.Parts {
		answer, err := solver.Solve(input, part)
		if err != nil {
			return res, fmt.Errorf("day %d %s: %w", day, part, err)
		}
		res.Answers = append(res.Answers, answer)
	}

	res.Elapsed = time.Since(start)
	r.logger.Debug("day solved",
		log.Int("day", day),
		log.Int("parts", len(res.Answers)),
		log.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}

// Verify solves the sample input of day and compares each configured part
// with the published answer. It returns ErrSampleMismatch when any differ.
func (r *Runner) Verify(ctx context.Context, day int) ([]puzzle.Check, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	solver, err := r.registry.Lookup(day)
	if err != nil {
		return nil, err
	}
	return r.verify(solver)
}

func (r *Runner) verify(solver puzzle.Solver) ([]puzzle.Check, error) {
	sample := solver.Sample()

	var (
		checks []puzzle.Check
		failed []puzzle.Part
	)
	for _, part := range r.config.Parts {
		answer, err := solver.Solve(sample.Input, part)
		if err != nil {
			return checks, fmt.Errorf("day %d %s sample: %w", solver.Day(), part, err)
		}
		c := puzzle.Check{Day: solver.Day(), Part: part, Got: answer.Value, Want: sample.Want(part)}
		checks = append(checks, c)
		if !c.OK() {
			failed = append(failed, part)
			r.logger.Warn("sample mismatch",
				log.Int("day", c.Day),
				log.Int("part", int(part)),
				log.Int("got", c.Got),
				log.Int("want", c.Want),
			)
		}
	}

	if len(failed) > 0 {
		return checks, fmt.Errorf("day %d %v: %w", solver.Day(), failed, domain.ErrSampleMismatch)
	}
	return checks, nil
}

func (r *Runner) input(ctx context.Context, solver puzzle.Solver) (string, error) {
	if r.config.Sample {
		return solver.Sample().Input, nil
	}
	input, err := r.loader.Load(ctx, solver.Day())
	if err != nil {
		return "", err
	}
	r.logger.Debug("input loaded",
		log.Int("day", solver.Day()),
		log.String("path", r.loader.Path(solver.Day())),
	)
	return input, nil
}

// Report renders results in order. Results never started are skipped.
func (r *Runner) Report(results []Result) error {
	var errs []error
	for _, res := range results {
		if res.Solver == nil {
			continue
		}
		errs = append(errs, r.report(res))
	}
	return errors.Join(errs...)
}

func (r *Runner) report(res Result) error {
	if err := r.renderer.Header(res.Solver.Day(), res.Solver.Title()); err != nil {
		return err
	}
	if r.config.Instructions {
		if err := r.renderer.Notes(res.Solver.Notes()); err != nil {
			return err
		}
	}
	for _, c := range res.Checks {
		if err := r.renderer.Check(c); err != nil {
			return err
		}
	}
	for _, a := range res.Answers {
		if err := r.renderer.Answer(a); err != nil {
			return err
		}
	}
	return nil
}
