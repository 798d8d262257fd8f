package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/pymaldebaran/adventofcode2022/internal/adapters/fs"
	"github.com/pymaldebaran/adventofcode2022/internal/app"
	"github.com/pymaldebaran/adventofcode2022/internal/cliconfig"
	"github.com/pymaldebaran/adventofcode2022/internal/puzzle"
	"github.com/pymaldebaran/adventofcode2022/internal/puzzle/day01"
	"github.com/pymaldebaran/adventofcode2022/internal/puzzle/day02"
	"github.com/pymaldebaran/adventofcode2022/internal/puzzle/day03"
	"github.com/pymaldebaran/adventofcode2022/internal/puzzle/day04"
	"github.com/pymaldebaran/adventofcode2022/internal/report"
	"github.com/pymaldebaran/adventofcode2022/internal/watch"
	logAdapter "github.com/pymaldebaran/adventofcode2022/pkg/log"
)

const helpDescription = `
Solve Advent of Code 2022 puzzles from plain text inputs.

Highlights:
  - Reads one dayNN.txt file per puzzle from the input directory.
  - Checks every solver against the published examples with --verify.
  - Re-solves a day as soon as its input changes with --watch.
  - Configure via file, env (AOC2022_*), or flags.
`

var longHelp = "aoc2022\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  aoc2022 solve
  aoc2022 solve 1 4 --part 2 --instructions
  aoc2022 solve --sample --verify
  aoc2022 solve 3 --watch --input-dir ./inputs
  aoc2022 list
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRegistry(cfg cliconfig.Config) *puzzle.Registry {
	return puzzle.NewRegistry(
		day01.New(cfg.TopN),
		day02.New(),
		day03.New(),
		day04.New(),
	)
}

// parseDays reads the positional day arguments.
func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, a := range args {
		d, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("day %q is not a number", a)
		}
		days = append(days, d)
	}
	return days, nil
}

func toParts(parts []int) []puzzle.Part {
	out := make([]puzzle.Part, len(parts))
	for i, p := range parts {
		out[i] = puzzle.Part(p)
	}
	return out
}

// loadConfig layers the config file and AOC2022_* variables under the flags
// set on cmd, then validates the result.
func loadConfig(cmd *cobra.Command, cfgPath string, cfg *cliconfig.Config, extra ...string) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	// Build set of changed flags
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
	for _, name := range extra {
		changed[name] = true
	}

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	// Env overrides file config but not flags
	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	cliconfig.SetLevel(cfg.Level())
	return nil
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:           "aoc2022",
		Short:         "Solve Advent of Code 2022 puzzles",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	solve := &cobra.Command{
		Use:   "solve [day...]",
		Short: "Solve the given days, or every day when none is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}
			var extra []string
			if len(days) > 0 {
				cfg.Days = days
				extra = append(extra, "days")
			}
			if err := loadConfig(cmd, cfgPath, &cfg, extra...); err != nil {
				return err
			}
			log = cliconfig.Logger()
			log.Debug().Interface("config", cfg).Msg("configuration")

			registry := newRegistry(cfg)
			loader := fs.NewInputLoader(cfg.InputDir)
			logger := logAdapter.NewZerologAdapterWithLogger(log)

			runner := app.NewRunner(app.RunnerConfig{
				Parts:        toParts(cfg.Parts),
				Sample:       cfg.Sample,
				Verify:       cfg.Verify,
				Instructions: cfg.Instructions,
				Parallelism:  cfg.Parallelism,
			}, registry, loader, report.New(cmd.OutOrStdout(), report.Options{NoColor: cfg.NoColor}), logger)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if !cfg.Watch {
				return runner.Run(ctx, cfg.Days)
			}

			watched := cfg.Days
			if len(watched) == 0 {
				watched = registry.Days()
			}
			w := watch.New(watch.Config{
				Dir:      loader.Dir(),
				Days:     watched,
				Debounce: cfg.Debounce,
				DayOf:    fs.DayOf,
			}, runner.Run, logger)

			err = w.Run(ctx)
			log.Info().Msg("stopped watching")
			return err
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the solved days and whether their input is present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, cfgPath, &cfg); err != nil {
				return err
			}
			loader := fs.NewInputLoader(cfg.InputDir)
			out := cmd.OutOrStdout()
			for _, s := range newRegistry(cfg).All() {
				status := "missing"
				if cliconfig.FileExists(loader.Path(s.Day())) {
					status = loader.Path(s.Day())
				}
				fmt.Fprintf(out, "%2d  %-26s %s\n", s.Day(), s.Title(), status)
			}
			return nil
		},
	}

	// Flags
	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.aoc2022/config.toml)")
	pf.StringVar(&cfg.InputDir, "input-dir", cfg.InputDir, "directory holding the dayNN.txt inputs")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	pf.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	pf.IntVar(&cfg.TopN, "top", cfg.TopN, "number of Elves summed by day 1 part 2")

	sf := solve.Flags()
	sf.IntSliceVar(&cfg.Parts, "part", cfg.Parts, "parts to solve (1, 2 or both)")
	sf.BoolVar(&cfg.Sample, "sample", cfg.Sample, "solve the published example instead of the input file")
	sf.BoolVar(&cfg.Verify, "verify", cfg.Verify, "check the published example answers before solving")
	sf.BoolVar(&cfg.Instructions, "instructions", cfg.Instructions, "render the puzzle notes before the answers")
	sf.BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-solve a day whenever its input file changes")
	sf.DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period after an input change before solving")
	sf.IntVar(&cfg.Parallelism, "parallel", cfg.Parallelism, "maximum number of days solved at once")

	root.AddCommand(solve, list)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("aoc2022")
		os.Exit(1)
	}
}
