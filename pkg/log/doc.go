// Package log provides the logging abstraction used by the aoc2022 runner
// and watcher.
//
// The Logger interface can be implemented by any logging library. A zerolog
// adapter is provided for the CLI and a no-op logger for tests.
//
// # Usage
//
//	logger := log.NewZerologAdapterWithLogger(cliconfig.Logger())
//	logger.Info("solved", log.Int("day", 1), log.Duration("elapsed", d))
//
// Or discard everything:
//
//	logger := log.NewNoopLogger()
package log
