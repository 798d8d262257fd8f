package cliconfig

import "os"

// EnvPrefix prefixes every environment variable read by ApplyEnvConfig.
const EnvPrefix = "AOC2022_"

// ApplyEnvConfig applies AOC2022_* environment variables to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)
	env := func(key string) string { return os.Getenv(EnvPrefix + key) }

	s.setString("input-dir", env("INPUT_DIR"), &cfg.InputDir)
	s.setString("log-level", env("LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntsFromString("days", env("DAYS"), &cfg.Days); err != nil {
		return err
	}
	if err := s.setIntsFromString("part", env("PARTS"), &cfg.Parts); err != nil {
		return err
	}
	if err := s.setDuration("debounce", env("DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}
	if err := s.setIntFromString("parallel", env("PARALLELISM"), &cfg.Parallelism); err != nil {
		return err
	}
	if err := s.setIntFromString("top", env("TOP"), &cfg.TopN); err != nil {
		return err
	}

	s.setBoolFromString("sample", env("SAMPLE"), &cfg.Sample)
	s.setBoolFromString("verify", env("VERIFY"), &cfg.Verify)
	s.setBoolFromString("instructions", env("INSTRUCTIONS"), &cfg.Instructions)
	s.setBoolFromString("no-color", env("NO_COLOR"), &cfg.NoColor)
	s.setBoolFromString("watch", env("WATCH"), &cfg.Watch)

	return nil
}
