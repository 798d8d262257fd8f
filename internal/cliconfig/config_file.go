package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	InputDir     string `toml:"input_dir"`
	Days         []int  `toml:"days"`
	Parts        []int  `toml:"parts"`
	Sample       *bool  `toml:"sample"`
	Verify       *bool  `toml:"verify"`
	Instructions *bool  `toml:"instructions"`
	NoColor      *bool  `toml:"no_color"`
	Watch        *bool  `toml:"watch"`
	Debounce     string `toml:"debounce"`
	Parallelism  int    `toml:"parallelism"`
	LogLevel     string `toml:"log_level"`
	TopN         int    `toml:"top"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.aoc2022/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".aoc2022", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input-dir", fc.InputDir, &cfg.InputDir)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInts("days", fc.Days, &cfg.Days)
	s.setInts("part", fc.Parts, &cfg.Parts)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	s.setInt("parallel", fc.Parallelism, &cfg.Parallelism)
	s.setInt("top", fc.TopN, &cfg.TopN)

	s.setBool("sample", fc.Sample, &cfg.Sample)
	s.setBool("verify", fc.Verify, &cfg.Verify)
	s.setBool("instructions", fc.Instructions, &cfg.Instructions)
	s.setBool("no-color", fc.NoColor, &cfg.NoColor)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
