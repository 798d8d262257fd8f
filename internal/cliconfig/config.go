package cliconfig

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultInputDir is the directory holding the dayNN.txt puzzle inputs.
const DefaultInputDir = "inputs"

// LastDay is the last day of the advent calendar.
const LastDay = 25

// Config holds CLI configuration for aoc2022.
type Config struct {
	InputDir string
	Days     []int
	Parts    []int

	Sample       bool
	Verify       bool
	Instructions bool
	NoColor      bool

	Watch    bool
	Debounce time.Duration

	Parallelism int
	LogLevel    string
	TopN        int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		InputDir:    DefaultInputDir,
		Parts:       []int{1, 2},
		Debounce:    200 * time.Millisecond,
		Parallelism: 4,
		LogLevel:    zerolog.LevelInfoValue,
		TopN:        3,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		c.InputDir = DefaultInputDir
	}

	for _, d := range c.Days {
		if d < 1 || d > LastDay {
			return fmt.Errorf("day %d out of range 1-%d", d, LastDay)
		}
	}
	slices.Sort(c.Days)
	c.Days = slices.Compact(c.Days)

	if len(c.Parts) == 0 {
		c.Parts = []int{1, 2}
	}
	for _, p := range c.Parts {
		if p != 1 && p != 2 {
			return fmt.Errorf("part %d must be 1 or 2", p)
		}
	}
	slices.Sort(c.Parts)
	c.Parts = slices.Compact(c.Parts)

	if c.Parallelism <= 0 {
		return fmt.Errorf("parallelism must be positive")
	}
	if c.TopN <= 0 {
		return fmt.Errorf("top must be positive")
	}

	if c.LogLevel == "" {
		c.LogLevel = zerolog.LevelInfoValue
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	if c.Watch {
		if c.Sample {
			return fmt.Errorf("watch and sample cannot be combined")
		}
		if c.Debounce <= 0 {
			return fmt.Errorf("debounce must be positive")
		}
	}

	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setInts sets an int list if not empty and flag not changed.
func (s *configSetter) setInts(flag string, value []int, dst *[]int) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = slices.Clone(value)
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setIntsFromString parses a comma separated list such as "1,3,4".
// Used for environment variables that come as strings.
func (s *configSetter) setIntsFromString(flag, value string, dst *[]int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	var out []int
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		i, err := strconv.Atoi(field)
		if err != nil {
			return fmt.Errorf("parse %s: %w", flag, err)
		}
		out = append(out, i)
	}
	*dst = out
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
