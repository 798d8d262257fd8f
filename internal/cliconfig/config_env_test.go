package cliconfig

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"AOC2022_INPUT_DIR":    "/env/inputs",
				"AOC2022_DAYS":         "2, 4",
				"AOC2022_PARTS":        "1",
				"AOC2022_DEBOUNCE":     "2s",
				"AOC2022_PARALLELISM":  "8",
				"AOC2022_TOP":          "4",
				"AOC2022_LOG_LEVEL":    "warn",
				"AOC2022_SAMPLE":       "1",
				"AOC2022_VERIFY":       "true",
				"AOC2022_INSTRUCTIONS": "false",
				"AOC2022_NO_COLOR":     "true",
				"AOC2022_WATCH":        "0",
			},
			changed: map[string]bool{},
			initial: Config{Instructions: true, Watch: true},
			expected: Config{
				InputDir:    "/env/inputs",
				Days:        []int{2, 4},
				Parts:       []int{1},
				Debounce:    2 * time.Second,
				Parallelism: 8,
				TopN:        4,
				LogLevel:    "warn",
				Sample:      true,
				Verify:      true,
				NoColor:     true,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"AOC2022_INPUT_DIR": "/env/inputs",
				"AOC2022_TOP":       "7",
			},
			changed: map[string]bool{"input-dir": true},
			initial: Config{InputDir: "/flag/inputs"},
			expected: Config{
				InputDir: "/flag/inputs",
				TopN:     7,
			},
		},
		{
			name: "ignores non positive ints",
			envVars: map[string]string{
				"AOC2022_PARALLELISM": "-2",
			},
			changed:  map[string]bool{},
			initial:  Config{Parallelism: 4},
			expected: Config{Parallelism: 4},
		},
		{
			name: "returns error for invalid duration",
			envVars: map[string]string{
				"AOC2022_DEBOUNCE": "not-a-duration",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "returns error for invalid int",
			envVars: map[string]string{
				"AOC2022_TOP": "three",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "returns error for invalid day list",
			envVars: map[string]string{
				"AOC2022_DAYS": "1,two",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyEnvConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyEnvConfig() unexpected error: %v", err)
				return
			}

			if !tt.wantErr {
				if diff := cmp.Diff(tt.expected, cfg); diff != "" {
					t.Errorf("Config mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

// Integration test: precedence order (CLI > Env > File)
func TestConfigPrecedence(t *testing.T) {
	trueVal := true

	fileConf := FileConfig{
		InputDir: "/file/inputs",
		LogLevel: "debug",
		TopN:     5,
		Verify:   &trueVal,
	}

	t.Setenv("AOC2022_INPUT_DIR", "/env/inputs")
	t.Setenv("AOC2022_LOG_LEVEL", "error")
	t.Setenv("AOC2022_DAYS", "3")

	// Simulate CLI flags
	changed := map[string]bool{
		"input-dir": true,
	}

	cfg := DefaultConfig()
	cfg.InputDir = "/cli/inputs"

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	if cfg.InputDir != "/cli/inputs" {
		t.Errorf("InputDir = %v, want /cli/inputs (CLI should win)", cfg.InputDir)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %v, want error (env should override file)", cfg.LogLevel)
	}
	if diff := cmp.Diff([]int{3}, cfg.Days); diff != "" {
		t.Errorf("Days mismatch (-want +got):\n%s", diff)
	}
	if cfg.TopN != 5 {
		t.Errorf("TopN = %v, want 5 (file should set)", cfg.TopN)
	}
	if !cfg.Verify {
		t.Errorf("Verify = %v, want true (file should set)", cfg.Verify)
	}
}
