package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapterWithLogger(zerolog.New(&buf))

	adapter.Info("solved",
		Int("day", 3),
		String("part", "part 1"),
		Ints("days", []int{1, 2}),
		Bool("sample", true),
		Duration("elapsed", 2*time.Millisecond),
		Err(errors.New("boom")),
	)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}

	if entry["message"] != "solved" {
		t.Errorf("message = %v, want solved", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if entry["day"] != float64(3) {
		t.Errorf("day = %v, want 3", entry["day"])
	}
	if entry["sample"] != true {
		t.Errorf("sample = %v, want true", entry["sample"])
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v, want boom", entry["error"])
	}
}

func TestZerologAdapter_Levels(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	adapter.Debug("hidden")
	adapter.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("below-level messages were written: %s", buf.String())
	}

	adapter.Warn("shown")
	adapter.Error("shown")
	if got := bytes.Count(buf.Bytes(), []byte("\n")); got != 2 {
		t.Errorf("written lines = %d, want 2", got)
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NewNoopLogger()
	l.Debug("x")
	l.Info("x", Int("n", 1))
	l.Warn("x")
	l.Error("x", Err(errors.New("ignored")))
}
