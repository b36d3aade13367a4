package ui

import (
	"strings"
	"testing"
	"time"

	"lifefb/internal/stats"
)

func TestLines(t *testing.T) {
	s := stats.New()
	s.Update(12, 40, 0)
	s.StartTime = time.Now().Add(-65 * time.Second)
	lines := Lines(s, true)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "gen 12") || !strings.Contains(lines[0], "pop 40") || !strings.Contains(lines[0], "paused") {
		t.Fatalf("status line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "up 1m5s") {
		t.Fatalf("rate line = %q, want runtime", lines[1])
	}
	if !strings.Contains(Lines(s, false)[0], "running") {
		t.Fatal("unpaused status should say running")
	}
}
