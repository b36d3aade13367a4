package stats

import (
	"math"
	"testing"
	"time"

	"lifefb/internal/core"
	"lifefb/internal/patterns"
	"lifefb/internal/sims/life"
)

func lifeWith(p patterns.Pattern) *life.Life {
	cfg := core.DefaultConfig()
	cfg.Width, cfg.Height = 12, 12
	l := life.New(cfg)
	patterns.Stamp(l.Current(), p.At(4, 4))
	return l
}

func TestHistoryDetectsStillLife(t *testing.T) {
	l := lifeWith(patterns.Block)
	h := NewHistory(DefaultDepth)
	if p := h.Observe(l.Current()); p != 0 {
		t.Fatalf("first observation reported period %d", p)
	}
	l.Step()
	if p := h.Observe(l.Current()); p != 1 {
		t.Fatalf("block period = %d, want 1", p)
	}
}

func TestHistoryDetectsBlinker(t *testing.T) {
	l := lifeWith(patterns.Blinker)
	h := NewHistory(DefaultDepth)
	h.Observe(l.Current())
	l.Step()
	if p := h.Observe(l.Current()); p != 0 {
		t.Fatalf("vertical phase reported period %d", p)
	}
	l.Step()
	if p := h.Observe(l.Current()); p != 2 {
		t.Fatalf("blinker period = %d, want 2", p)
	}
}

func TestHistoryForgetsBeyondDepth(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Width, cfg.Height = 24, 24
	l := life.New(cfg)
	patterns.Stamp(l.Current(), patterns.Pulsar.At(5, 5))

	h := NewHistory(2)
	for i := 0; i < 6; i++ {
		if p := h.Observe(l.Current()); p != 0 {
			t.Fatalf("depth-2 history matched a period-3 pulsar at step %d", i)
		}
		l.Step()
	}
}

func TestStatsMovingAverage(t *testing.T) {
	s := New()
	s.Update(1, 100, 100*time.Millisecond)
	if s.AveragePopulation != 100 {
		t.Fatalf("first average = %v, want 100", s.AveragePopulation)
	}
	if s.GenerationsPerSecond < 9.99 || s.GenerationsPerSecond > 10.01 {
		t.Fatalf("generations per second = %v, want 10", s.GenerationsPerSecond)
	}
	s.Update(2, 200, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("average = %v, want 110", s.AveragePopulation)
	}
	if s.Generation != 2 || s.Population != 200 {
		t.Fatalf("unexpected snapshot %+v", s)
	}
}
