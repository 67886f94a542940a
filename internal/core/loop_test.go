package core

import (
	"testing"
	"time"
)

func TestLoopPausedNeverTicks(t *testing.T) {
	l := NewLoop(50 * time.Millisecond)
	now := time.Unix(0, 0)
	for i := 0; i < 5; i++ {
		if l.Tick(now.Add(time.Duration(i) * time.Second)) {
			t.Fatal("paused loop ticked")
		}
	}
}

func TestLoopTicksOncePerDelay(t *testing.T) {
	l := NewLoop(100 * time.Millisecond)
	l.Play()
	start := time.Unix(100, 0)

	if l.Tick(start) {
		t.Fatal("first frame after Play must not step")
	}
	if l.Tick(start.Add(60 * time.Millisecond)) {
		t.Fatal("stepped before the delay elapsed")
	}
	if !l.Tick(start.Add(110 * time.Millisecond)) {
		t.Fatal("no step after the delay elapsed")
	}
	if l.Tick(start.Add(150 * time.Millisecond)) {
		t.Fatal("stepped twice within one delay")
	}
	if !l.Tick(start.Add(210 * time.Millisecond)) {
		t.Fatal("second step missing")
	}

	l.Pause()
	if l.Going() || l.Tick(start.Add(time.Second)) {
		t.Fatal("loop kept stepping after Pause")
	}
}

func TestLoopDoesNotBurstAfterStall(t *testing.T) {
	l := NewLoop(100 * time.Millisecond)
	l.Play()
	start := time.Unix(0, 0)
	l.Tick(start)

	if !l.Tick(start.Add(5 * time.Second)) {
		t.Fatal("no step after a stall")
	}
	steps := 0
	for i := 1; i <= 3; i++ {
		if l.Tick(start.Add(5*time.Second + time.Duration(i)*time.Millisecond)) {
			steps++
		}
	}
	if steps > 1 {
		t.Fatalf("%d queued steps fired after a stall", steps)
	}
}

func TestLoopDelayClamped(t *testing.T) {
	l := NewLoop(0)
	if l.Delay() != DefaultDelay {
		t.Fatalf("zero delay gave %v, expected default", l.Delay())
	}
	l.SetDelay(time.Millisecond)
	if l.Delay() != MinDelay {
		t.Fatalf("delay %v below minimum", l.Delay())
	}
	l.SetDelay(time.Minute)
	if l.Delay() != MaxDelay {
		t.Fatalf("delay %v above maximum", l.Delay())
	}
}

func TestParameterControlAdjust(t *testing.T) {
	c := ParameterControl{Key: "delay_ms", Type: ParamTypeInt, Step: 50, Min: 10, Max: 1000, HasMin: true, HasMax: true}
	if got := c.Adjust(200, 1); got != 250 {
		t.Fatalf("Adjust up = %v, expected 250", got)
	}
	if got := c.Adjust(30, -1); got != 10 {
		t.Fatalf("Adjust below min = %v, expected 10", got)
	}
	if got := c.Adjust(990, 2); got != 1000 {
		t.Fatalf("Adjust above max = %v, expected 1000", got)
	}
	if got := c.Clamp(12.6); got != 13 {
		t.Fatalf("Clamp int = %v, expected 13", got)
	}
}

func TestSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Board", Params: []Parameter{{Key: "w", Value: "3"}}},
		{Name: "Game", Params: []Parameter{{Key: "age", Value: "7"}}},
	}}
	if p, ok := s.Lookup("age"); !ok || p.Value != "7" {
		t.Fatalf("Lookup(age) = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("Lookup found a missing key")
	}
}
