package anim

import (
	"testing"

	"github.com/charmbracelet/harmonica"
)

func testSpring() harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9)
}

func TestValueMovesTowardTarget(t *testing.T) {
	v := NewValue(testSpring(), 0)
	v.SetTarget(1.0)

	// Frame 1
	pos := v.Update()
	if pos <= 0 {
		t.Errorf("Expected position to increase after one frame, got %f", pos)
	}
	if pos >= 1.0 {
		t.Errorf("Expected position to not reach target immediately, got %f", pos)
	}

	// Frame 2 and 3 keep approaching
	v.Update()
	prev := v.Pos()
	v.Update()
	if v.Pos() <= prev {
		t.Errorf("Expected position to continue increasing, got %f (prev %f)", v.Pos(), prev)
	}
}

func TestValueSettles(t *testing.T) {
	v := NewValue(testSpring(), 0)
	v.SetTarget(1.0)
	if v.Settled() {
		t.Fatal("Expected value not settled right after retarget")
	}

	for i := 0; i < 600; i++ {
		v.Update()
	}
	if !v.Settled() {
		t.Errorf("Expected value to settle near target, pos=%f", v.Pos())
	}
}

func TestValueSnapKillsMotion(t *testing.T) {
	v := NewValue(testSpring(), 0)
	v.SetTarget(5.0)
	v.Update()

	v.Snap(2.0)
	if v.Pos() != 2.0 || v.Target() != 2.0 {
		t.Errorf("Expected snap to 2.0, got pos=%f target=%f", v.Pos(), v.Target())
	}
	if !v.Settled() {
		t.Error("Expected snapped value to be settled")
	}
}

func TestRegistryCreatesLazily(t *testing.T) {
	r := NewRegistry[string](testSpring(), 0)

	if r.Has("a") {
		t.Fatal("Expected no value before first access")
	}
	v := r.Get("a")
	if !r.Has("a") {
		t.Fatal("Expected value after first access")
	}
	if r.Get("a") != v {
		t.Error("Expected repeated access to return the same value")
	}

	v.SetTarget(3.0)
	r.Update()
	if v.Pos() <= 0 {
		t.Errorf("Expected registry update to advance values, got %f", v.Pos())
	}
}

func TestPulseDipsThenRebounds(t *testing.T) {
	p := NewPulse(testSpring())
	if p.Scale() != 1.0 {
		t.Fatalf("Expected resting scale 1.0, got %f", p.Scale())
	}

	p.Trigger()
	min := 1.0
	for i := 0; i < 600; i++ {
		s := p.Update()
		if s < min {
			min = s
		}
	}
	if min > PulseDepth+0.05 {
		t.Errorf("Expected pulse to dip near %f, min was %f", PulseDepth, min)
	}
	if p.Active() {
		t.Error("Expected pulse to finish after enough frames")
	}
	if s := p.Scale(); s < 0.95 || s > 1.05 {
		t.Errorf("Expected pulse to return to resting scale, got %f", s)
	}
}

func TestPulseRegistryRestsAtOne(t *testing.T) {
	r := NewPulseRegistry[int](testSpring())
	if r.Scale(7) != 1.0 {
		t.Errorf("Expected untouched key to rest at 1.0, got %f", r.Scale(7))
	}

	r.Trigger(7)
	r.Update()
	if r.Scale(7) >= 1.0 {
		t.Errorf("Expected triggered pulse to shrink, got %f", r.Scale(7))
	}
}
