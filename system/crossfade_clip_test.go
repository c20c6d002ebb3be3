package system

import (
	"math"
	"testing"

	"github.com/milk9111/animviewer/component"
)

func newClipController(names ...string) (*CrossfadeController, map[string]*component.ClipAction) {
	reg := NewClipRegistry()
	actions := make(map[string]*component.ClipAction, len(names))
	for _, n := range names {
		a := component.NewClipAction(&component.Animation{Name: n, FrameCount: 8, FPS: 8, Loop: true})
		actions[n] = a
		reg.Register(n, a)
	}
	return NewCrossfadeController(reg, nil), actions
}

func stepClips(actions map[string]*component.ClipAction, dt float64) {
	for _, a := range actions {
		a.Update(dt)
	}
}

func TestCrossfadeClipActionWeights(t *testing.T) {
	c, actions := newClipController("a", "b")
	a, b := actions["a"], actions["b"]

	c.Start("a")
	c.Activate("b", 0.5)

	steps := []struct {
		dt           float64
		wantA, wantB float64
		runningA     bool
	}{
		{0, 1, 0, true},
		{0.25, 0.5, 0.5, true},
		{0.25, 0, 1, false},
		{1, 0, 1, false},
	}
	for i, s := range steps {
		stepClips(actions, s.dt)
		if math.Abs(a.Weight()-s.wantA) > 1e-9 || math.Abs(b.Weight()-s.wantB) > 1e-9 {
			t.Fatalf("step %d: weights a=%v b=%v, want %v/%v", i, a.Weight(), b.Weight(), s.wantA, s.wantB)
		}
		if a.IsRunning() != s.runningA {
			t.Fatalf("step %d: a running = %v, want %v", i, a.IsRunning(), s.runningA)
		}
		if !b.IsRunning() {
			t.Fatalf("step %d: incoming clip stopped", i)
		}
	}
	if a.IsFading() || b.IsFading() {
		t.Fatalf("fades should be finished")
	}
}

func TestCrossfadeClipActionReselect(t *testing.T) {
	c, actions := newClipController("a", "b")
	a, b := actions["a"], actions["b"]

	c.Start("a")
	c.Activate("b", 0.5)
	stepClips(actions, 0.2)
	if math.Abs(a.Weight()-0.6) > 1e-9 || math.Abs(b.Weight()-0.4) > 1e-9 {
		t.Fatalf("mid blend a=%v b=%v, want 0.6/0.4", a.Weight(), b.Weight())
	}

	// back to a before the first fade finishes
	if !c.Activate("a", 0.5) {
		t.Fatalf("reselect should transition")
	}
	if a.Weight() != 0 || !a.IsFading() || a.Time() != 0 {
		t.Fatalf("a should restart from weight 0: weight=%v fading=%v time=%v", a.Weight(), a.IsFading(), a.Time())
	}
	if math.Abs(b.Weight()-0.4) > 1e-9 || !b.IsFading() {
		t.Fatalf("b should fade out from its current weight, got %v", b.Weight())
	}

	stepClips(actions, 0.25)
	if math.Abs(a.Weight()-0.5) > 1e-9 || math.Abs(b.Weight()-0.2) > 1e-9 {
		t.Fatalf("reselect blend a=%v b=%v, want 0.5/0.2", a.Weight(), b.Weight())
	}

	stepClips(actions, 0.25)
	if a.Weight() != 1 || b.Weight() != 0 || b.IsRunning() {
		t.Fatalf("after reselect a=%v b=%v b running=%v", a.Weight(), b.Weight(), b.IsRunning())
	}
	if got, _ := c.Active(); got != "a" {
		t.Fatalf("active = %q, want a", got)
	}
}
