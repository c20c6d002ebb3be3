package component

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testAnim(name string, loop bool) *Animation {
	return &Animation{Name: name, FrameCount: 8, FPS: 8, Loop: loop}
}

func TestAnimationFrameAt(t *testing.T) {
	cases := []struct {
		name string
		loop bool
		t    float64
		want int
	}{
		{"start", true, 0, 0},
		{"negative", true, -1, 0},
		{"mid", true, 0.5, 4},
		{"wraps", true, 1.25, 2},
		{"clamps", false, 3, 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := testAnim("clip", c.loop)
			if got := a.FrameAt(c.t); got != c.want {
				t.Fatalf("FrameAt(%v) = %d, want %d", c.t, got, c.want)
			}
		})
	}
	if d := testAnim("clip", true).Duration(); d != 1 {
		t.Fatalf("Duration = %v, want 1", d)
	}
}

func TestClipActionFadeIn(t *testing.T) {
	a := NewClipAction(testAnim("in", true))
	a.Reset()
	a.SetEffectiveTimeScale(1)
	a.SetEffectiveWeight(1)
	a.FadeIn(0.5)
	a.Play()

	if w := a.Weight(); w != 0 {
		t.Fatalf("weight at start = %v, want 0", w)
	}
	a.Update(0.25)
	if w := a.Weight(); !near(w, 0.5) {
		t.Fatalf("weight halfway = %v, want 0.5", w)
	}
	a.Update(0.25)
	if w := a.Weight(); w != 1 || a.IsFading() {
		t.Fatalf("weight after fade = %v fading=%v", w, a.IsFading())
	}
	if !near(a.Time(), 0.5) {
		t.Fatalf("time = %v, want 0.5", a.Time())
	}
}

func TestClipActionFadeOutDisables(t *testing.T) {
	a := NewClipAction(testAnim("out", true))
	a.Play()
	a.Update(0.1)

	a.FadeOut(0.5)
	a.Update(0.25)
	if !a.IsRunning() {
		t.Fatalf("action should keep playing during fade-out")
	}
	if w := a.Weight(); !near(w, 0.5) {
		t.Fatalf("weight halfway = %v, want 0.5", w)
	}
	a.Update(0.5)
	if a.IsRunning() || a.Weight() != 0 {
		t.Fatalf("action should be inactive after fade-out, weight=%v", a.Weight())
	}

	// Reset brings a faded-out action back.
	a.Reset()
	if !a.IsRunning() || a.Time() != 0 {
		t.Fatalf("reset should re-enable and rewind")
	}
}

func TestClipActionFadeOutFromCurrentWeight(t *testing.T) {
	a := NewClipAction(testAnim("mid", true))
	a.Play()
	a.FadeIn(1)
	a.Update(0.4)

	a.FadeOut(1)
	if w := a.Weight(); !near(w, 0.4) {
		t.Fatalf("fade-out should start at current weight, got %v", w)
	}
}

func TestClipActionZeroFade(t *testing.T) {
	a := NewClipAction(testAnim("zero", true))
	a.Play()
	a.FadeIn(0)
	if a.Weight() != 1 {
		t.Fatalf("zero fade-in weight = %v", a.Weight())
	}
	a.FadeOut(0)
	if a.IsRunning() {
		t.Fatalf("zero fade-out should disable at once")
	}
}

func TestClipActionTimeScaleAndClamp(t *testing.T) {
	a := NewClipAction(testAnim("once", false))
	a.SetEffectiveTimeScale(2)
	a.Play()
	a.Update(0.25)
	if !near(a.Time(), 0.5) {
		t.Fatalf("time = %v, want 0.5", a.Time())
	}
	a.Update(5)
	if a.Time() != 1 || a.Frame() != 7 {
		t.Fatalf("non-looping clip should hold at end, time=%v frame=%d", a.Time(), a.Frame())
	}
}

func TestClipActionStoppedDoesNotAdvance(t *testing.T) {
	a := NewClipAction(testAnim("idle", true))
	a.Update(1)
	if a.Time() != 0 || a.Weight() != 0 {
		t.Fatalf("stopped action advanced: time=%v weight=%v", a.Time(), a.Weight())
	}
}

func TestMixerReusesActions(t *testing.T) {
	m := NewMixer()
	swim := testAnim("Swimming", true)
	first := m.ClipAction(swim)
	if again := m.ClipAction(swim); again != first {
		t.Fatalf("ClipAction should return the existing action")
	}
	taunt := m.ClipAction(testAnim("Taunt", true))

	first.Play()
	taunt.Play()
	taunt.FadeIn(1)
	m.Update(0.5)

	if w := m.TotalWeight(); !near(w, 1.5) {
		t.Fatalf("total weight = %v, want 1.5", w)
	}
	if n := len(m.Actions()); n != 2 {
		t.Fatalf("actions = %d, want 2", n)
	}
}
