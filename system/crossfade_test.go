package system

import (
	"reflect"
	"testing"
)

type fakeAction struct {
	calls []string
	fades []float64
}

func (a *fakeAction) Reset()                        { a.calls = append(a.calls, "reset") }
func (a *fakeAction) SetEffectiveTimeScale(float64) { a.calls = append(a.calls, "timescale") }
func (a *fakeAction) SetEffectiveWeight(float64)    { a.calls = append(a.calls, "weight") }
func (a *fakeAction) Play()                         { a.calls = append(a.calls, "play") }

func (a *fakeAction) FadeIn(d float64) {
	a.calls = append(a.calls, "fadein")
	a.fades = append(a.fades, d)
}

func (a *fakeAction) FadeOut(d float64) {
	a.calls = append(a.calls, "fadeout")
	a.fades = append(a.fades, -d)
}

func (a *fakeAction) count(call string) int {
	n := 0
	for _, c := range a.calls {
		if c == call {
			n++
		}
	}
	return n
}

func newTestController(names ...string) (*CrossfadeController, map[string]*fakeAction, *[]string) {
	reg := NewClipRegistry()
	actions := make(map[string]*fakeAction, len(names))
	for _, n := range names {
		a := &fakeAction{}
		actions[n] = a
		reg.Register(n, a)
	}
	var notified []string
	c := NewCrossfadeController(reg, func(name string) { notified = append(notified, name) })
	return c, actions, &notified
}

func TestCrossfadeActivateSwitchesClip(t *testing.T) {
	c, actions, notified := newTestController("a", "b")

	if !c.Activate("a", 0.5) {
		t.Fatalf("expected first activation to transition")
	}
	if !c.Activate("b", 0.5) {
		t.Fatalf("expected switch to b")
	}

	if got, _ := c.Active(); got != "b" {
		t.Fatalf("active = %q, want b", got)
	}
	if n := actions["a"].count("fadeout"); n != 1 {
		t.Fatalf("a fade-outs = %d, want 1", n)
	}
	if n := actions["b"].count("fadeout"); n != 0 {
		t.Fatalf("b fade-outs = %d, want 0", n)
	}
	if !reflect.DeepEqual(*notified, []string{"a", "b"}) {
		t.Fatalf("notifications = %v", *notified)
	}
}

func TestCrossfadeActivateSameNameIsNoop(t *testing.T) {
	c, actions, notified := newTestController("a")

	c.Activate("a", 0.5)
	if c.Activate("a", 0.5) {
		t.Fatalf("second activation of the active clip should be a no-op")
	}
	if n := actions["a"].count("fadein"); n != 1 {
		t.Fatalf("fade-ins = %d, want 1", n)
	}
	if n := actions["a"].count("fadeout"); n != 0 {
		t.Fatalf("fade-outs = %d, want 0", n)
	}
	if len(*notified) != 1 {
		t.Fatalf("notifications = %v, want one", *notified)
	}
}

func TestCrossfadeActivateUnknownName(t *testing.T) {
	cases := []struct {
		name   string
		before []string
	}{
		{"nothing_active", nil},
		{"with_active", []string{"a"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, actions, notified := newTestController("a", "b")
			for _, n := range tc.before {
				c.Activate(n, 0.5)
			}
			snapshot := map[string]int{}
			for n, a := range actions {
				snapshot[n] = len(a.calls)
			}
			wantActive, wantOK := c.Active()
			wantNotified := len(*notified)

			if c.Activate("missing", 0.5) {
				t.Fatalf("unknown name should not transition")
			}
			if c.Activate("", 0.5) {
				t.Fatalf("empty name should not transition")
			}

			gotActive, gotOK := c.Active()
			if gotActive != wantActive || gotOK != wantOK {
				t.Fatalf("active changed: %q,%v -> %q,%v", wantActive, wantOK, gotActive, gotOK)
			}
			for n, a := range actions {
				if len(a.calls) != snapshot[n] {
					t.Fatalf("clip %s touched: %v", n, a.calls)
				}
			}
			if len(*notified) != wantNotified {
				t.Fatalf("unexpected notification: %v", *notified)
			}
		})
	}
}

func TestCrossfadeIncomingClipSequence(t *testing.T) {
	c, actions, _ := newTestController("Swimming", "Taunt")
	c.Start("Swimming")

	c.Activate("Taunt", 0.5)

	want := []string{"reset", "timescale", "weight", "fadein", "play"}
	if !reflect.DeepEqual(actions["Taunt"].calls, want) {
		t.Fatalf("Taunt calls = %v, want %v", actions["Taunt"].calls, want)
	}
	if !reflect.DeepEqual(actions["Taunt"].fades, []float64{0.5}) {
		t.Fatalf("Taunt fades = %v", actions["Taunt"].fades)
	}
	if !reflect.DeepEqual(actions["Swimming"].fades, []float64{-0.5}) {
		t.Fatalf("Swimming fades = %v", actions["Swimming"].fades)
	}
}

func TestCrossfadeNegativeFadeClamped(t *testing.T) {
	c, actions, _ := newTestController("a")
	c.Activate("a", -2)
	if !reflect.DeepEqual(actions["a"].fades, []float64{0}) {
		t.Fatalf("fades = %v, want [0]", actions["a"].fades)
	}
}

func TestCrossfadeStartOnlyWhenIdle(t *testing.T) {
	c, actions, notified := newTestController("a", "b")

	if !c.Start("a") {
		t.Fatalf("expected start")
	}
	if actions["a"].count("fadein") != 0 {
		t.Fatalf("start should not fade in")
	}
	if c.Start("b") {
		t.Fatalf("start while active should be ignored")
	}
	if got, _ := c.Active(); got != "a" {
		t.Fatalf("active = %q, want a", got)
	}
	if len(*notified) != 1 {
		t.Fatalf("notifications = %v", *notified)
	}
}

func TestClipRegistryNeverOverwrites(t *testing.T) {
	reg := NewClipRegistry()
	first := &fakeAction{}
	if !reg.Register("a", first) {
		t.Fatalf("register a")
	}
	if reg.Register("a", &fakeAction{}) {
		t.Fatalf("duplicate register should fail")
	}
	if reg.Register("", &fakeAction{}) || reg.Register("b", nil) {
		t.Fatalf("invalid register should fail")
	}
	reg.Register("c", &fakeAction{})

	got, ok := reg.Get("a")
	if !ok || got != Action(first) {
		t.Fatalf("a was replaced")
	}
	if !reflect.DeepEqual(reg.Names(), []string{"a", "c"}) {
		t.Fatalf("names = %v", reg.Names())
	}
}
