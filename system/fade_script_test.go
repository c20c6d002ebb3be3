package system

import "testing"

func TestScriptFade(t *testing.T) {
	src := []byte(`
text := import("text")

fade := func(from, to, base) {
	if from == "" {
		return 0
	}
	if text.has_prefix(to, "Taunt") {
		return base / 2
	}
	return base
}
`)
	sf, err := NewScriptFade("fade.tengo", src, 0.5)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	cases := []struct {
		name     string
		from, to string
		want     float64
	}{
		{"initial", "", "Swimming", 0},
		{"halved", "Swimming", "Taunt", 0.25},
		{"base", "Taunt", "Swimming", 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := sf.FadeDuration(c.from, c.to); got != c.want {
				t.Fatalf("FadeDuration(%q, %q) = %v, want %v", c.from, c.to, got, c.want)
			}
		})
	}
}

func TestScriptFadeFallbacks(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"non_numeric", `fade := func(from, to, base) { return "slow" }`, 0.5},
		{"runtime_error", `fade := func(from, to, base) { return base + "x" }`, 0.5},
		{"negative", `fade := func(from, to, base) { return -1 }`, 0},
		{"int_result", `fade := func(from, to, base) { return 2 }`, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sf, err := NewScriptFade(c.name, []byte(c.src), 0.5)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			if got := sf.FadeDuration("a", "b"); got != c.want {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestScriptFadeCompileError(t *testing.T) {
	if _, err := NewScriptFade("broken.tengo", []byte(`nothing := 1`), 0.5); err == nil {
		t.Fatalf("expected compile error for missing fade func")
	}
}
