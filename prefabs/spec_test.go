package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedScene(t *testing.T) {
	spec, err := LoadSceneSpec("scene.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []string{
		"Texting While Standing",
		"Swimming",
		"Chapa-Giratoria",
		"Kneeling Pointing",
		"Taunt",
		"Silly Dancing",
	}
	got := spec.ClipNames()
	if len(got) != len(want) {
		t.Fatalf("clips = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("clip %d = %q, want %q", i, got[i], want[i])
		}
	}
	if spec.FadeDuration != 0.5 || spec.Dwell.Threshold != 1.5 {
		t.Fatalf("tuning = fade %v dwell %v", spec.FadeDuration, spec.Dwell.Threshold)
	}
	for _, a := range spec.Animations {
		if a.FrameW != 48 || a.FrameH != 64 || !a.Looping() {
			t.Fatalf("animation %q not defaulted from model: %+v", a.Name, a)
		}
	}
	if spec.FadeScript != "" {
		t.Fatalf("fade script = %q, want none by default", spec.FadeScript)
	}
	if _, err := LoadScript("fade.tengo"); err != nil {
		t.Fatalf("fade script: %v", err)
	}
}

func TestSceneSpecValidate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "ok",
			src: `
model: {frame_w: 8, frame_h: 8}
animations: [{name: a}, {name: b, loop: false}]`,
		},
		{
			name: "no_animations",
			src:  `model: {frame_w: 8, frame_h: 8}`,
			want: ErrNoAnimations,
		},
		{
			name: "duplicate",
			src: `
model: {frame_w: 8, frame_h: 8}
animations: [{name: a}, {name: a}]`,
			want: ErrDuplicateClipName,
		},
		{
			name: "empty_name",
			src: `
model: {frame_w: 8, frame_h: 8}
animations: [{name: " "}]`,
			want: ErrEmptyClipName,
		},
		{
			name: "bad_model_frame",
			src: `
animations: [{name: a, frame_w: 8, frame_h: 8}]`,
			want: ErrBadFrameSize,
		},
		{
			name: "bad_mode",
			src: `
mode: holodeck
model: {frame_w: 8, frame_h: 8}
animations: [{name: a}]`,
			want: ErrBadMode,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var spec SceneSpec
			if err := yaml.Unmarshal([]byte(c.src), &spec); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			spec.ApplyDefaults()
			err := spec.Validate()
			if c.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if spec.Mode != "marker" || spec.Dwell.FocusScale != 1.2 || spec.Dwell.PressedScale != 0.9 {
					t.Fatalf("defaults not applied: %+v", spec)
				}
				if spec.Animations[1].Looping() {
					t.Fatalf("loop: false ignored")
				}
				return
			}
			if !errors.Is(err, c.want) {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{`"#ff0000"`, color.NRGBA{R: 0xff, A: 0xff}, false},
		{`"#00ff0080"`, color.NRGBA{G: 0xff, A: 0x80}, false},
		{`gold`, color.RGBA{R: 0xff, G: 0xd7, A: 0xff}, false},
		{`"#12"`, nil, true},
		{`[1, 2]`, nil, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Color != c.want {
				t.Fatalf("color = %#v, want %#v", got.Color, c.want)
			}
		})
	}
}

func TestWatcherReportsSceneChanges(t *testing.T) {
	dir := filepath.Join(t.TempDir(), Dir)
	if err := os.MkdirAll(filepath.Join(dir, "scripts"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "scripts", "fade.tengo"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != "scripts/fade.tengo" {
			t.Fatalf("event = %q, want scripts/fade.tengo", name)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("no watcher event")
	}
}

func TestWatcherErr(t *testing.T) {
	dir := filepath.Join(t.TempDir(), Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := w.Err(); err != nil {
		t.Fatalf("Err = %v, want nil", err)
	}
	want := errors.New("overflow")
	w.Errors <- want
	if err := w.Err(); err != want {
		t.Fatalf("Err = %v, want %v", err, want)
	}
	if err := w.Err(); err != nil {
		t.Fatalf("Err should drain, got %v", err)
	}

	var nilWatcher *Watcher
	if nilWatcher.Err() != nil || nilWatcher.Drain() != nil {
		t.Fatalf("nil watcher should report nothing")
	}
}

func TestBase(t *testing.T) {
	cases := map[string]string{
		"prefabs/scene.yaml":            "scene.yaml",
		"/x/prefabs/scripts/fade.tengo": "scripts/fade.tengo",
		"/elsewhere/scene.yaml":         "scene.yaml",
	}
	for in, want := range cases {
		if got := Base(in); got != want {
			t.Fatalf("Base(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMarshalTuning(t *testing.T) {
	spec, err := LoadSceneSpec("scene.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	data, err := spec.MarshalTuning()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got TuningSpec
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != spec.Tuning() {
		t.Fatalf("tuning = %+v, want %+v", got, spec.Tuning())
	}
}
