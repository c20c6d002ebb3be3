package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/animviewer/common"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoAnimations      = errors.New("prefabs: scene has no animations")
	ErrDuplicateClipName = errors.New("prefabs: duplicate animation name")
	ErrEmptyClipName     = errors.New("prefabs: empty animation name")
	ErrBadFrameSize      = errors.New("prefabs: frame size must be positive")
	ErrBadMode           = errors.New("prefabs: unknown mode")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SceneSpec describes one character, its clips and the viewer tuning.
type SceneSpec struct {
	Name         string          `yaml:"name"`
	Mode         string          `yaml:"mode"`
	Model        ModelSpec       `yaml:"model"`
	Animations   []AnimationSpec `yaml:"animations"`
	FadeDuration float64         `yaml:"fade_duration"`
	FadeScript   string          `yaml:"fade_script"`
	Dwell        DwellSpec       `yaml:"dwell"`
	GazePanel    GazePanelSpec   `yaml:"gaze_panel"`
	Palette      PaletteSpec     `yaml:"palette"`
}

type ModelSpec struct {
	Name   string  `yaml:"name"`
	Sheet  string  `yaml:"sheet"`
	FrameW int     `yaml:"frame_w"`
	FrameH int     `yaml:"frame_h"`
	Scale  float64 `yaml:"scale"`
}

type AnimationSpec struct {
	Name       string  `yaml:"name"`
	Sheet      string  `yaml:"sheet"`
	Row        int     `yaml:"row"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       *bool   `yaml:"loop"`
}

// Looping reports whether the clip loops; clips loop unless told otherwise.
func (a AnimationSpec) Looping() bool {
	return a.Loop == nil || *a.Loop
}

type DwellSpec struct {
	Threshold    float64 `yaml:"threshold"`
	FocusScale   float64 `yaml:"focus_scale"`
	PressedScale float64 `yaml:"pressed_scale"`
	PressedHold  float64 `yaml:"pressed_hold"`
}

type GazePanelSpec struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	ButtonW float64 `yaml:"button_w"`
	ButtonH float64 `yaml:"button_h"`
	Spacing float64 `yaml:"spacing"`
	Columns int     `yaml:"columns"`
}

type PaletteSpec struct {
	Background YAMLColor `yaml:"background"`
	Button     YAMLColor `yaml:"button"`
	Active     YAMLColor `yaml:"active"`
	Reticle    YAMLColor `yaml:"reticle"`
}

// ClipNames returns the animation names in list order.
func (s SceneSpec) ClipNames() []string {
	names := make([]string, 0, len(s.Animations))
	for _, a := range s.Animations {
		names = append(names, a.Name)
	}
	return names
}

// LoadSceneSpec loads, defaults and validates a scene file.
func LoadSceneSpec(filename string) (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return nil, err
	}
	spec.ApplyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

// ApplyDefaults fills unset tuning values.
func (s *SceneSpec) ApplyDefaults() {
	if s.Mode == "" {
		s.Mode = "marker"
	}
	if s.Model.Scale <= 0 {
		s.Model.Scale = 1
	}
	if s.FadeDuration <= 0 {
		s.FadeDuration = common.DefaultFadeDuration
	}
	if s.Dwell.Threshold <= 0 {
		s.Dwell.Threshold = common.DwellThreshold
	}
	if s.Dwell.FocusScale <= 1 {
		s.Dwell.FocusScale = common.DefaultFocusScale
	}
	if s.Dwell.PressedScale <= 0 || s.Dwell.PressedScale >= 1 {
		s.Dwell.PressedScale = common.DefaultPressedScale
	}
	if s.Dwell.PressedHold < 0 {
		s.Dwell.PressedHold = common.DefaultPressedHold
	}
	if s.GazePanel.ButtonW <= 0 {
		s.GazePanel.ButtonW = 200
	}
	if s.GazePanel.ButtonH <= 0 {
		s.GazePanel.ButtonH = 56
	}
	if s.GazePanel.Columns <= 0 {
		s.GazePanel.Columns = 3
	}
	for i := range s.Animations {
		if s.Animations[i].FrameW <= 0 {
			s.Animations[i].FrameW = s.Model.FrameW
		}
		if s.Animations[i].FrameH <= 0 {
			s.Animations[i].FrameH = s.Model.FrameH
		}
	}
	s.Palette.applyDefaults()
}

// Validate checks the clip list and frame sizes.
func (s *SceneSpec) Validate() error {
	switch s.Mode {
	case "marker", "ar", "vr":
	default:
		return fmt.Errorf("%w: %q", ErrBadMode, s.Mode)
	}
	if s.Model.FrameW <= 0 || s.Model.FrameH <= 0 {
		return fmt.Errorf("%w: model %q", ErrBadFrameSize, s.Model.Name)
	}
	if len(s.Animations) == 0 {
		return ErrNoAnimations
	}
	seen := make(map[string]bool, len(s.Animations))
	for i, a := range s.Animations {
		if strings.TrimSpace(a.Name) == "" {
			return fmt.Errorf("%w: index %d", ErrEmptyClipName, i)
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateClipName, a.Name)
		}
		seen[a.Name] = true
		if a.FrameW <= 0 || a.FrameH <= 0 {
			return fmt.Errorf("%w: animation %q", ErrBadFrameSize, a.Name)
		}
	}
	return nil
}

func (p *PaletteSpec) applyDefaults() {
	if p.Background.Color == nil {
		p.Background.Color = colornames.Midnightblue
	}
	if p.Button.Color == nil {
		p.Button.Color = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	}
	if p.Active.Color == nil {
		p.Active.Color = colornames.Gold
	}
	if p.Reticle.Color == nil {
		p.Reticle.Color = colornames.White
	}
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// TuningSpec is the hot-reloadable subset of a scene.
type TuningSpec struct {
	FadeDuration float64   `yaml:"fade_duration"`
	FadeScript   string    `yaml:"fade_script,omitempty"`
	ModelScale   float64   `yaml:"model_scale"`
	Dwell        DwellSpec `yaml:"dwell"`
}

// Tuning returns the values a reload may change.
func (s SceneSpec) Tuning() TuningSpec {
	return TuningSpec{
		FadeDuration: s.FadeDuration,
		FadeScript:   s.FadeScript,
		ModelScale:   s.Model.Scale,
		Dwell:        s.Dwell,
	}
}

// MarshalTuning renders the tuning as YAML.
func (s SceneSpec) MarshalTuning() ([]byte, error) {
	data, err := yaml.Marshal(s.Tuning())
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal tuning: %w", err)
	}
	return data, nil
}
