package system

import "github.com/milk9111/animviewer/common"

// dwellEpsilon absorbs float drift when many tick deltas are summed.
const dwellEpsilon = 1e-9

// GazeTarget is a spatial object that can be selected by looking at it.
type GazeTarget interface {
	TargetID() int
	ClipName() string
	SetVisualScale(scale float64)
}

// GazeSource returns the nearest target under the view-centre ray, if any.
type GazeSource interface {
	GazeTarget() (GazeTarget, bool)
}

// Selector receives dwell selections.
type Selector interface {
	Select(name string)
}

// DwellConfig tunes the dwell timer. Zero values take the defaults from
// common.
type DwellConfig struct {
	Threshold    float64
	FocusScale   float64
	PressedScale float64
	PressedHold  float64
}

func (c DwellConfig) withDefaults() DwellConfig {
	if c.Threshold <= 0 {
		c.Threshold = common.DwellThreshold
	}
	if c.FocusScale <= 1 {
		c.FocusScale = common.DefaultFocusScale
	}
	if c.PressedScale <= 0 || c.PressedScale >= 1 {
		c.PressedScale = common.DefaultPressedScale
	}
	if c.PressedHold < 0 {
		c.PressedHold = 0
	}
	return c
}

// DwellTimer turns sustained gaze on a target into a selection. A selection
// fires every Threshold seconds of continuous gaze on the same target.
type DwellTimer struct {
	cfg DwellConfig
	sel Selector

	target  GazeTarget
	elapsed float64
	pressed float64

	// OnConfirm runs after each dwell selection, including repeats.
	OnConfirm func(name string)
}

// NewDwellTimer creates a timer that reports selections to sel.
func NewDwellTimer(cfg DwellConfig, sel Selector) *DwellTimer {
	return &DwellTimer{cfg: cfg.withDefaults(), sel: sel}
}

// Configure replaces the tuning. The current dwell episode is kept.
func (d *DwellTimer) Configure(cfg DwellConfig) {
	if d == nil {
		return
	}
	d.cfg = cfg.withDefaults()
}

// Config returns the effective tuning.
func (d *DwellTimer) Config() DwellConfig {
	if d == nil {
		return DwellConfig{}.withDefaults()
	}
	return d.cfg
}

// Target returns the current gaze target.
func (d *DwellTimer) Target() (GazeTarget, bool) {
	if d == nil || d.target == nil {
		return nil, false
	}
	return d.target, true
}

// Elapsed returns the accumulated dwell time of the current episode.
func (d *DwellTimer) Elapsed() float64 {
	if d == nil {
		return 0
	}
	return d.elapsed
}

// Progress returns elapsed/threshold in [0, 1].
func (d *DwellTimer) Progress() float64 {
	if d == nil {
		return 0
	}
	return common.Clamp(d.elapsed/d.cfg.Threshold, 0, 1)
}

// Update runs one tick. It does nothing but clear leftover state when the
// session is not immersive.
func (d *DwellTimer) Update(dt float64, immersive bool, src GazeSource) {
	if d == nil {
		return
	}
	if !immersive || src == nil {
		d.Reset()
		return
	}
	if dt < 0 {
		dt = 0
	}

	next, ok := src.GazeTarget()
	if !ok {
		next = nil
	}
	if !sameTarget(d.target, next) {
		if d.target != nil {
			d.target.SetVisualScale(1)
		}
		d.target = next
		d.elapsed = 0
		d.pressed = 0
	}
	if d.target == nil {
		return
	}

	if d.pressed > 0 {
		d.pressed -= dt
	} else {
		d.target.SetVisualScale(d.cfg.FocusScale)
	}
	d.elapsed += dt

	if d.elapsed+dwellEpsilon >= d.cfg.Threshold {
		d.fire()
	}
}

// Confirm selects the focused target at once, as if the dwell had completed,
// and starts a new episode on it. It reports false when nothing is focused.
func (d *DwellTimer) Confirm() bool {
	if d == nil || d.target == nil {
		return false
	}
	d.fire()
	return true
}

func (d *DwellTimer) fire() {
	d.elapsed = 0
	if d.sel != nil {
		d.sel.Select(d.target.ClipName())
	}
	if d.OnConfirm != nil {
		d.OnConfirm(d.target.ClipName())
	}
	d.target.SetVisualScale(d.cfg.PressedScale)
	d.pressed = d.cfg.PressedHold
}

// Reset drops the current target, restoring its scale.
func (d *DwellTimer) Reset() {
	if d == nil {
		return
	}
	if d.target != nil {
		d.target.SetVisualScale(1)
	}
	d.target = nil
	d.elapsed = 0
	d.pressed = 0
}

func sameTarget(a, b GazeTarget) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.TargetID() == b.TargetID()
}
