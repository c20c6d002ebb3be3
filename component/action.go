package component

import "github.com/milk9111/animviewer/common"

// ClipAction is the playback state of one Animation: a time cursor, a time
// scale and a blend weight that can be faded linearly over time.
type ClipAction struct {
	Anim *Animation

	time      float64
	timeScale float64
	weight    float64
	enabled   bool
	running   bool

	fading   bool
	fadeFrom float64
	fadeTo   float64
	fadeLen  float64
	fadeAt   float64
}

// NewClipAction wraps anim with a stopped action at full weight.
func NewClipAction(anim *Animation) *ClipAction {
	return &ClipAction{
		Anim:      anim,
		timeScale: 1,
		weight:    1,
		enabled:   true,
	}
}

// Name returns the clip name of the wrapped animation.
func (a *ClipAction) Name() string {
	if a == nil || a.Anim == nil {
		return ""
	}
	return a.Anim.Name
}

// Reset rewinds the cursor, re-enables the action and cancels any fade.
func (a *ClipAction) Reset() {
	if a == nil {
		return
	}
	a.time = 0
	a.enabled = true
	a.fading = false
}

// SetEffectiveTimeScale sets the playback speed multiplier.
func (a *ClipAction) SetEffectiveTimeScale(scale float64) {
	if a == nil {
		return
	}
	a.timeScale = scale
}

// SetEffectiveWeight sets the blend weight immediately and cancels any fade.
func (a *ClipAction) SetEffectiveWeight(w float64) {
	if a == nil {
		return
	}
	a.weight = common.Clamp(w, 0, 1)
	a.fading = false
}

// FadeIn blends the weight from 0 to 1 over d seconds.
func (a *ClipAction) FadeIn(d float64) {
	a.scheduleFade(d, 0, 1)
}

// FadeOut blends the weight from its current value to 0 over d seconds. The
// action keeps playing until the weight reaches 0 and is then disabled.
func (a *ClipAction) FadeOut(d float64) {
	if a == nil {
		return
	}
	a.scheduleFade(d, a.Weight(), 0)
}

func (a *ClipAction) scheduleFade(d, from, to float64) {
	if a == nil {
		return
	}
	if d <= 0 {
		a.fading = false
		a.weight = to
		if to == 0 {
			a.enabled = false
		}
		return
	}
	a.fading = true
	a.fadeFrom = from
	a.fadeTo = to
	a.fadeLen = d
	a.fadeAt = 0
	a.weight = from
}

// Play starts or continues playback.
func (a *ClipAction) Play() {
	if a == nil {
		return
	}
	a.running = true
}

// Stop halts playback and rewinds.
func (a *ClipAction) Stop() {
	if a == nil {
		return
	}
	a.running = false
	a.fading = false
	a.time = 0
}

// Update advances the cursor and any fade by dt seconds.
func (a *ClipAction) Update(dt float64) {
	if a == nil || !a.running || !a.enabled || dt <= 0 {
		return
	}
	a.time += dt * a.timeScale
	if a.Anim != nil && !a.Anim.Loop {
		if d := a.Anim.Duration(); d > 0 && a.time > d {
			a.time = d
		}
	}

	if !a.fading {
		return
	}
	a.fadeAt += dt
	if a.fadeAt >= a.fadeLen {
		a.fading = false
		a.weight = a.fadeTo
		if a.fadeTo == 0 {
			a.enabled = false
		}
		return
	}
	a.weight = common.Lerp(a.fadeFrom, a.fadeTo, a.fadeAt/a.fadeLen)
}

// Weight returns the effective blend weight; disabled or stopped actions
// contribute nothing.
func (a *ClipAction) Weight() float64 {
	if a == nil || !a.enabled || !a.running {
		return 0
	}
	return a.weight
}

// Time returns the playback cursor in seconds.
func (a *ClipAction) Time() float64 {
	if a == nil {
		return 0
	}
	return a.time
}

// IsRunning reports whether the action is playing and still contributes.
func (a *ClipAction) IsRunning() bool {
	return a != nil && a.running && a.enabled
}

// IsFading reports whether a weight fade is in progress.
func (a *ClipAction) IsFading() bool {
	return a != nil && a.fading
}

// Frame returns the frame index for the current cursor.
func (a *ClipAction) Frame() int {
	if a == nil {
		return 0
	}
	return a.Anim.FrameAt(a.time)
}
