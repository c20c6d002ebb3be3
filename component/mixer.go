package component

import "github.com/hajimehoshi/ebiten/v2"

// Mixer owns the actions of one character and blends them when drawing.
type Mixer struct {
	actions []*ClipAction
	byName  map[string]*ClipAction
}

// NewMixer creates an empty mixer.
func NewMixer() *Mixer {
	return &Mixer{byName: make(map[string]*ClipAction)}
}

// ClipAction returns the action bound to anim.Name, creating it on first use.
func (m *Mixer) ClipAction(anim *Animation) *ClipAction {
	if m == nil || anim == nil {
		return nil
	}
	if a, ok := m.byName[anim.Name]; ok {
		return a
	}
	a := NewClipAction(anim)
	m.actions = append(m.actions, a)
	m.byName[anim.Name] = a
	return a
}

// Actions returns the actions in creation order.
func (m *Mixer) Actions() []*ClipAction {
	if m == nil {
		return nil
	}
	out := make([]*ClipAction, 0, len(m.actions))
	return append(out, m.actions...)
}

// Update advances every action by dt seconds.
func (m *Mixer) Update(dt float64) {
	if m == nil {
		return
	}
	for _, a := range m.actions {
		a.Update(dt)
	}
}

// TotalWeight sums the weights of all contributing actions.
func (m *Mixer) TotalWeight() float64 {
	if m == nil {
		return 0
	}
	var total float64
	for _, a := range m.actions {
		total += a.Weight()
	}
	return total
}

// Draw draws the current frame of every contributing action, each with its
// weight as alpha.
func (m *Mixer) Draw(dst *ebiten.Image, op *ebiten.DrawImageOptions) {
	if m == nil || dst == nil {
		return
	}
	for _, a := range m.actions {
		w := a.Weight()
		if w <= 0 {
			continue
		}
		var dop ebiten.DrawImageOptions
		if op != nil {
			dop = *op
		}
		dop.ColorScale.ScaleAlpha(float32(w))
		a.Anim.DrawFrame(dst, a.Frame(), &dop)
	}
}
