package system

import "github.com/milk9111/animviewer/common"

// FadePolicy picks the crossfade duration for a transition. from is empty
// when nothing is playing yet.
type FadePolicy interface {
	FadeDuration(from, to string) float64
}

// ConstantFade uses the same duration for every transition.
type ConstantFade float64

func (f ConstantFade) FadeDuration(from, to string) float64 {
	return float64(f)
}

// SelectionSurface is the single entry point every input modality uses to
// pick a clip. Each selectable element maps to exactly one of Names().
type SelectionSurface struct {
	names     []string
	policy    FadePolicy
	ctrl      *CrossfadeController
	listeners []func(name string)
}

// NewSelectionSurface creates a surface for the given clip names, in order,
// driving a crossfade controller over clips.
func NewSelectionSurface(clips *ClipRegistry, names []string, policy FadePolicy) *SelectionSurface {
	if policy == nil {
		policy = ConstantFade(common.DefaultFadeDuration)
	}
	s := &SelectionSurface{
		names:  append([]string(nil), names...),
		policy: policy,
	}
	s.ctrl = NewCrossfadeController(clips, s.notify)
	return s
}

// Names returns the selectable clip names in creation order.
func (s *SelectionSurface) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.names...)
}

// NameAt returns the i-th selectable name.
func (s *SelectionSurface) NameAt(i int) (string, bool) {
	if s == nil || i < 0 || i >= len(s.names) {
		return "", false
	}
	return s.names[i], true
}

// Controller returns the crossfade controller behind the surface.
func (s *SelectionSurface) Controller() *CrossfadeController {
	if s == nil {
		return nil
	}
	return s.ctrl
}

// SetPolicy swaps the fade policy; nil is ignored.
func (s *SelectionSurface) SetPolicy(p FadePolicy) {
	if s == nil || p == nil {
		return
	}
	s.policy = p
}

// OnSelected registers a visual-state callback fired once per transition.
func (s *SelectionSurface) OnSelected(fn func(name string)) {
	if s == nil || fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// Select requests a transition to name. Any string is accepted; unknown or
// not yet loaded names and the active name are no-ops.
func (s *SelectionSurface) Select(name string) {
	if s == nil {
		return
	}
	from, _ := s.ctrl.Active()
	s.ctrl.Activate(name, s.policy.FadeDuration(from, name))
}

// Active returns the active clip name.
func (s *SelectionSurface) Active() (string, bool) {
	if s == nil {
		return "", false
	}
	return s.ctrl.Active()
}

func (s *SelectionSurface) notify(name string) {
	for _, fn := range s.listeners {
		fn(name)
	}
}
