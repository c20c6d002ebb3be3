package system

// Action is the per-clip playback capability the crossfade controller drives.
// component.ClipAction implements it.
type Action interface {
	Reset()
	SetEffectiveTimeScale(scale float64)
	SetEffectiveWeight(w float64)
	FadeIn(d float64)
	FadeOut(d float64)
	Play()
}

// ClipRegistry stores clip actions by name in registration order. Entries are
// never replaced or removed.
type ClipRegistry struct {
	clips map[string]Action
	order []string
}

// NewClipRegistry creates an empty registry.
func NewClipRegistry() *ClipRegistry {
	return &ClipRegistry{clips: make(map[string]Action)}
}

// Register adds a clip. It reports false for an empty name, a nil action or a
// name that is already registered.
func (r *ClipRegistry) Register(name string, a Action) bool {
	if r == nil || name == "" || a == nil {
		return false
	}
	if _, ok := r.clips[name]; ok {
		return false
	}
	r.clips[name] = a
	r.order = append(r.order, name)
	return true
}

// Get returns a clip by name.
func (r *ClipRegistry) Get(name string) (Action, bool) {
	if r == nil || name == "" {
		return nil, false
	}
	a, ok := r.clips[name]
	return a, ok
}

// Names returns registered names in registration order.
func (r *ClipRegistry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.order))
	return append(out, r.order...)
}

// Len returns the number of registered clips.
func (r *ClipRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}
