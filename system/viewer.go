package system

// Viewer owns the clip registry, the selection surface with its crossfade
// controller, and the dwell timer. The frame loop holds exactly one.
type Viewer struct {
	Clips   *ClipRegistry
	Surface *SelectionSurface
	Dwell   *DwellTimer

	defaultClip string
}

// NewViewer creates a viewer for the ordered clip names. The first name is
// the clip that starts playing once it has loaded.
func NewViewer(names []string, policy FadePolicy, dwell DwellConfig) *Viewer {
	clips := NewClipRegistry()
	surface := NewSelectionSurface(clips, names, policy)
	v := &Viewer{
		Clips:   clips,
		Surface: surface,
		Dwell:   NewDwellTimer(dwell, surface),
	}
	if len(names) > 0 {
		v.defaultClip = names[0]
	}
	return v
}

// RegisterClip adds a loaded clip. The default clip starts at full weight if
// nothing has been selected before it arrived. Names outside the surface's
// list are rejected.
func (v *Viewer) RegisterClip(name string, a Action) bool {
	if v == nil || !v.knows(name) {
		return false
	}
	if !v.Clips.Register(name, a) {
		return false
	}
	if name == v.defaultClip {
		v.Surface.Controller().Start(name)
	}
	return true
}

// Select forwards to the selection surface.
func (v *Viewer) Select(name string) {
	if v == nil {
		return
	}
	v.Surface.Select(name)
}

// Tick advances the dwell timer. Clip playback is advanced by the mixer that
// owns the actions.
func (v *Viewer) Tick(dt float64, immersive bool, src GazeSource) {
	if v == nil {
		return
	}
	v.Dwell.Update(dt, immersive, src)
}

// Ready reports whether every listed clip has been registered.
func (v *Viewer) Ready() bool {
	return v != nil && v.Clips.Len() == len(v.Surface.names)
}

func (v *Viewer) knows(name string) bool {
	for _, n := range v.Surface.names {
		if n == name {
			return true
		}
	}
	return false
}
