package system

// CrossfadeController tracks the active clip and blends between clips.
type CrossfadeController struct {
	clips    *ClipRegistry
	active   string
	onChange func(name string)
}

// NewCrossfadeController creates a controller over clips. onChange, if set,
// is called once for every transition that actually happens.
func NewCrossfadeController(clips *ClipRegistry, onChange func(name string)) *CrossfadeController {
	return &CrossfadeController{clips: clips, onChange: onChange}
}

// Active returns the active clip name.
func (c *CrossfadeController) Active() (string, bool) {
	if c == nil || c.active == "" {
		return "", false
	}
	return c.active, true
}

// Activate fades from the active clip to name over fade seconds. Unknown
// names and the already active name are ignored. It reports whether a
// transition happened.
func (c *CrossfadeController) Activate(name string, fade float64) bool {
	if c == nil {
		return false
	}
	next, ok := c.clips.Get(name)
	if !ok || name == c.active {
		return false
	}
	if fade < 0 {
		fade = 0
	}

	if prev, ok := c.clips.Get(c.active); ok {
		prev.FadeOut(fade)
	}

	next.Reset()
	next.SetEffectiveTimeScale(1)
	next.SetEffectiveWeight(1)
	next.FadeIn(fade)
	next.Play()

	c.active = name
	c.notify(name)
	return true
}

// Start plays name at full weight without a fade. It only applies while no
// clip is active.
func (c *CrossfadeController) Start(name string) bool {
	if c == nil || c.active != "" {
		return false
	}
	a, ok := c.clips.Get(name)
	if !ok {
		return false
	}
	a.Reset()
	a.SetEffectiveTimeScale(1)
	a.SetEffectiveWeight(1)
	a.Play()

	c.active = name
	c.notify(name)
	return true
}

func (c *CrossfadeController) notify(name string) {
	if c.onChange != nil {
		c.onChange(name)
	}
}
