package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// DefaultFadeDuration is the crossfade length in seconds between clips.
	DefaultFadeDuration = 0.5

	// DwellThreshold is how long gaze must rest on a target before it is
	// selected, in seconds.
	DwellThreshold = 1.5

	DefaultFocusScale   = 1.2
	DefaultPressedScale = 0.9
	DefaultPressedHold  = 0.15
)
