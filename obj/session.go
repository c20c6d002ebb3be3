package obj

import (
	"fmt"
	"log"
	"strings"
)

// Mode is how the character is presented.
type Mode int

const (
	// ModeMarker pins the character to a fixed marker anchor.
	ModeMarker Mode = iota
	// ModeAR lets the user place the character on a floor hit.
	ModeAR
	// ModeVR shows an immersive view with the gaze panel.
	ModeVR
)

func (m Mode) String() string {
	switch m {
	case ModeMarker:
		return "marker"
	case ModeAR:
		return "ar"
	case ModeVR:
		return "vr"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode accepts "marker", "ar" or "vr".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "marker":
		return ModeMarker, nil
	case "ar":
		return ModeAR, nil
	case "vr":
		return ModeVR, nil
	}
	return ModeMarker, fmt.Errorf("session: unknown mode %q", s)
}

// Session tracks whether an immersive presentation is running.
type Session struct {
	mode    Mode
	started bool

	OnStart func(Mode)
	OnEnd   func(Mode)
}

func NewSession(mode Mode) *Session {
	return &Session{mode: mode}
}

func (s *Session) Mode() Mode {
	return s.mode
}

// Start enters immersive presentation. Marker mode has none and reports
// false.
func (s *Session) Start() bool {
	if s == nil || s.started || s.mode == ModeMarker {
		return false
	}
	s.started = true
	log.Printf("session: %s started", s.mode)
	if s.OnStart != nil {
		s.OnStart(s.mode)
	}
	return true
}

// End leaves immersive presentation.
func (s *Session) End() bool {
	if s == nil || !s.started {
		return false
	}
	s.started = false
	log.Printf("session: %s ended", s.mode)
	if s.OnEnd != nil {
		s.OnEnd(s.mode)
	}
	return true
}

// Immersive reports whether an AR or VR session is running.
func (s *Session) Immersive() bool {
	return s != nil && s.started
}

// HeadsetImmersive reports whether a VR session is running; only then does
// gaze selection apply.
func (s *Session) HeadsetImmersive() bool {
	return s != nil && s.started && s.mode == ModeVR
}
