package obj

import (
	"math"
)

// Camera is the viewer's head pose: a view centred on a world coordinate,
// moved by look input and optionally eased back toward its rest point.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64

	// rest point the view returns to when the session ends
	homeX, homeY float64

	// smoothing factor (0..1). higher -> faster follow. e.g. 0.15
	smooth float64
	// look bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera with the given logical screen size and initial zoom.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	c := &Camera{screenW: screenW, screenH: screenH, zoom: zoom, smooth: 0.15}
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	c.homeX, c.homeY = c.PosX, c.PosY
	return c
}

// SetWorldBounds sets the world pixel dimensions the view may look across.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
}

func (c *Camera) SetSmooth(f float64) {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	c.smooth = f
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	if c.zoom == 0 {
		return c.PosX, c.PosY
	}
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// Center returns the world point at the middle of the view. The gaze ray is
// cast through it.
func (c *Camera) Center() (float64, float64) {
	return c.PosX, c.PosY
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// ScreenToWorld maps a screen pixel to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	vx, vy := c.ViewTopLeft()
	z := c.zoom
	if z == 0 {
		z = 1
	}
	return vx + float64(sx)/z, vy + float64(sy)/z
}

// Look turns the head by (dx, dy) world pixels.
func (c *Camera) Look(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	c.SnapTo(c.PosX+dx, c.PosY+dy)
}

// Update eases the view toward its rest point. Call from the fixed-rate
// Update loop when no session is running.
func (c *Camera) Update() {
	if c.smooth <= 0 {
		c.SnapTo(c.homeX, c.homeY)
		return
	}
	x := c.PosX + (c.homeX-c.PosX)*c.smooth
	y := c.PosY + (c.homeY-c.PosY)*c.smooth
	if math.Abs(x-c.homeX) < 1 && math.Abs(y-c.homeY) < 1 {
		x, y = c.homeX, c.homeY
	}
	c.SnapTo(x, y)
}

// SnapTo immediately sets the camera center to the given world coordinates,
// snapped to the zoom grid and clamped to the look bounds.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y

	// snap position to 1/zoom grid to align source texels to integer screen pixels
	if c.zoom != 0 {
		c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
		c.PosY = math.Round(c.PosY*c.zoom) / c.zoom
	}

	if c.worldW > 0 {
		c.PosX = clamp(c.PosX, 0, c.worldW)
	}
	if c.worldH > 0 {
		c.PosY = clamp(c.PosY, 0, c.worldH)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
