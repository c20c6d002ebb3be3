package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GazeTarget is one world-space button of the immersive gaze panel. Its clip
// name is fixed at creation.
type GazeTarget struct {
	id   int
	name string

	X, Y, W, H float64
	scale      float64
}

// NewGazeTarget creates a target centred on (x, y).
func NewGazeTarget(id int, name string, x, y, w, h float64) *GazeTarget {
	return &GazeTarget{id: id, name: name, X: x, Y: y, W: w, H: h, scale: 1}
}

func (t *GazeTarget) TargetID() int { return t.id }

func (t *GazeTarget) ClipName() string { return t.name }

func (t *GazeTarget) SetVisualScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	t.scale = scale
}

// VisualScale returns the current feedback scale.
func (t *GazeTarget) VisualScale() float64 { return t.scale }

// Draw renders the target offset by the view's top-left. active marks the
// clip that is currently playing; progress is the dwell fill in [0, 1].
func (t *GazeTarget) Draw(screen *ebiten.Image, camX, camY float64, face text.Face, fill, activeColor color.Color, active bool, progress float64) {
	w := t.W * t.scale
	h := t.H * t.scale
	x := t.X - w/2 - camX
	y := t.Y - h/2 - camY

	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), fill, false)
	if progress > 0 {
		vector.FillRect(screen, float32(x), float32(y+h-4), float32(w*progress), 4, activeColor, false)
	}
	if active {
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 3, activeColor, false)
	}

	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+w/2, y+h/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, t.name, face, op)
}
