package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/animviewer/component"
)

// Model is the character: a bind-pose image, the mixer that blends its
// clips, and where it stands in the world. X/Y is the feet position.
type Model struct {
	X, Y  float64
	Scale float64

	// Visible is false in AR mode until the model has been placed.
	Visible bool

	bindPose *ebiten.Image
	mixer    *component.Mixer
}

func NewModel(bindPose *ebiten.Image, scale float64) *Model {
	if scale <= 0 {
		scale = 1
	}
	return &Model{
		Scale:    scale,
		Visible:  true,
		bindPose: bindPose,
		mixer:    component.NewMixer(),
	}
}

func (m *Model) Mixer() *component.Mixer {
	return m.mixer
}

// Place moves the model's feet to (x, y) and shows it.
func (m *Model) Place(x, y float64) {
	m.X = x
	m.Y = y
	m.Visible = true
}

// Update advances every clip action by dt seconds.
func (m *Model) Update(dt float64) {
	m.mixer.Update(dt)
}

// Draw renders the blended clips offset by the view's top-left. With no clip
// contributing weight the bind pose is drawn instead.
func (m *Model) Draw(screen *ebiten.Image, camX, camY float64) {
	if m == nil || !m.Visible {
		return
	}
	w, h := m.frameSize()
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(m.Scale, m.Scale)
	op.GeoM.Translate(m.X-float64(w)*m.Scale/2-camX, m.Y-float64(h)*m.Scale-camY)

	if m.mixer.TotalWeight() > 0 {
		m.mixer.Draw(screen, op)
		return
	}
	if m.bindPose != nil {
		screen.DrawImage(m.bindPose, op)
	}
}

func (m *Model) frameSize() (int, int) {
	for _, a := range m.mixer.Actions() {
		if a.Anim != nil && a.Anim.FrameW > 0 {
			return a.Anim.FrameW, a.Anim.FrameH
		}
	}
	if m.bindPose != nil {
		b := m.bindPose.Bounds()
		return b.Dx(), b.Dy()
	}
	return 0, 0
}
