package component

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Animation holds the frames of one clip sliced from a rectangular
// spritesheet. Frames are laid out left-to-right, top-to-bottom. Playback
// state lives in ClipAction; an Animation is shared, read-only data.
type Animation struct {
	Name       string
	Sheet      *ebiten.Image
	FrameW     int
	FrameH     int
	FrameCount int
	Cols       int
	FPS        float64
	Loop       bool

	startIndex int
	frames     []*ebiten.Image
}

// NewAnimation creates an Animation. `sheet` is the full spritesheet image.
// `frameW`/`frameH` are the per-frame pixel size. `frameCount` is how many
// frames to read (use 0 to infer from sheet size). `fps` defaults to 12 if
// <= 0.
func NewAnimation(name string, sheet *ebiten.Image, frameW, frameH, frameCount int, fps float64, loop bool) *Animation {
	if sheet == nil || frameW <= 0 || frameH <= 0 {
		return &Animation{Name: name}
	}
	if fps <= 0 {
		fps = 12
	}
	bounds := sheet.Bounds()
	cols := bounds.Dx() / frameW
	rows := bounds.Dy() / frameH
	maxFrames := cols * rows
	if frameCount <= 0 || frameCount > maxFrames {
		frameCount = maxFrames
	}
	a := &Animation{
		Name:       name,
		Sheet:      sheet,
		FrameW:     frameW,
		FrameH:     frameH,
		FrameCount: frameCount,
		Cols:       cols,
		FPS:        fps,
		Loop:       loop,
	}
	a.buildFrames()
	return a
}

// NewAnimationRow creates an animation that starts at the given row (0-based)
// and reads `frameCount` frames left-to-right. If the requested frames exceed
// the row length they will continue onto subsequent rows.
func NewAnimationRow(name string, sheet *ebiten.Image, frameW, frameH, row, frameCount int, fps float64, loop bool) *Animation {
	a := NewAnimation(name, sheet, frameW, frameH, frameCount, fps, loop)
	if a.Sheet == nil {
		return a
	}
	if row < 0 {
		row = 0
	}
	a.startIndex = row * a.Cols
	if maxFrames := a.Cols*(a.Sheet.Bounds().Dy()/a.FrameH) - a.startIndex; a.FrameCount > maxFrames {
		a.FrameCount = maxFrames
	}
	a.buildFrames()
	return a
}

// buildFrames slices the sheet into individual *ebiten.Image frames starting
// at a.startIndex and stores them in a.frames.
func (a *Animation) buildFrames() {
	if a == nil || a.Sheet == nil || a.FrameCount <= 0 || a.Cols <= 0 {
		return
	}
	a.frames = make([]*ebiten.Image, a.FrameCount)
	for i := 0; i < a.FrameCount; i++ {
		idx := a.startIndex + i
		col := idx % a.Cols
		row := idx / a.Cols
		sx := col * a.FrameW
		sy := row * a.FrameH
		r := image.Rect(sx, sy, sx+a.FrameW, sy+a.FrameH)
		a.frames[i] = a.Sheet.SubImage(r).(*ebiten.Image)
	}
}

// Duration returns the clip length in seconds.
func (a *Animation) Duration() float64 {
	if a == nil || a.FPS <= 0 || a.FrameCount <= 0 {
		return 0
	}
	return float64(a.FrameCount) / a.FPS
}

// FrameAt maps a playback time in seconds to a frame index. Looping clips
// wrap; the rest hold their last frame.
func (a *Animation) FrameAt(t float64) int {
	if a == nil || a.FrameCount <= 1 || a.FPS <= 0 || t <= 0 {
		return 0
	}
	idx := int(math.Floor(t * a.FPS))
	if a.Loop {
		return idx % a.FrameCount
	}
	if idx >= a.FrameCount {
		return a.FrameCount - 1
	}
	return idx
}

// Frame returns the prebuilt frame image at index i, or nil.
func (a *Animation) Frame(i int) *ebiten.Image {
	if a == nil || i < 0 || i >= len(a.frames) {
		return nil
	}
	return a.frames[i]
}

// DrawFrame draws frame i. If `op` is nil a new DrawImageOptions will be used.
func (a *Animation) DrawFrame(screen *ebiten.Image, i int, op *ebiten.DrawImageOptions) {
	frm := a.Frame(i)
	if frm == nil || screen == nil {
		return
	}
	var dop ebiten.DrawImageOptions
	if op != nil {
		dop = *op
	}
	dop.Filter = ebiten.FilterNearest
	screen.DrawImage(frm, &dop)
}

// Size returns the frame width/height.
func (a *Animation) Size() (int, int) { return a.FrameW, a.FrameH }
