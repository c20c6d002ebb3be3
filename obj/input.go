package obj

import (
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	lookKeySpeed   = 6.0
	lookStickSpeed = 8.0
	stickDeadZone  = 0.2
)

// Touch is a touch that began this frame. X/Y are world coordinates,
// ScreenX/ScreenY the raw screen position.
type Touch struct {
	ID               ebiten.TouchID
	X, Y             float64
	ScreenX, ScreenY int
}

// Input holds the viewer's per-frame input state.
type Input struct {
	// MouseWorldX/Y are the mouse cursor position in world coordinates (pixels).
	MouseWorldX float64
	MouseWorldY float64
	// CursorX/CursorY are the cursor position in screen pixels.
	CursorX int
	CursorY int
	// MouseLeftPressed is true on the frame the left mouse button was pressed.
	MouseLeftPressed bool
	// Touches lists touches that started this frame.
	Touches []Touch
	// NumberPressed is the 1-based number key pressed this frame, or 0.
	NumberPressed int
	// EnterPressed / ExitPressed toggle the immersive session.
	EnterPressed bool
	ExitPressed  bool
	// ConfirmPressed is the gamepad primary button or space.
	ConfirmPressed bool
	// LookX/LookY are this frame's head-turn deltas in world pixels.
	LookX float64
	LookY float64
	// DebugToggled flips the collision overlay.
	DebugToggled bool
	// CopyPressed is Ctrl+C.
	CopyPressed bool
	// MouseLook turns the head with plain mouse motion instead of right-drag.
	// Set by the game while a headset session runs.
	MouseLook bool

	camera *Camera

	touchIDs []ebiten.TouchID

	dragging             bool
	lastDragX, lastDragY int
}

func NewInput(camera *Camera) *Input {
	return &Input{camera: camera}
}

var numberKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Update polls keyboard, mouse, touch and gamepad state.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	mx, my := ebiten.CursorPosition()
	i.CursorX, i.CursorY = mx, my
	i.MouseWorldX, i.MouseWorldY = i.camera.ScreenToWorld(mx, my)
	i.MouseLeftPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	i.touchIDs = inpututil.AppendJustPressedTouchIDs(i.touchIDs[:0])
	i.Touches = i.Touches[:0]
	for _, id := range i.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		wx, wy := i.camera.ScreenToWorld(tx, ty)
		i.Touches = append(i.Touches, Touch{ID: id, X: wx, Y: wy, ScreenX: tx, ScreenY: ty})
	}

	i.NumberPressed = 0
	for n, k := range numberKeys {
		if inpututil.IsKeyJustPressed(k) {
			i.NumberPressed = n + 1
			break
		}
	}

	i.EnterPressed = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	i.ExitPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.ConfirmPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.DebugToggled = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	i.CopyPressed = ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyC)

	var lx, ly float64
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		lx -= lookKeySpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		lx += lookKeySpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		ly -= lookKeySpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		ly += lookKeySpeed
	}

	dx, dy := i.mouseLook(mx, my, ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))
	lx += dx
	ly += dy

	ids := ebiten.GamepadIDs()
	if len(ids) > 0 {
		gid := ids[0]
		sx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisRightStickHorizontal)
		sy := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(sx, sy) > stickDeadZone {
			lx += sx * lookStickSpeed
			ly += sy * lookStickSpeed
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			i.ConfirmPressed = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
			i.EnterPressed = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightRight) {
			i.ExitPressed = true
		}
	}

	i.LookX = lx
	i.LookY = ly
}

// mouseLook returns the head turn for a cursor at (mx, my). Outside MouseLook
// the cursor only turns the head while the right button is held.
func (i *Input) mouseLook(mx, my int, rightHeld bool) (float64, float64) {
	if !i.MouseLook && !rightHeld {
		i.dragging = false
		return 0, 0
	}
	var dx, dy float64
	if i.dragging {
		z := 1.0
		if i.camera != nil && i.camera.Zoom() != 0 {
			z = i.camera.Zoom()
		}
		dx = -float64(mx-i.lastDragX) / z
		dy = -float64(my-i.lastDragY) / z
	}
	i.dragging = true
	i.lastDragX, i.lastDragY = mx, my
	return dx, dy
}
