package main

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var barColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160}

// SelectionUI is the on-screen button bar: one button per clip in list
// order plus a status line.
type SelectionUI struct {
	UI *ebitenui.UI

	names   []string
	buttons map[string]*widget.Button
	bar     *widget.Container
	status  *widget.Text

	active      string
	buttonColor color.Color
	activeColor color.Color
}

// NewSelectionUI builds the button bar. onSelect receives the button's clip
// name on every click.
func NewSelectionUI(names []string, buttonColor, activeColor color.Color, onSelect func(name string)) *SelectionUI {
	// bar and idle fills are painted in Draw from the current palette
	btnImg := imageui.NewNineSliceColor(color.Transparent)
	hoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	s := &SelectionUI{
		names:       append([]string(nil), names...),
		buttons:     make(map[string]*widget.Button, len(names)),
		buttonColor: buttonColor,
		activeColor: activeColor,
	}

	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionEnd}),
		),
	)

	for _, name := range names {
		clip := name
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: hoverImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(clip, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(150, 36)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onSelect != nil {
					onSelect(clip)
				}
			}),
		)
		s.buttons[clip] = btn
		bar.AddChild(btn)
	}
	s.bar = bar

	s.status = widget.NewText(
		widget.TextOpts.Text("loading...", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionStart})),
	)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(s.status)
	root.AddChild(bar)

	s.UI = &ebitenui.UI{Container: root}
	return s
}

// SetActive marks the button whose clip is playing.
func (s *SelectionUI) SetActive(name string) {
	s.active = name
}

// SetColors replaces the button fill and active outline colours.
func (s *SelectionUI) SetColors(buttonColor, activeColor color.Color) {
	if s == nil {
		return
	}
	s.buttonColor = buttonColor
	s.activeColor = activeColor
}

// SetStatus replaces the status line.
func (s *SelectionUI) SetStatus(msg string) {
	s.status.Label = msg
}

// Status returns the status line.
func (s *SelectionUI) Status() string {
	return s.status.Label
}

// ButtonAt returns the clip whose button contains screen point (x, y).
func (s *SelectionUI) ButtonAt(x, y int) (string, bool) {
	p := image.Pt(x, y)
	for _, name := range s.names {
		if p.In(s.buttons[name].GetWidget().Rect) {
			return name, true
		}
	}
	return "", false
}

func (s *SelectionUI) Update() {
	s.UI.Update()
}

// Draw renders the bar and outlines the active button.
func (s *SelectionUI) Draw(screen *ebiten.Image) {
	fillRect(screen, s.bar.GetWidget().Rect, barColor)
	for _, name := range s.names {
		fillRect(screen, s.buttons[name].GetWidget().Rect, s.buttonColor)
	}
	s.UI.Draw(screen)
	btn, ok := s.buttons[s.active]
	if !ok {
		return
	}
	r := btn.GetWidget().Rect
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 3, s.activeColor, false)
}

func fillRect(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.FillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}
