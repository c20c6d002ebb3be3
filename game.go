package main

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"log"
	"os"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/animviewer/assets"
	"github.com/milk9111/animviewer/common"
	"github.com/milk9111/animviewer/component"
	"github.com/milk9111/animviewer/obj"
	"github.com/milk9111/animviewer/prefabs"
	"github.com/milk9111/animviewer/system"
	"golang.org/x/image/font/basicfont"
)

const (
	floorY       = common.BaseHeight - 100
	hitTestDepth = common.BaseHeight
)

// Options are the command line settings.
type Options struct {
	Scene     string
	Mode      string
	AssetsDir string
	Debug     bool
	Watch     bool
}

type segment struct {
	x0, y0, x1, y1 float64
}

type Game struct {
	frames int
	debug  bool

	opts Options
	spec *prefabs.SceneSpec

	viewer  *system.Viewer
	loader  *assets.Loader
	watcher *prefabs.Watcher

	session *obj.Session
	camera  *obj.Camera
	input   *obj.Input
	gaze    *obj.GazeWorld
	floors  []segment
	model   *obj.Model
	ui      *SelectionUI
	face    ebtext.Face

	anchorX, anchorY float64

	reticleX, reticleY float64
	reticleOK          bool

	modelFailed bool
	clipsFailed int
}

func NewGame(opts Options) (*Game, error) {
	spec, err := prefabs.LoadSceneSpec(opts.Scene)
	if err != nil {
		return nil, err
	}
	if opts.Mode != "" {
		spec.Mode = opts.Mode
	}
	mode, err := obj.ParseMode(spec.Mode)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:   opts.Debug,
		opts:    opts,
		spec:    spec,
		session: obj.NewSession(mode),
		camera:  obj.NewCamera(common.BaseWidth, common.BaseHeight, 1),
		gaze:    obj.NewGazeWorld(),
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
		anchorX: common.BaseWidth / 2,
		anchorY: floorY,
	}
	g.camera.SetWorldBounds(common.BaseWidth, common.BaseHeight)
	g.input = obj.NewInput(g.camera)

	names := spec.ClipNames()
	g.viewer = system.NewViewer(names, fadePolicy(spec), dwellConfig(spec))
	g.viewer.Dwell.OnConfirm = func(string) { assets.PlayClick() }

	g.ui = NewSelectionUI(names, spec.Palette.Button.Color, spec.Palette.Active.Color, g.viewer.Select)
	g.viewer.Surface.OnSelected(g.ui.SetActive)

	g.buildGazeWorld()

	g.session.OnStart = g.onSessionStart
	g.session.OnEnd = g.onSessionEnd

	var sources []fs.FS
	if opts.AssetsDir != "" {
		sources = append(sources, os.DirFS(opts.AssetsDir))
	}
	sources = append(sources, assets.FS())
	g.loader = assets.NewLoader(sources...)
	g.loader.Load(spec.Model.Sheet, g.onModelLoaded, g.onModelError)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("watch: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// buildGazeWorld lays the gaze panel out in rows of Columns buttons and adds
// the floor surfaces used for placement.
func (g *Game) buildGazeWorld() {
	p := g.spec.GazePanel
	for i, name := range g.viewer.Surface.Names() {
		col := i % p.Columns
		row := i / p.Columns
		x := p.X + float64(col)*(p.ButtonW+p.Spacing) + p.ButtonW/2
		y := p.Y + float64(row)*(p.ButtonH+p.Spacing) + p.ButtonH/2
		g.gaze.AddTarget(obj.NewGazeTarget(i+1, name, x, y, p.ButtonW, p.ButtonH))
	}

	g.floors = []segment{
		{0, floorY, common.BaseWidth, floorY},
		{860, floorY - 120, 1140, floorY - 120},
	}
	for _, f := range g.floors {
		g.gaze.AddFloor(f.x0, f.y0, f.x1, f.y1)
	}
}

func (g *Game) onModelLoaded(img image.Image) {
	g.model = obj.NewModel(ebiten.NewImageFromImage(img), g.spec.Model.Scale)
	g.model.Place(g.anchorX, g.anchorY)
	if g.session.Mode() == obj.ModeAR && g.session.Immersive() {
		g.model.Visible = false
	}
	for _, a := range g.spec.Animations {
		clip := a
		g.loader.Load(clip.Sheet, func(img image.Image) {
			g.onClipLoaded(clip, img)
		}, func(err error) {
			g.clipsFailed++
			log.Printf("clip %s: %v", clip.Name, err)
		})
	}
}

func (g *Game) onModelError(err error) {
	g.modelFailed = true
	log.Printf("model %s: %v", g.spec.Model.Name, err)
	g.ui.SetStatus("error loading model")
}

func (g *Game) onClipLoaded(spec prefabs.AnimationSpec, img image.Image) {
	sheet := ebiten.NewImageFromImage(img)
	anim := component.NewAnimationRow(spec.Name, sheet, spec.FrameW, spec.FrameH, spec.Row, spec.FrameCount, spec.FPS, spec.Looping())
	action := g.model.Mixer().ClipAction(anim)
	if !g.viewer.RegisterClip(spec.Name, action) {
		log.Printf("clip %s: not registered", spec.Name)
	}
}

func (g *Game) onSessionStart(mode obj.Mode) {
	if mode == obj.ModeAR && g.model != nil {
		g.model.Visible = false
	}
}

func (g *Game) onSessionEnd(mode obj.Mode) {
	g.viewer.Dwell.Reset()
	g.reticleOK = false
	if g.model != nil {
		g.model.Place(g.anchorX, g.anchorY)
	}
}

func (g *Game) Update() error {
	g.frames++
	dt := 1.0 / float64(ebiten.TPS())

	g.loader.Poll()
	g.updateStatus()
	g.reload()

	g.input.MouseLook = g.session.HeadsetImmersive()
	g.input.Update()
	if g.input.DebugToggled {
		g.debug = !g.debug
	}
	if g.input.CopyPressed {
		g.copyTuning()
	}
	if g.input.EnterPressed {
		g.session.Start()
	}
	if g.input.ExitPressed {
		g.session.End()
	}

	if g.session.Immersive() {
		g.camera.Look(g.input.LookX, g.input.LookY)
	} else {
		g.camera.Update()
	}

	if g.model != nil {
		g.model.Update(dt)
	}

	if g.session.Mode() == obj.ModeAR && g.session.Immersive() {
		g.updatePlacement()
	}

	cx, cy := g.camera.Center()
	g.gaze.LookAt(cx, cy)
	g.viewer.Tick(dt, g.session.HeadsetImmersive(), g.gaze)
	if g.session.HeadsetImmersive() && g.input.ConfirmPressed {
		g.viewer.Dwell.Confirm()
	}

	if !g.session.HeadsetImmersive() {
		g.ui.Update()
		for _, t := range g.input.Touches {
			if name, ok := g.ui.ButtonAt(t.ScreenX, t.ScreenY); ok {
				g.viewer.Select(name)
			}
		}
	}

	if n := g.input.NumberPressed; n > 0 {
		if name, ok := g.viewer.Surface.NameAt(n - 1); ok {
			g.viewer.Select(name)
		}
	}

	return nil
}

// updatePlacement moves the reticle onto the floor below the cursor and
// places the model on click.
func (g *Game) updatePlacement() {
	g.reticleX, g.reticleY, g.reticleOK = g.gaze.HitTest(g.input.MouseWorldX, g.input.MouseWorldY, hitTestDepth)
	if !g.reticleOK || !g.input.MouseLeftPressed || g.model == nil {
		return
	}
	if _, onButton := g.ui.ButtonAt(g.input.CursorX, g.input.CursorY); onButton {
		return
	}
	g.model.Place(g.reticleX, g.reticleY)
}

func (g *Game) updateStatus() {
	if g.modelFailed || g.model == nil || g.loader.Pending() > 0 {
		return
	}
	switch {
	case g.viewer.Ready():
		g.ui.SetStatus("")
	case g.clipsFailed > 0:
		g.ui.SetStatus(fmt.Sprintf("%d clip(s) failed to load", g.clipsFailed))
	}
}

// reload applies tuning from changed prefab files. The clip list is fixed for
// the life of the game.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Err(); err != nil {
		log.Printf("watch: %v", err)
	}
	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	scene := prefabs.Base(g.opts.Scene)
	relevant := false
	for _, name := range changed {
		if name == scene || (g.spec.FadeScript != "" && prefabs.Base(name) == prefabs.Base(g.spec.FadeScript)) {
			relevant = true
		}
	}
	if !relevant {
		return
	}

	spec, err := prefabs.LoadSceneSpec(g.opts.Scene)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	if !slices.Equal(spec.ClipNames(), g.spec.ClipNames()) {
		log.Printf("reload: clip list changes need a restart; applying tuning only")
	}
	g.applyTuning(spec)
	log.Printf("reload: applied tuning from %s", scene)
}

// applyTuning copies fade, dwell, model scale and palette settings from spec
// into the running scene.
func (g *Game) applyTuning(spec *prefabs.SceneSpec) {
	g.spec.FadeDuration = spec.FadeDuration
	g.spec.FadeScript = spec.FadeScript
	g.spec.Dwell = spec.Dwell
	g.spec.Model.Scale = spec.Model.Scale
	g.spec.Palette = spec.Palette

	g.viewer.Surface.SetPolicy(fadePolicy(g.spec))
	g.viewer.Dwell.Configure(dwellConfig(g.spec))
	g.ui.SetColors(g.spec.Palette.Button.Color, g.spec.Palette.Active.Color)
	if g.model != nil {
		g.model.Scale = g.spec.Model.Scale
	}
}

// Close stops the prefab watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.spec.Palette.Background.Color)
	camX, camY := g.camera.ViewTopLeft()

	for _, f := range g.floors {
		vector.StrokeLine(screen, float32(f.x0-camX), float32(f.y0-camY), float32(f.x1-camX), float32(f.y1-camY), 2, color.NRGBA{R: 0x80, G: 0x80, B: 0x90, A: 0xff}, false)
	}

	if g.model != nil {
		g.model.Draw(screen, camX, camY)
	}

	if g.session.HeadsetImmersive() {
		g.drawGazePanel(screen, camX, camY)
		cx, cy := float32(common.BaseWidth/2), float32(common.BaseHeight/2)
		vector.StrokeCircle(screen, cx, cy, 6, 2, g.spec.Palette.Reticle.Color, true)
	} else {
		g.ui.Draw(screen)
	}

	if g.reticleOK {
		vector.StrokeCircle(screen, float32(g.reticleX-camX), float32(g.reticleY-camY), 14, 2, g.spec.Palette.Reticle.Color, true)
	}

	if g.session.HeadsetImmersive() && g.ui.Status() != "" {
		ebitenutil.DebugPrintAt(screen, g.ui.Status(), common.BaseWidth/2-60, 16)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Mode: %s    Immersive: %v", g.frames, ebiten.ActualFPS(), g.session.Mode(), g.session.Immersive()))
		g.gaze.DebugDraw(screen, camX, camY)
	}
}

func (g *Game) drawGazePanel(screen *ebiten.Image, camX, camY float64) {
	active, _ := g.viewer.Surface.Active()
	focused, hasFocus := g.viewer.Dwell.Target()
	for _, t := range g.gaze.Targets() {
		progress := 0.0
		if hasFocus && focused.TargetID() == t.TargetID() {
			progress = g.viewer.Dwell.Progress()
		}
		t.Draw(screen, camX, camY, g.face, g.spec.Palette.Button.Color, g.spec.Palette.Active.Color, t.ClipName() == active, progress)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func fadePolicy(spec *prefabs.SceneSpec) system.FadePolicy {
	if spec.FadeScript == "" {
		return system.ConstantFade(spec.FadeDuration)
	}
	src, err := prefabs.LoadScript(spec.FadeScript)
	if err != nil {
		log.Printf("fade script %s: %v", spec.FadeScript, err)
		return system.ConstantFade(spec.FadeDuration)
	}
	sf, err := system.NewScriptFade(spec.FadeScript, src, spec.FadeDuration)
	if err != nil {
		log.Printf("%v", err)
		return system.ConstantFade(spec.FadeDuration)
	}
	return sf
}

func dwellConfig(spec *prefabs.SceneSpec) system.DwellConfig {
	return system.DwellConfig{
		Threshold:    spec.Dwell.Threshold,
		FocusScale:   spec.Dwell.FocusScale,
		PressedScale: spec.Dwell.PressedScale,
		PressedHold:  spec.Dwell.PressedHold,
	}
}
