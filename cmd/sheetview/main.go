package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/animviewer/assets"
	"github.com/milk9111/animviewer/component"
	"github.com/milk9111/animviewer/prefabs"
)

const (
	viewW = 512
	viewH = 512
)

// sheetView loops one clip at its own FPS. Left/right step through the
// scene's clips.
type sheetView struct {
	clips  []*component.ClipAction
	scale  float64
	active int
}

func (g *sheetView) Update() error {
	if len(g.clips) == 0 {
		return nil
	}
	prev := g.active
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.active = (g.active + 1) % len(g.clips)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.active = (g.active + len(g.clips) - 1) % len(g.clips)
	}
	if g.active != prev {
		g.clips[prev].Stop()
		g.clips[g.active].Reset()
		g.clips[g.active].Play()
	}
	g.clips[g.active].Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *sheetView) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if len(g.clips) == 0 {
		ebitenutil.DebugPrint(screen, "no clips")
		return
	}
	a := g.clips[g.active]
	fw := float64(a.Anim.FrameW) * g.scale
	fh := float64(a.Anim.FrameH) * g.scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate((viewW-fw)/2, (viewH-fh)/2)
	a.Anim.DrawFrame(screen, a.Frame(), op)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d/%d  %.2fs", a.Name(), a.Frame()+1, a.Anim.FrameCount, a.Time()))
}

func (g *sheetView) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewW, viewH
}

func loadClip(spec prefabs.AnimationSpec) (*component.ClipAction, error) {
	b, err := assets.LoadFile(spec.Sheet)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", spec.Sheet, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", spec.Sheet, err)
	}
	sheet := ebiten.NewImageFromImage(img)
	anim := component.NewAnimationRow(spec.Name, sheet, spec.FrameW, spec.FrameH, spec.Row, spec.FrameCount, spec.FPS, spec.Looping())
	return component.NewClipAction(anim), nil
}

func main() {
	scene := flag.String("scene", "scene.yaml", "scene spec in prefabs/")
	clipName := flag.String("clip", "", "clip to show first (defaults to the first listed)")
	flag.Parse()

	spec, err := prefabs.LoadSceneSpec(*scene)
	if err != nil {
		log.Fatal(err)
	}

	g := &sheetView{scale: spec.Model.Scale}
	for _, a := range spec.Animations {
		action, err := loadClip(a)
		if err != nil {
			log.Printf("clip %s: %v", a.Name, err)
			continue
		}
		if a.Name == *clipName {
			g.active = len(g.clips)
		}
		g.clips = append(g.clips, action)
	}
	if *clipName != "" && (len(g.clips) == 0 || g.clips[g.active].Name() != *clipName) {
		log.Fatalf("clip %q not found in %s", *clipName, *scene)
	}
	if len(g.clips) > 0 {
		g.clips[g.active].Play()
	}

	ebiten.SetWindowSize(viewW, viewH)
	ebiten.SetWindowTitle("sheetview: " + spec.Name)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
