package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	scene := flag.String("scene", "scene.yaml", "scene spec in prefabs/ (embedded copy used when not on disk)")
	mode := flag.String("mode", "", "override the scene mode: marker, ar or vr")
	assetsDir := flag.String("assets", "", "directory whose sprite sheets override the embedded ones")
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	watch := flag.Bool("watch", false, "hot reload tuning when prefabs/ changes")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("animviewer")

	game, err := NewGame(Options{
		Scene:     *scene,
		Mode:      *mode,
		AssetsDir: *assetsDir,
		Debug:     *debug,
		Watch:     *watch,
	})
	if err != nil {
		log.Fatal(err)
	}

	err = ebiten.RunGame(game)
	if cerr := game.Close(); cerr != nil {
		log.Printf("close: %v", cerr)
	}
	if err != nil {
		log.Fatal(err)
	}
}
