package main

import (
	"log"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// copyTuning puts the current tuning on the system clipboard as YAML so it
// can be pasted back into the scene file.
func (g *Game) copyTuning() {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		log.Printf("clipboard: %v", clipboardErr)
		return
	}
	data, err := g.spec.MarshalTuning()
	if err != nil {
		log.Printf("%v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("clipboard: copied tuning for %s", g.spec.Name)
}
