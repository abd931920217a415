package main

import (
	"flag"
	"log"

	"github.com/milk9111/mazes/canvas/window"
	"github.com/milk9111/mazes/prefabs"
	"github.com/milk9111/mazes/tiles"
)

func main() {
	width := flag.Int("width", 0, "surface width in pixels (0 uses prefabs/tiles.yaml)")
	height := flag.Int("height", 0, "surface height in pixels (0 uses prefabs/tiles.yaml)")
	watch := flag.Bool("watch", false, "reload prefabs/tiles.yaml colors when it changes on disk")
	flag.Parse()

	spec, err := prefabs.LoadTilesSpec()
	if err != nil {
		log.Fatal(err)
	}
	if *width > 0 {
		spec.Width = *width
	}
	if *height > 0 {
		spec.Height = *height
	}

	state, err := tiles.NewState(spec)
	if err != nil {
		log.Fatal(err)
	}

	app := &tilesApp{State: state}
	if *watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("tiles: hot reload disabled: %v", err)
		} else {
			defer w.Close()
			app.watcher = w
		}
	}

	opts := window.Options{Title: spec.Title, Width: spec.Width, Height: spec.Height}
	if err := window.Run(opts, app); err != nil {
		log.Fatal(err)
	}
}

type tilesApp struct {
	*tiles.State
	watcher *prefabs.Watcher
}

func (a *tilesApp) ProcessCommands() error {
	names, err := a.watcher.Poll()
	if err != nil {
		log.Printf("tiles: watch prefabs: %v", err)
	}
	for _, name := range names {
		if name != prefabs.TilesFile {
			continue
		}
		spec, err := prefabs.LoadTilesSpec()
		if err == nil {
			err = a.ApplySpec(spec)
		}
		if err != nil {
			log.Printf("tiles: reload %s: %v", name, err)
			continue
		}
		log.Printf("tiles: reloaded %s", name)
	}
	return a.State.ProcessCommands()
}
