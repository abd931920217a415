package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"golang.design/x/clipboard"

	"github.com/milk9111/mazes/canvas/window"
	"github.com/milk9111/mazes/maze"
	"github.com/milk9111/mazes/prefabs"
)

func main() {
	width := flag.Int("width", 0, "maze width in cells (0 uses prefabs/maze.yaml)")
	height := flag.Int("height", 0, "maze height in cells (0 uses prefabs/maze.yaml)")
	scale := flag.Int("scale", 0, "pixels per cell (0 uses prefabs/maze.yaml)")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	watch := flag.Bool("watch", false, "reload prefabs/maze.yaml colors when it changes on disk")
	flag.Parse()

	spec, err := prefabs.LoadMazeSpec()
	if err != nil {
		log.Fatal(err)
	}
	if *width > 0 {
		spec.Width = *width
	}
	if *height > 0 {
		spec.Height = *height
	}
	if *scale > 0 {
		spec.Scale = *scale
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.Printf("mazes: seed %d", *seed)

	state, err := maze.NewState(spec, rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15)))
	if err != nil {
		log.Fatal(err)
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("mazes: clipboard unavailable: %v", err)
	} else {
		state.SetClipboard(func(b []byte) error {
			clipboard.Write(clipboard.FmtText, b)
			return nil
		})
	}

	app := &mazeApp{State: state}
	if *watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("mazes: hot reload disabled: %v", err)
		} else {
			defer w.Close()
			app.watcher = w
		}
	}

	pw, ph := state.PixelSize()
	opts := window.Options{
		Title:   spec.Title,
		Width:   pw,
		Height:  ph,
		Overlay: state.HelpText,
	}
	if err := window.Run(opts, app); err != nil {
		log.Fatal(err)
	}
}

// mazeApp adds prefab hot reload on top of the maze state.
type mazeApp struct {
	*maze.State
	watcher *prefabs.Watcher
}

func (a *mazeApp) ProcessCommands() error {
	names, err := a.watcher.Poll()
	if err != nil {
		log.Printf("mazes: watch prefabs: %v", err)
	}
	for _, name := range names {
		if name != prefabs.MazeFile {
			continue
		}
		spec, err := prefabs.LoadMazeSpec()
		if err != nil {
			log.Printf("mazes: reload %s: %v", name, err)
			continue
		}
		if err := a.ApplySpec(spec); err != nil {
			log.Printf("mazes: reload %s: %v", name, err)
			continue
		}
		log.Printf("mazes: reloaded %s", name)
	}
	return a.State.ProcessCommands()
}
