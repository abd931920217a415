package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/milk9111/mazes/canvas"
	"github.com/milk9111/mazes/maze"
	"github.com/milk9111/mazes/prefabs"
)

func main() {
	out := flag.String("out", ".", "directory to write snapshots into")
	count := flag.Int("n", 1, "number of mazes to write")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	spec, err := prefabs.LoadMazeSpec()
	if err != nil {
		log.Fatal(err)
	}
	state, err := maze.NewState(spec, rand.New(rand.NewPCG(*seed, *seed)))
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal(err)
	}
	for i := 0; i < *count; i++ {
		if i > 0 {
			if err := state.Regenerate(); err != nil {
				log.Fatal(err)
			}
		}
		paths, err := writeSnapshot(*out, state)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("mazeshot: wrote %s and %s", paths[0], paths[1])
	}
}

// writeSnapshot renders state to <id>.png and its text view to <id>.txt.
func writeSnapshot(dir string, state *maze.State) ([2]string, error) {
	w, h := state.PixelSize()
	img := canvas.NewImage(w, h)
	state.Render(img)

	base := filepath.Join(dir, state.ID.String())
	paths := [2]string{base + ".png", base + ".txt"}

	f, err := os.Create(paths[0])
	if err != nil {
		return paths, err
	}
	if err := png.Encode(f, img.RGBA()); err != nil {
		f.Close()
		return paths, fmt.Errorf("mazeshot: encode %s: %w", paths[0], err)
	}
	if err := f.Close(); err != nil {
		return paths, err
	}

	if err := os.WriteFile(paths[1], []byte(state.Text()), 0o644); err != nil {
		return paths, err
	}
	return paths, nil
}
