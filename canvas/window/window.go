package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/mazes/canvas"
)

// Options configures the window a demo runs in.
type Options struct {
	Title  string
	Width  int
	Height int

	// Overlay, when set, returns text drawn over the frame after upload.
	// An empty string draws nothing.
	Overlay func() string
}

var keyMap = map[ebiten.Key]canvas.Key{
	ebiten.KeyEscape: canvas.KeyEscape,
	ebiten.KeyEnter:  canvas.KeyEnter,
	ebiten.KeySpace:  canvas.KeySpace,
	ebiten.KeyF1:     canvas.KeyF1,
	ebiten.KeyF2:     canvas.KeyF2,
	ebiten.KeyF5:     canvas.KeyF5,
	ebiten.KeyH:      canvas.KeyH,
	ebiten.KeyQ:      canvas.KeyQ,
	ebiten.KeyR:      canvas.KeyR,
}

var buttons = []struct {
	eb ebiten.MouseButton
	b  canvas.MouseButton
}{
	{ebiten.MouseButtonLeft, canvas.MouseLeft},
	{ebiten.MouseButtonRight, canvas.MouseRight},
	{ebiten.MouseButtonMiddle, canvas.MouseMiddle},
}

type game struct {
	opts      Options
	app       canvas.App
	img       *canvas.Image
	collector canvas.Collector
	queue     canvas.EventQueue
	face      text.Face

	keys []ebiten.Key
}

// Run opens the window and drives app until it returns canvas.ErrQuit or the
// window is closed. A quit request returns nil.
func Run(opts Options, app canvas.App) error {
	if opts.Width < 1 || opts.Height < 1 {
		return fmt.Errorf("window: invalid surface size %dx%d", opts.Width, opts.Height)
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)

	g := &game{
		opts: opts,
		app:  app,
		img:  canvas.NewImage(opts.Width, opts.Height),
		face: text.NewGoXFace(basicfont.Face7x13),
	}
	return ebiten.RunGame(g)
}

func (g *game) Update() error {
	g.collector.Collect(g.snapshot(), &g.queue)
	canvas.Dispatch(&g.queue, g.img.Info(), g.app)

	if err := g.app.ProcessCommands(); err != nil {
		if errors.Is(err, canvas.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *game) snapshot() canvas.InputSnapshot {
	var s canvas.InputSnapshot
	s.CursorX, s.CursorY = ebiten.CursorPosition()

	for _, m := range buttons {
		if inpututil.IsMouseButtonJustPressed(m.eb) {
			s.ButtonsPressed = append(s.ButtonsPressed, m.b)
		}
		if inpututil.IsMouseButtonJustReleased(m.eb) {
			s.ButtonsReleased = append(s.ButtonsReleased, m.b)
		}
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		s.KeysPressed = append(s.KeysPressed, keyMap[k])
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		s.KeysReleased = append(s.KeysReleased, keyMap[k])
	}
	return s
}

func (g *game) Draw(screen *ebiten.Image) {
	g.app.Render(g.img)
	screen.WritePixels(g.img.RGBA().Pix)

	if g.opts.Overlay == nil {
		return
	}
	if msg := g.opts.Overlay(); msg != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, 8)
		op.LineSpacing = 16
		op.ColorScale.ScaleWithColor(color.Black)
		text.Draw(screen, msg, g.face, op)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}
