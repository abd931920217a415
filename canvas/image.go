package canvas

import (
	"image"
	"image/color"
	"image/draw"
)

// Color is an opaque 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

var (
	White = Color{R: 255, G: 255, B: 255}
	Black = Color{}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.RGBA8().RGBA()
}

// RGBA8 returns c as a fully opaque color.RGBA.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Image is the pixel buffer handed to a FrameRenderer each frame.
type Image struct {
	rgba *image.RGBA
}

// NewImage allocates a width x height buffer filled with black.
func NewImage(width, height int) *Image {
	img := &Image{rgba: image.NewRGBA(image.Rect(0, 0, width, height))}
	img.Fill(Black)
	return img
}

func (img *Image) Width() int {
	return img.rgba.Rect.Dx()
}

func (img *Image) Height() int {
	return img.rgba.Rect.Dy()
}

// Info returns the surface metadata for this buffer.
func (img *Image) Info() Info {
	return Info{Width: img.Width(), Height: img.Height()}
}

// At returns the pixel at (x, y). Pixels outside the buffer read as black.
func (img *Image) At(x, y int) Color {
	c := img.rgba.RGBAAt(x, y)
	return Color{R: c.R, G: c.G, B: c.B}
}

// Set writes the pixel at (x, y). Writes outside the buffer are dropped.
func (img *Image) Set(x, y int, c Color) {
	img.rgba.SetRGBA(x, y, c.RGBA8())
}

// Fill paints every pixel with c.
func (img *Image) Fill(c Color) {
	draw.Draw(img.rgba, img.rgba.Rect, &image.Uniform{C: c.RGBA8()}, image.Point{}, draw.Src)
}

// FillRect paints the half-open box [x1, x2) x [y1, y2), clipped to the buffer.
func (img *Image) FillRect(x1, y1, x2, y2 int, c Color) {
	r := image.Rect(x1, y1, x2, y2).Intersect(img.rgba.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(img.rgba, r, &image.Uniform{C: c.RGBA8()}, image.Point{}, draw.Src)
}

// RGBA exposes the backing buffer for upload to the window.
func (img *Image) RGBA() *image.RGBA {
	return img.rgba
}
