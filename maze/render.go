package maze

import (
	"github.com/milk9111/mazes/canvas"
	"github.com/milk9111/mazes/grid"
)

// Render repaints img: background, wall segments, then each cell body.
func (s *State) Render(img *canvas.Image) {
	colors := s.spec.Colors
	img.Fill(colors.Background.Color)

	g := s.Grid
	for y, row := range g.Rows() {
		for x, cell := range row {
			if y < g.Height()-1 && cell.LeftEdge && g.At(grid.Coord{X: x, Y: y + 1}).LeftEdge {
				s.drawVerticalEdge(img, x, y, y+1)
			}
			if x < g.Width()-1 && cell.BottomEdge && g.At(grid.Coord{X: x + 1, Y: y}).BottomEdge {
				s.drawHorizontalEdge(img, x, x+1, y)
			}
			s.drawCell(img, x, y, cell)
		}
	}
}

func (s *State) drawVerticalEdge(img *canvas.Image, x, y1, y2 int) {
	scale := s.spec.Scale
	img.FillRect(x*scale, y1*scale, x*scale+s.spec.EdgeThickness, y2*scale, s.spec.Colors.VerticalEdge.Color)
}

func (s *State) drawHorizontalEdge(img *canvas.Image, x1, x2, y int) {
	scale := s.spec.Scale
	img.FillRect(x1*scale, y*scale, x2*scale, y*scale+s.spec.EdgeThickness, s.spec.Colors.HorizontalEdge.Color)
}

func (s *State) drawCell(img *canvas.Image, x, y int, cell Cell) {
	scale, margin := s.spec.Scale, s.spec.CellMargin
	img.FillRect(
		x*scale+margin,
		y*scale+margin,
		(x+1)*scale-margin,
		(y+1)*scale-margin,
		s.kindColor(cell.Kind),
	)
}

func (s *State) kindColor(k Kind) canvas.Color {
	colors := s.spec.Colors
	switch k {
	case Start:
		return colors.Start.Color
	case End:
		return colors.End.Color
	case Path:
		return colors.Path.Color
	default:
		return colors.Empty.Color
	}
}
