package renderer

import (
	"github.com/dshills/termkit/internal/core"
	rcore "github.com/dshills/termkit/internal/renderer/core"
)

// CellWriter receives painted cells.
type CellWriter interface {
	SetCell(x, y int, cell rcore.Cell)
}

// Surface is a clipped drawing target. It implements component.Surface.
type Surface struct {
	out  CellWriter
	clip core.Rect
}

// NewSurface returns a surface writing to out inside clip.
func NewSurface(out CellWriter, clip core.Rect) *Surface {
	return &Surface{out: out, clip: clip}
}

// Clip returns the drawable rectangle.
func (s *Surface) Clip() core.Rect {
	return s.clip
}

// Sub returns a surface restricted to r within s.
func (s *Surface) Sub(r core.Rect) *Surface {
	return &Surface{out: s.out, clip: s.clip.Intersect(r)}
}

// SetCell writes one cell if (x, y) is inside the clip.
func (s *Surface) SetCell(x, y int, r rune, style rcore.Style) {
	if !s.clip.Contains(core.Point{X: x, Y: y}) {
		return
	}
	s.out.SetCell(x, y, rcore.NewStyledCell(r, style))
}

// DrawText writes str from (x, y) rightwards and returns the number of
// columns it advanced. Wide runes take two columns; a wide rune that
// would straddle the clip edge is replaced by a space.
func (s *Surface) DrawText(x, y int, str string, style rcore.Style) int {
	col := x
	right := s.clip.X + s.clip.Width
	for _, r := range str {
		w := rcore.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= right {
			break
		}
		if w == 2 && col+1 >= right {
			s.SetCell(col, y, ' ', style)
			col++
			break
		}
		s.SetCell(col, y, r, style)
		if w == 2 && s.clip.Contains(core.Point{X: col + 1, Y: y}) {
			s.out.SetCell(col+1, y, rcore.ContinuationCell(style))
		}
		col += w
	}
	return col - x
}

// Fill paints every cell of r inside the clip with ch.
func (s *Surface) Fill(r core.Rect, ch rune, style rcore.Style) {
	area := s.clip.Intersect(r)
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			s.out.SetCell(x, y, rcore.NewStyledCell(ch, style))
		}
	}
}
