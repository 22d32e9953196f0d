// Package core provides the cell and style types shared by the painting
// surface and the terminal backends.
package core

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Attribute is a set of text attributes.
type Attribute uint8

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim
	AttrUnderline
	AttrReverse
)

// Has reports whether a contains attr.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a with attr added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a with attr removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// Color is a terminal palette color. Negative values select the
// terminal's default.
type Color int16

// ColorDefault is the terminal's default color.
const ColorDefault Color = -1

// The eight basic palette colors.
const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// IsDefault reports whether c is the default color.
func (c Color) IsDefault() bool {
	return c < 0
}

// Index returns the palette index of c.
func (c Color) Index() int {
	return int(c)
}

func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	return fmt.Sprintf("color%d", int(c))
}

// Style is the visual style of a cell. Styles are comparable with ==.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// WithForeground returns s with foreground fg.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns s with background bg.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Bold returns s with the bold attribute.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Dim returns s with the dim attribute.
func (s Style) Dim() Style {
	s.Attributes |= AttrDim
	return s
}

// Underline returns s with the underline attribute.
func (s Style) Underline() Style {
	s.Attributes |= AttrUnderline
	return s
}

// Reverse returns s with the reverse-video attribute.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Merge overlays other on s: non-default colors replace, attributes add.
func (s Style) Merge(other Style) Style {
	if !other.Foreground.IsDefault() {
		s.Foreground = other.Foreground
	}
	if !other.Background.IsDefault() {
		s.Background = other.Background
	}
	s.Attributes |= other.Attributes
	return s
}

// IsDefault reports whether s is the default style.
func (s Style) IsDefault() bool {
	return s == DefaultStyle()
}

// Cell is one terminal cell. A wide rune occupies its cell and a
// continuation cell to the right.
type Cell struct {
	Rune  rune
	Width int
	Style Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewCell returns a cell for r in the default style.
func NewCell(r rune) Cell {
	return NewStyledCell(r, DefaultStyle())
}

// NewStyledCell returns a cell for r in style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// ContinuationCell returns the filler cell to the right of a wide rune.
func ContinuationCell(style Style) Cell {
	return Cell{Style: style}
}

// IsContinuation reports whether c is the right half of a wide rune.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Rune == 0
}

// RuneWidth returns the number of columns r occupies. Control runes
// occupy none.
func RuneWidth(r rune) int {
	if r < 0x20 || r == 0x7f {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// StringWidth returns the number of columns s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most width columns, ending it with tail when
// something was cut.
func Truncate(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, tail)
}

// PadRight pads s with spaces to exactly width columns, truncating if it
// is longer.
func PadRight(s string, width int) string {
	s = Truncate(s, width, "")
	if w := StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// CellsFromString converts s into cells in style.
func CellsFromString(s string, style Style) []Cell {
	cells := make([]Cell, 0, len(s))
	for _, r := range s {
		c := NewStyledCell(r, style)
		cells = append(cells, c)
		if c.Width == 2 {
			cells = append(cells, ContinuationCell(style))
		}
	}
	return cells
}

// StringFromCells converts cells back into text.
func StringFromCells(cells []Cell) string {
	var b strings.Builder
	for _, c := range cells {
		if !c.IsContinuation() && c.Rune != 0 {
			b.WriteRune(c.Rune)
		}
	}
	return b.String()
}
