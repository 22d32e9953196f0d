package widget

import (
	"unicode"

	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	rcore "github.com/dshills/termkit/internal/renderer/core"
)

var (
	styleNormal   = rcore.DefaultStyle()
	styleFocused  = rcore.DefaultStyle().Reverse()
	styleDisabled = rcore.DefaultStyle().Dim()
	styleSelected = rcore.DefaultStyle().Reverse()
)

// Box drawing runes.
const (
	boxH  = '─'
	boxV  = '│'
	boxTL = '┌'
	boxTR = '┐'
	boxBL = '└'
	boxBR = '┘'
)

// drawBox outlines r and writes title into the top edge.
func drawBox(s component.Surface, r core.Rect, title string, style rcore.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right, bottom := r.X+r.Width-1, r.Y+r.Height-1
	for x := r.X + 1; x < right; x++ {
		s.SetCell(x, r.Y, boxH, style)
		s.SetCell(x, bottom, boxH, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetCell(r.X, y, boxV, style)
		s.SetCell(right, y, boxV, style)
	}
	s.SetCell(r.X, r.Y, boxTL, style)
	s.SetCell(right, r.Y, boxTR, style)
	s.SetCell(r.X, bottom, boxBL, style)
	s.SetCell(right, bottom, boxBR, style)

	if title != "" && r.Width > 4 {
		t := rcore.Truncate(" "+title+" ", r.Width-2, "")
		s.DrawText(r.X+1, r.Y, t, style.Bold())
	}
}

// mnemonicIndex returns the rune index of the first character of text
// matching mnemonic, or -1.
func mnemonicIndex(text string, mnemonic rune) int {
	if mnemonic == 0 {
		return -1
	}
	lower := unicode.ToLower(mnemonic)
	for i, r := range []rune(text) {
		if unicode.ToLower(r) == lower {
			return i
		}
	}
	return -1
}

// drawMnemonicText draws text at (x, y) with the mnemonic character
// underlined and returns the cells used.
func drawMnemonicText(s component.Surface, x, y int, text string, mnemonic rune, style rcore.Style) int {
	idx := mnemonicIndex(text, mnemonic)
	if idx < 0 {
		return s.DrawText(x, y, text, style)
	}
	runes := []rune(text)
	used := s.DrawText(x, y, string(runes[:idx]), style)
	used += s.DrawText(x+used, y, string(runes[idx]), style.Underline())
	used += s.DrawText(x+used, y, string(runes[idx+1:]), style)
	return used
}

// pad returns text padded or truncated to width cells.
func pad(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if rcore.StringWidth(text) > width {
		return rcore.Truncate(text, width, "…")
	}
	return rcore.PadRight(text, width)
}

// textWidth is the display width of text.
func textWidth(text string) int {
	return rcore.StringWidth(text)
}
