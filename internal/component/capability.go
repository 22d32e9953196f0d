package component

import (
	"unicode"

	"github.com/dshills/termkit/internal/core"
	rcore "github.com/dshills/termkit/internal/renderer/core"
)

// Surface is the clipped drawing target handed to Paintable widgets.
// Coordinates are absolute screen cells.
type Surface interface {
	SetCell(x, y int, r rune, style rcore.Style)
	// DrawText draws s starting at (x, y) and returns the cells used.
	DrawText(x, y int, s string, style rcore.Style) int
	Fill(r core.Rect, ch rune, style rcore.Style)
}

// Focusable widgets are focus traversable when created.
type Focusable interface {
	AcceptsFocus() bool
}

// Clickable widgets can be activated as if the user clicked them.
type Clickable interface {
	DoClick()
}

// HasMnemonic widgets expose a mnemonic character; 0 means none.
type HasMnemonic interface {
	Mnemonic() rune
}

// Paintable widgets draw themselves. clip is the visible part of their
// bounds.
type Paintable interface {
	Paint(s Surface, clip core.Rect)
}

// KeyHandler widgets see key events no binding consumed.
type KeyHandler interface {
	HandleKey(ev *core.KeyEvent)
}

// MouseHandler widgets receive mouse events inside their bounds.
type MouseHandler interface {
	HandleMouse(ev *core.MouseEvent)
}

// FocusHandler widgets are told about their own focus transitions.
type FocusHandler interface {
	FocusChanged(ev core.FocusEvent)
}

// CursorPlacer widgets position the terminal cursor while focused.
// ok == false hides the cursor.
type CursorPlacer interface {
	CursorPosition() (p core.Point, ok bool)
}

// Container widgets position their children.
type Container interface {
	LayoutChildren()
	PreferredSize() core.Size
}

// Classed widgets name the keymap class their UI bindings come from.
type Classed interface {
	Class() string
}

// MatchMnemonic reports whether typed activates mnemonic. Both sides are
// lower-cased, so 'S' matches 's' and 'S'.
func MatchMnemonic(mnemonic, typed rune) bool {
	if mnemonic == 0 {
		return false
	}
	return unicode.ToLower(mnemonic) == unicode.ToLower(typed)
}
