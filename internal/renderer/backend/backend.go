// Package backend abstracts the terminal the toolkit draws on and reads
// input from.
package backend

import (
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/renderer/core"
)

// EventType identifies the kind of raw terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventPaste
	EventFocus
	EventInterrupt
)

// Event is a raw terminal event. Key events carry either a Rune (Code is
// key.CodeNone) or a key Code; Ctrl+letter arrives as the letter's code
// with ModCtrl set.
type Event struct {
	Type EventType

	Code key.Code
	Rune rune
	Mods key.Modifier

	MouseX, MouseY int
	Button         MouseButton

	Width, Height int

	// Focused reports terminal focus for EventFocus and paste start for
	// EventPaste.
	Focused bool
}

// MouseButton identifies the button of a mouse event.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// Backend is a character terminal.
type Backend interface {
	// Init prepares the terminal. It must be called first.
	Init() error

	// Shutdown restores the terminal.
	Shutdown()

	Size() (width, height int)

	// OnResize registers a callback run when the terminal is resized.
	OnResize(callback func(width, height int))

	// SetCell sets the cell at (x, y). Positions off screen are ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns the cell at (x, y), or an empty cell off screen.
	GetCell(x, y int) core.Cell

	Clear()

	// Show flushes pending changes to the display.
	Show()

	ShowCursor(x, y int)
	HideCursor()

	// PollEvent blocks for the next event. After Shutdown it returns an
	// event of type EventNone.
	PollEvent() Event

	// PostEvent injects a synthetic event.
	PostEvent(ev Event)

	Beep()
	EnableMouse()
	DisableMouse()
}

// NullBackend is an in-memory backend for tests.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	mouse         bool
	beeps         int
	shows         int
	resizeHandler func(width, height int)
	events        chan Event
	done          chan struct{}
}

// NewNullBackend creates a null backend of the given size.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
		done:   make(chan struct{}),
	}
	b.allocate()
	return b
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]core.Cell, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() {
	select {
	case <-b.done:
	default:
		close(b.done)
	}
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) OnResize(callback func(width, height int)) {
	b.resizeHandler = callback
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Clear() {
	b.allocate()
}

func (b *NullBackend) Show() { b.shows++ }

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX, b.cursorY = x, y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	case <-b.done:
		return Event{Type: EventNone}
	}
}

func (b *NullBackend) PostEvent(ev Event) {
	select {
	case b.events <- ev:
	default:
	}
}

func (b *NullBackend) Beep()         { b.beeps++ }
func (b *NullBackend) EnableMouse()  { b.mouse = true }
func (b *NullBackend) DisableMouse() { b.mouse = false }

// CursorPosition returns the cursor state.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Beeps returns the number of Beep calls.
func (b *NullBackend) Beeps() int { return b.beeps }

// Shows returns the number of Show calls.
func (b *NullBackend) Shows() int { return b.shows }

// MouseEnabled reports whether mouse reporting is on.
func (b *NullBackend) MouseEnabled() bool { return b.mouse }

// Row returns row y as text.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	return core.StringFromCells(b.cells[y])
}

// Resize simulates a terminal resize.
func (b *NullBackend) Resize(width, height int) {
	b.width, b.height = width, height
	b.allocate()
	if b.resizeHandler != nil {
		b.resizeHandler(width, height)
	}
}
