package backend

import (
	"github.com/dshills/termkit/internal/renderer/core"
)

// ScreenBuffer is a double buffer: painting goes to the back buffer and
// ComputeDiff lists the cells that differ from what is displayed.
type ScreenBuffer struct {
	width, height int
	front         [][]core.Cell
	back          [][]core.Cell
	fullRedraw    bool
}

// NewScreenBuffer creates a buffer of the given size.
func NewScreenBuffer(width, height int) *ScreenBuffer {
	sb := &ScreenBuffer{width: width, height: height, fullRedraw: true}
	sb.allocate()
	return sb
}

func (sb *ScreenBuffer) allocate() {
	sb.front = make([][]core.Cell, sb.height)
	sb.back = make([][]core.Cell, sb.height)
	for y := 0; y < sb.height; y++ {
		sb.front[y] = make([]core.Cell, sb.width)
		sb.back[y] = make([]core.Cell, sb.width)
		for x := 0; x < sb.width; x++ {
			sb.front[y][x] = core.EmptyCell()
			sb.back[y][x] = core.EmptyCell()
		}
	}
}

// Resize reallocates the buffer and forces a full redraw.
func (sb *ScreenBuffer) Resize(width, height int) {
	if width == sb.width && height == sb.height {
		return
	}
	sb.width, sb.height = width, height
	sb.allocate()
	sb.fullRedraw = true
}

// Size returns the buffer dimensions.
func (sb *ScreenBuffer) Size() (width, height int) {
	return sb.width, sb.height
}

// SetCell sets a back-buffer cell.
func (sb *ScreenBuffer) SetCell(x, y int, cell core.Cell) {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return
	}
	sb.back[y][x] = cell
}

// GetCell returns a back-buffer cell.
func (sb *ScreenBuffer) GetCell(x, y int) core.Cell {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return core.EmptyCell()
	}
	return sb.back[y][x]
}

// Clear blanks the back buffer.
func (sb *ScreenBuffer) Clear() {
	empty := core.EmptyCell()
	for y := range sb.back {
		for x := range sb.back[y] {
			sb.back[y][x] = empty
		}
	}
}

// DiffChange is one cell to send to the terminal.
type DiffChange struct {
	X, Y int
	Cell core.Cell
}

// ComputeDiff returns the back-buffer cells that differ from the front
// buffer, or every cell after a resize.
func (sb *ScreenBuffer) ComputeDiff() []DiffChange {
	var changes []DiffChange
	for y := 0; y < sb.height; y++ {
		for x := 0; x < sb.width; x++ {
			if sb.fullRedraw || sb.back[y][x] != sb.front[y][x] {
				changes = append(changes, DiffChange{X: x, Y: y, Cell: sb.back[y][x]})
			}
		}
	}
	return changes
}

// Sync makes the back buffer the displayed state.
func (sb *ScreenBuffer) Sync() {
	for y := range sb.back {
		copy(sb.front[y], sb.back[y])
	}
	sb.fullRedraw = false
}

// MarkFullRedraw forces the next diff to include every cell.
func (sb *ScreenBuffer) MarkFullRedraw() {
	sb.fullRedraw = true
}

// Buffered wraps a Backend so that Show only sends changed cells.
type Buffered struct {
	Backend
	buffer  *ScreenBuffer
	flushed int
}

// NewBuffered wraps b.
func NewBuffered(b Backend) *Buffered {
	w, h := b.Size()
	return &Buffered{Backend: b, buffer: NewScreenBuffer(w, h)}
}

// Init initializes the wrapped backend and sizes the buffer.
func (b *Buffered) Init() error {
	if err := b.Backend.Init(); err != nil {
		return err
	}
	b.buffer.Resize(b.Backend.Size())
	return nil
}

// OnResize resizes the buffer before calling callback.
func (b *Buffered) OnResize(callback func(width, height int)) {
	b.Backend.OnResize(func(w, h int) {
		b.buffer.Resize(w, h)
		if callback != nil {
			callback(w, h)
		}
	})
}

func (b *Buffered) Size() (int, int) {
	return b.buffer.Size()
}

func (b *Buffered) SetCell(x, y int, cell core.Cell) {
	b.buffer.SetCell(x, y, cell)
}

func (b *Buffered) GetCell(x, y int) core.Cell {
	return b.buffer.GetCell(x, y)
}

func (b *Buffered) Clear() {
	b.buffer.Clear()
}

// Show sends the changed cells and flushes the wrapped backend.
func (b *Buffered) Show() {
	changes := b.buffer.ComputeDiff()
	for _, ch := range changes {
		b.Backend.SetCell(ch.X, ch.Y, ch.Cell)
	}
	b.buffer.Sync()
	b.flushed = len(changes)
	b.Backend.Show()
}

// Flushed returns the number of cells the last Show sent.
func (b *Buffered) Flushed() int {
	return b.flushed
}
