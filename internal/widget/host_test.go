package widget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/termkit/internal/binding"
	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/event"
	"github.com/dshills/termkit/internal/focus"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/input/keymap"
	"github.com/dshills/termkit/internal/keyboard"
	"github.com/dshills/termkit/internal/layout"
	"github.com/dshills/termkit/internal/popup"
	"github.com/dshills/termkit/internal/renderer"
	"github.com/dshills/termkit/internal/renderer/backend"
	"github.com/dshills/termkit/internal/router"
)

// testHost wires the UI state the way the application does, without a
// terminal. The event loop is never run; tests call Drain.
type testHost struct {
	t        *testing.T
	tree     *component.Tree
	fm       *focus.Manager
	popups   *popup.Stack
	loop     *event.Loop
	keymaps  *keymap.Registry
	router   *router.Router
	root     *Window
}

func newTestHost(t *testing.T) *testHost {
	t.Helper()
	km := keyboard.NewManager()
	reg := keymap.NewRegistry()
	require.NoError(t, keymap.LoadDefaults(reg))

	h := &testHost{t: t, tree: component.NewTree(km), keymaps: reg, loop: event.NewLoop()}
	h.fm = focus.NewManager(h.tree)

	h.root = NewWindow(h, "root")
	h.root.SetBounds(core.NewRect(0, 0, 80, 24))
	h.tree.Attach(h.root.Handle())
	h.fm.SetActive(h.root.Handle())
	h.popups = popup.NewStack(h.tree, h.fm, h.root.Handle())
	h.router = router.New(h.tree, h.fm, h.popups, binding.NewResolver(h.tree, km))
	return h
}

func (h *testHost) Tree() *component.Tree    { return h.tree }
func (h *testHost) Focus() *focus.Manager    { return h.fm }
func (h *testHost) Popups() *popup.Stack     { return h.popups }
func (h *testHost) Loop() *event.Loop        { return h.loop }
func (h *testHost) Keymaps() *keymap.Registry { return h.keymaps }

// add places widgets in the root window and lays it out.
func (h *testHost) add(ws ...Widget) {
	h.t.Helper()
	require.NoError(h.t, h.root.Add(ws...))
	layout.Apply(h.tree, h.root.Handle())
}

// dispatch routes ev through the same router the application uses.
func (h *testHost) dispatch(ev *core.KeyEvent) {
	h.router.Key(ev)
}

func (h *testHost) press(code key.Code, mods key.Modifier) {
	h.dispatch(core.NewKeyPressed(code, mods))
}

// typeRune sends the KEY_PRESSED and KEY_TYPED pair a terminal produces
// for a printable character.
func (h *testHost) typeRune(r rune) {
	h.dispatch(core.NewKeyPressed(key.CodeForRune(r), key.ModNone))
	h.dispatch(core.NewKeyTyped(r))
}

func (h *testHost) typeString(s string) {
	for _, r := range s {
		h.typeRune(r)
	}
}

// click delivers a left press to the widget under (x, y).
func (h *testHost) click(x, y int) {
	h.router.Mouse(core.NewMousePressed(core.ButtonLeft, x, y))
}

// screen paints the root window and the open popups and returns the rows
// of an 80x24 screen with trailing blanks trimmed.
func (h *testHost) screen() []string {
	out := backend.NewNullBackend(80, 24)
	windows := h.popups.Windows()
	for i, j := 0, len(windows)-1; i < j; i, j = i+1, j-1 {
		windows[i], windows[j] = windows[j], windows[i]
	}
	renderer.NewPainter(out).Paint(h.tree, windows)

	rows := make([]string, 24)
	for y := range rows {
		var line []rune
		for x := 0; x < 80; x++ {
			if c := out.GetCell(x, y); !c.IsContinuation() {
				line = append(line, c.Rune)
			}
		}
		rows[y] = strings.TrimRight(string(line), " ")
	}
	return rows
}
