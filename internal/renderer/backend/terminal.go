package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/renderer/core"
)

// Terminal implements Backend on a tcell screen.
type Terminal struct {
	screen        tcell.Screen
	resizeHandler func(width, height int)
	mu            sync.Mutex
}

// NewTerminal creates a terminal backend for the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, such as a
// tcell.SimulationScreen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnablePaste()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) OnResize(callback func(width, height int)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.resizeHandler = callback
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	if cell.IsContinuation() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) GetCell(x, y int) core.Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, _, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return core.Cell{
		Rune:  mainc,
		Width: core.RuneWidth(mainc),
		Style: convertTcellStyle(style),
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Type: EventNone}
	}
	out := convertEvent(ev)
	if out.Type == EventResize {
		t.mu.Lock()
		h := t.resizeHandler
		t.mu.Unlock()
		if h != nil {
			h(out.Width, out.Height)
		}
	}
	return out
}

// PostEvent injects key events and wake-ups; other types are dropped.
func (t *Terminal) PostEvent(ev Event) {
	switch ev.Type {
	case EventKey:
		k, r := convertToTcellKey(ev.Code, ev.Rune)
		_ = t.screen.PostEvent(tcell.NewEventKey(k, r, convertToTcellMod(ev.Mods))) // queue may be full
	case EventInterrupt:
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep() // not every terminal has a bell
}

func (t *Terminal) EnableMouse() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.EnableMouse()
}

func (t *Terminal) DisableMouse() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.DisableMouse()
}

func convertColor(c core.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(c.Index())
}

func convertStyle(s core.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(convertColor(s.Foreground)).
		Background(convertColor(s.Background)).
		Bold(s.Attributes.Has(core.AttrBold)).
		Dim(s.Attributes.Has(core.AttrDim)).
		Underline(s.Attributes.Has(core.AttrUnderline)).
		Reverse(s.Attributes.Has(core.AttrReverse))
}

func convertTcellColor(tc tcell.Color) core.Color {
	if tc == tcell.ColorDefault || tc&tcell.ColorIsRGB != 0 || tc < tcell.ColorValid {
		return core.ColorDefault
	}
	return core.Color(tc - tcell.ColorValid)
}

func convertTcellStyle(ts tcell.Style) core.Style {
	fg, bg, attrs := ts.Decompose()
	s := core.Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
	}
	if attrs&tcell.AttrBold != 0 {
		s.Attributes |= core.AttrBold
	}
	if attrs&tcell.AttrDim != 0 {
		s.Attributes |= core.AttrDim
	}
	if attrs&tcell.AttrUnderline != 0 {
		s.Attributes |= core.AttrUnderline
	}
	if attrs&tcell.AttrReverse != 0 {
		s.Attributes |= core.AttrReverse
	}
	return s
}

func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		code, r, mods := convertKey(e.Key(), e.Rune(), convertMod(e.Modifiers()))
		return Event{Type: EventKey, Code: code, Rune: r, Mods: mods}

	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{
			Type:   EventMouse,
			MouseX: x,
			MouseY: y,
			Button: convertMouseButton(e.Buttons()),
			Mods:   convertMod(e.Modifiers()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventPaste:
		return Event{Type: EventPaste, Focused: e.Start()}

	case *tcell.EventFocus:
		return Event{Type: EventFocus, Focused: e.Focused}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}

	default:
		return Event{Type: EventNone}
	}
}

// convertKey maps a tcell key to a key code or rune. Control characters
// other than the named keys become Ctrl+letter.
func convertKey(k tcell.Key, r rune, mods key.Modifier) (key.Code, rune, key.Modifier) {
	switch k {
	case tcell.KeyRune:
		if r == ' ' && mods != key.ModNone {
			return key.CodeSpace, 0, mods
		}
		if mods.Has(key.ModAlt) || mods.Has(key.ModCtrl) {
			return key.CodeForRune(r), 0, mods
		}
		return key.CodeNone, r, mods
	case tcell.KeyEscape:
		return key.CodeEscape, 0, mods
	case tcell.KeyEnter:
		return key.CodeEnter, 0, mods
	case tcell.KeyTab:
		return key.CodeTab, 0, mods
	case tcell.KeyBacktab:
		return key.CodeTab, 0, mods.With(key.ModShift)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.CodeBackspace, 0, mods.Without(key.ModCtrl)
	case tcell.KeyDelete:
		return key.CodeDelete, 0, mods
	case tcell.KeyInsert:
		return key.CodeInsert, 0, mods
	case tcell.KeyHome:
		return key.CodeHome, 0, mods
	case tcell.KeyEnd:
		return key.CodeEnd, 0, mods
	case tcell.KeyPgUp:
		return key.CodePageUp, 0, mods
	case tcell.KeyPgDn:
		return key.CodePageDown, 0, mods
	case tcell.KeyUp:
		return key.CodeUp, 0, mods
	case tcell.KeyDown:
		return key.CodeDown, 0, mods
	case tcell.KeyLeft:
		return key.CodeLeft, 0, mods
	case tcell.KeyRight:
		return key.CodeRight, 0, mods
	case tcell.KeyCtrlSpace:
		return key.CodeSpace, 0, mods.With(key.ModCtrl)
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.CodeF1 + key.Code(k-tcell.KeyF1), 0, mods
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.Code('A' + (k - tcell.KeyCtrlA)), 0, mods.With(key.ModCtrl)
	}
	return key.CodeNone, 0, mods
}

func convertToTcellKey(code key.Code, r rune) (tcell.Key, rune) {
	switch code {
	case key.CodeNone:
		return tcell.KeyRune, r
	case key.CodeSpace:
		return tcell.KeyRune, ' '
	case key.CodeEscape:
		return tcell.KeyEscape, 0
	case key.CodeEnter:
		return tcell.KeyEnter, 0
	case key.CodeTab:
		return tcell.KeyTab, 0
	case key.CodeBackspace:
		return tcell.KeyBackspace2, 0
	case key.CodeDelete:
		return tcell.KeyDelete, 0
	case key.CodeInsert:
		return tcell.KeyInsert, 0
	case key.CodeHome:
		return tcell.KeyHome, 0
	case key.CodeEnd:
		return tcell.KeyEnd, 0
	case key.CodePageUp:
		return tcell.KeyPgUp, 0
	case key.CodePageDown:
		return tcell.KeyPgDn, 0
	case key.CodeUp:
		return tcell.KeyUp, 0
	case key.CodeDown:
		return tcell.KeyDown, 0
	case key.CodeLeft:
		return tcell.KeyLeft, 0
	case key.CodeRight:
		return tcell.KeyRight, 0
	}
	if code.IsFunctionKey() {
		return tcell.KeyF1 + tcell.Key(code-key.CodeF1), 0
	}
	return tcell.KeyRune, rune(code)
}

func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}

func convertToTcellMod(m key.Modifier) tcell.ModMask {
	var mask tcell.ModMask
	if m.Has(key.ModShift) {
		mask |= tcell.ModShift
	}
	if m.Has(key.ModCtrl) {
		mask |= tcell.ModCtrl
	}
	if m.Has(key.ModAlt) {
		mask |= tcell.ModAlt
	}
	if m.Has(key.ModMeta) {
		mask |= tcell.ModMeta
	}
	return mask
}

func convertMouseButton(b tcell.ButtonMask) MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return MouseLeft
	case b&tcell.Button2 != 0:
		return MouseRight
	case b&tcell.Button3 != 0:
		return MouseMiddle
	case b&tcell.WheelUp != 0:
		return MouseWheelUp
	case b&tcell.WheelDown != 0:
		return MouseWheelDown
	default:
		return MouseNone
	}
}
