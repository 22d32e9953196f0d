package widget

import (
	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/input/keymap"
	"github.com/dshills/termkit/internal/layout"
	"github.com/dshills/termkit/internal/popup"
	rcore "github.com/dshills/termkit/internal/renderer/core"
)

// MenuBar is a row of Menus. While it has focus Left and Right move the
// selection, Enter or Down opens the selected menu and a typed mnemonic
// letter opens the matching menu.
type MenuBar struct {
	frame
	selected int
}

// NewMenuBar creates an empty menu bar.
func NewMenuBar(host Host) *MenuBar {
	b := &MenuBar{}
	b.init(host, b)
	box := layout.NewBox(core.Horizontal)
	box.Gap = 1
	b.layout = box

	b.putUI(keymap.ActSelectPrevious, func(core.ActionEvent) { b.Select(b.selected - 1) })
	b.putUI(keymap.ActSelectNext, func(core.ActionEvent) { b.Select(b.selected + 1) })
	b.putUI(keymap.ActOpenMenu, func(core.ActionEvent) { b.OpenSelected() })
	b.putUI(keymap.ActTakeFocus, func(core.ActionEvent) { b.RequestFocus() })
	b.InstallUI()
	return b
}

// Class implements component.Classed.
func (b *MenuBar) Class() string { return keymap.ClassMenuBar }

// AcceptsFocus implements component.Focusable.
func (b *MenuBar) AcceptsFocus() bool { return true }

// AddMenu appends menus.
func (b *MenuBar) AddMenu(menus ...*Menu) error {
	for _, m := range menus {
		if err := b.tree().Add(b.h, m.h); err != nil {
			return err
		}
	}
	return nil
}

// Menus returns the bar's menus in order.
func (b *MenuBar) Menus() []*Menu {
	var out []*Menu
	for _, h := range b.tree().Children(b.h) {
		if m, ok := b.tree().Widget(h).(*Menu); ok {
			out = append(out, m)
		}
	}
	return out
}

// Selected returns the index of the selected menu.
func (b *MenuBar) Selected() int { return b.selected }

// SelectedMenu returns the selected menu, or nil.
func (b *MenuBar) SelectedMenu() *Menu {
	menus := b.Menus()
	if b.selected < 0 || b.selected >= len(menus) {
		return nil
	}
	return menus[b.selected]
}

// Select selects menu i, wrapping at both ends.
func (b *MenuBar) Select(i int) {
	n := len(b.Menus())
	if n == 0 {
		return
	}
	b.selected = ((i % n) + n) % n
}

func (b *MenuBar) selectMenu(m *Menu) {
	for i, cur := range b.Menus() {
		if cur == m {
			b.selected = i
			return
		}
	}
}

// OpenSelected opens the selected menu's popup. A menu without items
// never opens.
func (b *MenuBar) OpenSelected() bool {
	m := b.SelectedMenu()
	if m == nil {
		return false
	}
	return m.Open()
}

// HandleKey implements component.KeyHandler: a typed letter matching a
// menu's mnemonic selects and opens that menu.
func (b *MenuBar) HandleKey(ev *core.KeyEvent) {
	if ev.ID != core.KeyTyped || ev.Modifiers.Has(key.ModCtrl) || ev.Modifiers.Has(key.ModAlt) {
		return
	}
	for i, m := range b.Menus() {
		if component.MatchMnemonic(m.Mnemonic(), ev.Char) {
			b.selected = i
			m.Open()
			ev.Consume()
			return
		}
	}
}

// slide re-injects code at the bar followed by Enter, as one deferred
// task. A popup closing with Left or Right uses it to open the
// neighbouring menu.
func (b *MenuBar) slide(code key.Code) {
	_ = b.host.Loop().InvokeLater(func() {
		b.inject(code)
		b.inject(key.CodeEnter)
	})
}

func (b *MenuBar) inject(code key.Code) {
	ev := core.NewKeyPressed(code, key.ModNone)
	ev.Source = b.h
	b.tree().ProcessKeyBinding(b.h, ev.Stroke(), ev, core.WhenFocused)
}

// PreferredSize implements layout.Sizer.
func (b *MenuBar) PreferredSize() core.Size {
	s := b.frame.PreferredSize()
	return core.Size{Width: s.Width, Height: 1}
}

// Paint implements component.Paintable.
func (b *MenuBar) Paint(s component.Surface, clip core.Rect) {
	s.Fill(b.Bounds(), ' ', styleNormal)
}

// Menu is a titled entry of a MenuBar or, inside a PopupMenu, a submenu.
// Its items live in its own PopupMenu.
type Menu struct {
	Base
	text  string
	popup *PopupMenu
}

// NewMenu creates an empty menu.
func NewMenu(host Host, text string) *Menu {
	m := &Menu{text: text}
	m.init(host, m)
	m.popup = newPopupMenu(host, m)
	m.putUI(keymap.ActPress, func(core.ActionEvent) { m.DoClick() })
	m.InstallUI()
	return m
}

// Text returns the menu title.
func (m *Menu) Text() string { return m.text }

// SetMnemonic sets the mnemonic; 0 removes it. Alt+<mnemonic> opens the
// menu while its window is active.
func (m *Menu) SetMnemonic(r rune) { m.bindMnemonic(r, keymap.ActPress) }

// Add appends menu items, submenus or separators.
func (m *Menu) Add(items ...Widget) error { return m.popup.Add(items...) }

// AddSeparator appends a separator line.
func (m *Menu) AddSeparator() { m.popup.AddSeparator() }

// Popup returns the menu's popup.
func (m *Menu) Popup() *PopupMenu { return m.popup }

// IsOpen reports whether the menu's popup is showing.
func (m *Menu) IsOpen() bool { return m.popup.IsShowing() }

func (m *Menu) bar() *MenuBar {
	b, _ := m.tree().Widget(m.tree().Parent(m.h)).(*MenuBar)
	return b
}

func (m *Menu) parentPopup() *PopupMenu {
	p, _ := m.tree().Widget(m.tree().Parent(m.h)).(*PopupMenu)
	return p
}

// Open shows the menu's popup: below the title for a menu bar menu, to the
// right of the row for a submenu. It reports false for an empty menu.
func (m *Menu) Open() bool {
	if m.IsOpen() {
		return true
	}
	r := m.Bounds()
	x, y := r.X, r.Y+1
	if p := m.parentPopup(); p != nil {
		x, y = p.Bounds().X+p.Bounds().Width, r.Y-1
	}
	return m.popup.show(m.h, x, y, m.closed)
}

// Close hides the menu's popup and every submenu opened from it.
func (m *Menu) Close() { m.popup.Close() }

// closed runs when the menu's popup is popped. A menu bar menu closed
// with Left or Right slides the bar to its neighbour.
func (m *Menu) closed(code key.Code) {
	if code != key.CodeLeft && code != key.CodeRight {
		return
	}
	if b := m.bar(); b != nil {
		b.slide(code)
	}
}

// DoClick implements component.Clickable: it selects the menu in its
// parent and opens it, or closes it if it is already open.
func (m *Menu) DoClick() {
	if !m.Enabled() {
		return
	}
	if b := m.bar(); b != nil {
		b.selectMenu(m)
	}
	if p := m.parentPopup(); p != nil {
		p.selectHandle(m.h)
	}
	if m.IsOpen() {
		m.Close()
		return
	}
	m.Open()
}

// HandleMouse implements component.MouseHandler.
func (m *Menu) HandleMouse(ev *core.MouseEvent) {
	if ev.ID == core.MousePressed && ev.Button == core.ButtonLeft {
		m.DoClick()
		ev.Consume()
	}
}

// PreferredSize implements layout.Sizer.
func (m *Menu) PreferredSize() core.Size {
	if m.parentPopup() != nil {
		return core.Size{Width: textWidth(m.text) + 4, Height: 1}
	}
	return core.Size{Width: textWidth(m.text) + 2, Height: 1}
}

// Paint implements component.Paintable.
func (m *Menu) Paint(s component.Surface, clip core.Rect) {
	r := m.Bounds()
	if p := m.parentPopup(); p != nil {
		style := p.rowStyle(m.h)
		s.Fill(r, ' ', style)
		drawMnemonicText(s, r.X+1, r.Y, m.text, m.mnemonic, style)
		s.SetCell(r.X+r.Width-2, r.Y, '▸', style)
		return
	}

	style := styleNormal
	b := m.bar()
	switch {
	case !m.Enabled():
		style = styleDisabled
	case b != nil && b.SelectedMenu() == m && (b.HasFocus() || m.IsOpen()):
		style = styleSelected
	}
	s.Fill(r, ' ', style)
	drawMnemonicText(s, r.X+1, r.Y, m.text, m.mnemonic, style)
}

// MenuItem is a choosable row of a menu. Choosing it closes every open
// menu of its chain and then fires its action event.
type MenuItem struct {
	buttonBase
}

// NewMenuItem creates a menu item.
func NewMenuItem(host Host, text string) *MenuItem {
	it := &MenuItem{}
	it.text = text
	it.init(host, it)
	it.onClick = func(core.ActionEvent) {
		if p := it.parentPopup(); p != nil {
			p.root().Close()
		}
	}
	it.setup()
	return it
}

// AcceptsFocus implements component.Focusable. Items never hold focus;
// their popup does.
func (it *MenuItem) AcceptsFocus() bool { return false }

func (it *MenuItem) parentPopup() *PopupMenu {
	p, _ := it.tree().Widget(it.tree().Parent(it.h)).(*PopupMenu)
	return p
}

// PreferredSize implements layout.Sizer.
func (it *MenuItem) PreferredSize() core.Size {
	return core.Size{Width: textWidth(it.text) + 4, Height: 1}
}

// Paint implements component.Paintable.
func (it *MenuItem) Paint(s component.Surface, clip core.Rect) {
	r := it.Bounds()
	style := styleNormal
	if p := it.parentPopup(); p != nil {
		style = p.rowStyle(it.h)
	}
	s.Fill(r, ' ', style)
	drawMnemonicText(s, r.X+1, r.Y, it.text, it.mnemonic, style)
}

// separator is a non-selectable rule between menu rows.
type separator struct {
	Base
}

func newSeparator(host Host) *separator {
	s := &separator{}
	s.init(host, s)
	return s
}

// PreferredSize implements layout.Sizer.
func (sep *separator) PreferredSize() core.Size { return core.Size{Width: 1, Height: 1} }

// Paint implements component.Paintable.
func (sep *separator) Paint(s component.Surface, clip core.Rect) {
	r := sep.Bounds()
	for x := r.X; x < r.X+r.Width; x++ {
		s.SetCell(x, r.Y, boxH, styleNormal)
	}
}

// PopupMenu is a window listing menu rows. It holds focus while open: Up
// and Down move the selection, Enter or Space chooses the selected row, a
// typed mnemonic letter chooses the matching row, Right opens a submenu
// and Left closes a submenu. Left in the top popup of a menu bar menu
// closes it and moves to the previous menu. Right on a plain row does
// nothing. Escape and Backspace are handled by the popup stack.
type PopupMenu struct {
	frame
	owner    *Menu
	selected core.Handle
	entry    *popup.Entry
}

// NewPopupMenu creates a standalone popup menu, shown with Show.
func NewPopupMenu(host Host) *PopupMenu {
	return newPopupMenu(host, nil)
}

func newPopupMenu(host Host, owner *Menu) *PopupMenu {
	p := &PopupMenu{owner: owner}
	p.initWindow(host, p)
	p.border = true
	p.layout = newVerticalBox(true)
	p.tree().SetVisible(p.h, false)

	p.putUI(keymap.ActSelectPrevious, func(core.ActionEvent) { p.step(-1) })
	p.putUI(keymap.ActSelectNext, func(core.ActionEvent) { p.step(1) })
	p.putUI(keymap.ActSelectItem, func(core.ActionEvent) { p.choose() })
	p.putUI(keymap.ActSelectChild, func(core.ActionEvent) { p.selectChild() })
	p.putUI(keymap.ActSelectParent, func(core.ActionEvent) { p.selectParent() })
	p.InstallUI()
	return p
}

// Class implements component.Classed.
func (p *PopupMenu) Class() string { return keymap.ClassPopupMenu }

// AcceptsFocus implements component.Focusable.
func (p *PopupMenu) AcceptsFocus() bool { return true }

// AddSeparator appends a separator line.
func (p *PopupMenu) AddSeparator() {
	_ = p.Add(newSeparator(p.host))
}

// Owner returns the menu the popup belongs to, or nil.
func (p *PopupMenu) Owner() *Menu { return p.owner }

// IsShowing reports whether the popup is on the popup stack.
func (p *PopupMenu) IsShowing() bool { return p.entry != nil }

// Selected returns the selected row, or NoHandle.
func (p *PopupMenu) Selected() core.Handle { return p.selected }

// Show opens a standalone popup at (x, y). invoker may be NoHandle.
func (p *PopupMenu) Show(invoker core.Handle, x, y int) bool {
	return p.show(invoker, x, y, nil)
}

// Close pops the popup and everything above it.
func (p *PopupMenu) Close() {
	if p.entry != nil {
		p.host.Popups().PopTo(p.entry)
	}
}

func (p *PopupMenu) show(invoker core.Handle, x, y int, onClose func(key.Code)) bool {
	if p.entry != nil {
		return true
	}
	rows := p.rows()
	if len(rows) == 0 {
		return false
	}

	size := p.layout.MinimumSize(p.tree(), p.h)
	base := p.tree().Bounds(p.host.Popups().Base())
	if right := base.X + base.Width; base.Width > 0 && x+size.Width > right {
		x = max(base.X, right-size.Width)
	}
	if bottom := base.Y + base.Height; base.Height > 0 && y+size.Height > bottom {
		y = max(base.Y, bottom-size.Height)
	}
	p.SetBounds(core.NewRect(x, y, size.Width, size.Height))

	e, err := p.host.Popups().Push(p.h, popup.Options{
		Invoker: invoker,
		OnClose: func(code key.Code) {
			p.entry = nil
			if onClose != nil {
				onClose(code)
			}
		},
	})
	if err != nil {
		return false
	}
	p.entry = e
	layout.Apply(p.tree(), p.h)
	p.selected = core.NoHandle
	p.step(1)
	return true
}

// rows returns the children that can be selected.
func (p *PopupMenu) rows() []core.Handle {
	var out []core.Handle
	for _, h := range p.tree().Children(p.h) {
		if _, sep := p.tree().Widget(h).(*separator); sep {
			continue
		}
		if p.tree().Visible(h) && p.tree().Enabled(h) {
			out = append(out, h)
		}
	}
	return out
}

func (p *PopupMenu) selectHandle(h core.Handle) {
	p.selected = h
}

// step moves the selection by dir rows, wrapping.
func (p *PopupMenu) step(dir int) {
	rows := p.rows()
	if len(rows) == 0 {
		return
	}
	idx := -1
	for i, h := range rows {
		if h == p.selected {
			idx = i
		}
	}
	switch {
	case idx < 0 && dir > 0:
		idx = 0
	case idx < 0:
		idx = len(rows) - 1
	default:
		idx = ((idx+dir)%len(rows) + len(rows)) % len(rows)
	}
	p.selected = rows[idx]
}

// choose activates the selected row: a submenu opens, an item fires.
func (p *PopupMenu) choose() {
	switch w := p.tree().Widget(p.selected).(type) {
	case *Menu:
		w.Open()
	case component.Clickable:
		w.DoClick()
	}
}

func (p *PopupMenu) isTop() bool {
	top := p.host.Popups().Top()
	return top != nil && top.Window == p.h
}

// selectChild opens the selected row when it is a submenu. Right on a
// plain item does nothing at any level.
func (p *PopupMenu) selectChild() {
	if m, ok := p.tree().Widget(p.selected).(*Menu); ok {
		m.Open()
	}
}

func (p *PopupMenu) selectParent() {
	if p.owner != nil && p.isTop() {
		p.host.Popups().PopWithKey(key.CodeLeft)
	}
}

// root returns the outermost popup of p's menu chain.
func (p *PopupMenu) root() *PopupMenu {
	cur := p
	for cur.owner != nil {
		parent := cur.owner.parentPopup()
		if parent == nil {
			break
		}
		cur = parent
	}
	return cur
}

// HandleKey implements component.KeyHandler: a typed letter matching a
// row's mnemonic selects and chooses that row.
func (p *PopupMenu) HandleKey(ev *core.KeyEvent) {
	if ev.ID != core.KeyTyped || ev.Modifiers.Has(key.ModCtrl) || ev.Modifiers.Has(key.ModAlt) {
		return
	}
	for _, h := range p.rows() {
		mn, ok := p.tree().Widget(h).(component.HasMnemonic)
		if ok && component.MatchMnemonic(mn.Mnemonic(), ev.Char) {
			p.selected = h
			p.choose()
			ev.Consume()
			return
		}
	}
}

func (p *PopupMenu) rowStyle(h core.Handle) rcore.Style {
	switch {
	case !p.tree().Enabled(h):
		return styleDisabled
	case h == p.selected:
		return styleSelected
	default:
		return styleNormal
	}
}

// Paint implements component.Paintable.
func (p *PopupMenu) Paint(s component.Surface, clip core.Rect) {
	drawBox(s, p.Bounds(), p.title, styleNormal)
}
