package widget

import (
	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
)

const actFocusLabelled = "focusLabelled"

// Label shows one line of text. A label with a mnemonic and a LabelFor
// target focuses the target on Alt+<mnemonic>.
type Label struct {
	Base
	text     string
	labelFor core.Handle
}

// NewLabel creates a label.
func NewLabel(host Host, text string) *Label {
	l := &Label{text: text}
	l.init(host, l)
	l.putUI(actFocusLabelled, func(core.ActionEvent) {
		if l.labelFor != core.NoHandle {
			l.host.Focus().RequestFocus(l.labelFor)
		}
	})
	l.InstallUI()
	return l
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label text.
func (l *Label) SetText(text string) { l.text = text }

// SetMnemonic sets the mnemonic; 0 removes it.
func (l *Label) SetMnemonic(r rune) { l.bindMnemonic(r, actFocusLabelled) }

// LabelFor returns the component the mnemonic focuses.
func (l *Label) LabelFor() core.Handle { return l.labelFor }

// SetLabelFor sets the component the mnemonic focuses.
func (l *Label) SetLabelFor(w Widget) {
	if w == nil {
		l.labelFor = core.NoHandle
		return
	}
	l.labelFor = w.Handle()
}

// PreferredSize implements layout.Sizer.
func (l *Label) PreferredSize() core.Size {
	return core.Size{Width: textWidth(l.text), Height: 1}
}

// Paint implements component.Paintable.
func (l *Label) Paint(s component.Surface, clip core.Rect) {
	r := l.Bounds()
	style := styleNormal
	if !l.Enabled() {
		style = styleDisabled
	}
	drawMnemonicText(s, r.X, r.Y, l.text, l.mnemonic, style)
}
