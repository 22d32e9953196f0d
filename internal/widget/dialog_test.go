package widget

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/popup"
)

type dialogFixture struct {
	*testHost
	body   *Button
	dialog *Dialog
	ok     *Button
	cancel *Button
	events []core.WindowEventID
}

func newDialogFixture(t *testing.T) *dialogFixture {
	t.Helper()
	h := newTestHost(t)
	f := &dialogFixture{testHost: h}

	f.body = NewButton(h, "body")
	f.body.SetMnemonic('b')
	h.add(f.body)
	require.True(t, f.body.RequestFocus())

	f.dialog = NewDialog(h, "Confirm")
	f.ok = NewButton(h, "OK")
	f.cancel = NewButton(h, "Cancel")
	require.NoError(t, f.dialog.Add(NewLabel(h, "Really?"), f.ok, f.cancel))
	f.dialog.SetDefaultButton(f.ok)
	f.dialog.AddWindowListener(func(ev core.WindowEvent) { f.events = append(f.events, ev.ID) })
	return f
}

func TestDialogShowCentersAndFocuses(t *testing.T) {
	f := newDialogFixture(t)
	require.NoError(t, f.dialog.Show())
	require.True(t, f.dialog.IsOpen())
	require.True(t, f.ok.IsDefault())
	require.True(t, f.ok.HasFocus())

	r := f.dialog.Bounds()
	require.Equal(t, core.NewRect(34, 9, 12, 5), r)
	require.Equal(t, core.NewRect(35, 11, 10, 1), f.ok.Bounds())

	require.NoError(t, f.dialog.Show())
	require.Equal(t, 1, f.popups.Len())
}

func TestDialogEscapeHidesByDefault(t *testing.T) {
	f := newDialogFixture(t)
	require.NoError(t, f.dialog.Show())

	f.press(key.CodeEscape, key.ModNone)
	require.False(t, f.dialog.IsOpen())
	require.True(t, f.body.HasFocus())
	require.Equal(t, []core.WindowEventID{
		core.WindowActivated,
		core.WindowOpened,
		core.WindowClosing,
		core.WindowDeactivated,
		core.WindowClosed,
	}, f.events)
}

func TestDialogDoNothingOnClose(t *testing.T) {
	f := newDialogFixture(t)
	f.dialog.SetCloseOperation(popup.DoNothingOnClose)
	require.NoError(t, f.dialog.Show())

	f.press(key.CodeEscape, key.ModNone)
	require.True(t, f.dialog.IsOpen())
	require.Contains(t, f.events, core.WindowClosing)

	f.press(key.CodeBackspace, key.ModNone)
	require.True(t, f.dialog.IsOpen())

	f.dialog.SetCloseOperation(popup.HideOnClose)
	f.press(key.CodeEscape, key.ModNone)
	require.False(t, f.dialog.IsOpen())
}

func TestDialogDefaultButton(t *testing.T) {
	f := newDialogFixture(t)
	pressed := ""
	f.ok.AddActionListener(func(ev core.ActionEvent) { pressed = ev.Command })
	f.cancel.AddActionListener(func(ev core.ActionEvent) { pressed = ev.Command })
	require.NoError(t, f.dialog.Show())

	f.press(key.CodeTab, key.ModNone)
	require.True(t, f.cancel.HasFocus())
	f.press(key.CodeEnter, key.ModNone)
	require.Equal(t, "Cancel", pressed)

	f.fm.ActiveController().ClearFocus()
	f.press(key.CodeEnter, key.ModNone)
	require.Equal(t, "OK", pressed)

	f.dialog.SetDefaultButton(f.cancel)
	require.False(t, f.ok.IsDefault())
	f.press(key.CodeEnter, key.ModNone)
	require.Equal(t, "Cancel", pressed)
}

func TestDialogIsModal(t *testing.T) {
	f := newDialogFixture(t)
	clicks := 0
	f.body.AddActionListener(func(core.ActionEvent) { clicks++ })
	require.NoError(t, f.dialog.Show())

	f.press(key.CodeForRune('b'), key.ModAlt)
	require.Zero(t, clicks)

	br := f.body.Bounds()
	f.click(br.X, br.Y)
	require.Zero(t, clicks)
	require.True(t, f.dialog.IsOpen())

	f.dialog.Hide()
	f.press(key.CodeForRune('b'), key.ModAlt)
	require.Equal(t, 1, clicks)
}
