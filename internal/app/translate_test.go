package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/renderer/backend"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		in   backend.Event
		want []*core.KeyEvent
	}{
		{
			name: "printable",
			in:   backend.Event{Type: backend.EventKey, Rune: 'a'},
			want: []*core.KeyEvent{core.NewKeyPressed(key.CodeForRune('a'), key.ModNone), core.NewKeyTyped('a')},
		},
		{
			name: "space",
			in:   backend.Event{Type: backend.EventKey, Rune: ' '},
			want: []*core.KeyEvent{core.NewKeyPressed(key.CodeSpace, key.ModNone), core.NewKeyTyped(' ')},
		},
		{
			name: "non-ascii typed only",
			in:   backend.Event{Type: backend.EventKey, Rune: 'é'},
			want: []*core.KeyEvent{core.NewKeyTyped('é')},
		},
		{
			name: "alt letter pressed only",
			in:   backend.Event{Type: backend.EventKey, Rune: 'f', Mods: key.ModAlt},
			want: []*core.KeyEvent{core.NewKeyPressed(key.CodeForRune('f'), key.ModAlt)},
		},
		{
			name: "ctrl letter",
			in:   backend.Event{Type: backend.EventKey, Code: key.CodeForRune('q'), Mods: key.ModCtrl},
			want: []*core.KeyEvent{core.NewKeyPressed(key.CodeForRune('q'), key.ModCtrl)},
		},
		{
			name: "special key",
			in:   backend.Event{Type: backend.EventKey, Code: key.CodeTab, Mods: key.ModShift},
			want: []*core.KeyEvent{core.NewKeyPressed(key.CodeTab, key.ModShift)},
		},
		{
			name: "empty",
			in:   backend.Event{Type: backend.EventKey},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr translator
			got := tr.translate(tt.in)
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				require.Equal(t, w, got[i])
			}
		})
	}
}

func TestTranslateMouse(t *testing.T) {
	var tr translator
	mouse := func(b backend.MouseButton, x, y int) []core.Event {
		return tr.translate(backend.Event{Type: backend.EventMouse, Button: b, MouseX: x, MouseY: y})
	}

	got := mouse(backend.MouseLeft, 3, 4)
	require.Len(t, got, 1)
	ev := got[0].(*core.MouseEvent)
	require.Equal(t, core.MousePressed, ev.ID)
	require.Equal(t, core.ButtonLeft, ev.Button)
	require.Equal(t, core.Point{X: 3, Y: 4}, ev.Pos)

	require.Empty(t, mouse(backend.MouseLeft, 5, 4), "drag is not a new press")

	got = mouse(backend.MouseNone, 6, 4)
	require.Len(t, got, 1)
	ev = got[0].(*core.MouseEvent)
	require.Equal(t, core.MouseReleased, ev.ID)
	require.Equal(t, core.ButtonLeft, ev.Button)

	require.Empty(t, mouse(backend.MouseNone, 7, 4), "motion without a button")

	got = mouse(backend.MouseWheelDown, 1, 1)
	require.Len(t, got, 1)
	ev = got[0].(*core.MouseEvent)
	require.Equal(t, core.MouseWheel, ev.ID)
	require.Equal(t, core.WheelDown, ev.Button)

	got = mouse(backend.MouseRight, 1, 1)
	require.Equal(t, core.ButtonRight, got[0].(*core.MouseEvent).Button)
}

func TestTranslateIgnoresOtherEvents(t *testing.T) {
	var tr translator
	for _, typ := range []backend.EventType{backend.EventFocus, backend.EventPaste, backend.EventInterrupt} {
		require.Empty(t, tr.translate(backend.Event{Type: typ}))
	}
}
