// Package keymap provides the stroke and action tables that drive key
// binding resolution.
//
// # Maps
//
// An InputMap maps key strokes to action keys and an ActionMap maps action
// keys to actions. Both delegate misses to an optional parent, so a
// component's application map can sit in front of a UI-installed map:
//
//	app entries -> UI entries (from the Registry) -> nil
//
// ReplaceUIInputMap and ReplaceUIActionMap swap only the UI part of such a
// chain. The WhenInFocusedWindow scope requires a ComponentInputMap, which is
// bound to one component and reports changes so that the keyboard manager
// can re-register its strokes.
//
// # Keymaps
//
// A Keymap lists the bindings one source contributes to one widget class.
// The Registry merges the built-in keymaps (default.go) with user keymap
// files read by the Loader:
//
//	[[keymaps]]
//	name = "List"
//	priority = 10
//
//	[[keymaps.bindings]]
//	keys = "Ctrl+N"
//	action = "selectNextRow"
//
// Files may be TOML, YAML or JSON; the format follows the extension.
package keymap
