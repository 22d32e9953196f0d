// Package component provides the retained component tree.
//
// The tree is an arena: every component is a node addressed by a
// core.Handle. A node's children slice is the owning edge; the parent link
// is a plain handle used for ancestor walks. Removed handles are never
// reused, so a stale handle simply stops resolving.
//
// # Widgets
//
// Each node carries an opaque widget value. Behavior is discovered through
// small capability interfaces instead of a class hierarchy:
//
//   - Focusable    accepts focus by default
//   - Clickable    can be activated programmatically (buttons, menu items)
//   - HasMnemonic  exposes a mnemonic character
//   - Paintable    draws itself onto a Surface
//   - KeyHandler   handles keys no binding consumed
//   - MouseHandler handles mouse events
//   - FocusHandler reacts to focus transitions
//   - CursorPlacer positions the terminal cursor while focused
//   - Container    lays out its children
//
// # Key bindings
//
// Every node owns three lazily created input maps, one per core.Scope, and
// one action map. The WhenInFocusedWindow map must be a
// keymap.ComponentInputMap bound to the node. While a node is attached
// (its window is displayable) the strokes of that map are registered with
// the tree's Registrar, normally a keyboard.Manager.
package component
