// Package key defines key codes, modifier masks and key strokes.
//
// A Stroke has two constructor forms. The character form (Typed) matches
// KEY_TYPED events and carries the character produced. The code form
// (Pressed, Released, New) matches KEY_PRESSED and KEY_RELEASED events and
// carries a key code, a modifier mask and a release flag. The forms never
// compare equal to each other.
//
// # Key Specifications
//
// Bindings in keymap files and defaults are written as strings:
//
//   - "a", "typed a"        character form
//   - "Enter", "Ctrl+S"     code form, pressed
//   - "shift Tab", "<S-Tab>" code form with modifiers
//   - "released Enter"      code form, released
package key
