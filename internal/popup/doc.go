// Package popup maintains the stack of popups and modal dialogs shown over
// a base window.
//
// The topmost entry is the active window and the only one receiving key
// and mouse input. Each entry remembers the component that was focused
// when it was pushed; popping the entry restores that focus and
// re-activates the window beneath.
//
// Non-modal popups (menus, drop-down lists) close on ESCAPE, BACKSPACE or
// a click outside them. Modal dialogs never close on outside clicks; on
// ESCAPE they receive a WINDOW_CLOSING event and honour their
// CloseOperation.
package popup
