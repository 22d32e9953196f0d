// Package script runs config-defined actions written in Lua.
//
// Each Engine owns one sandboxed gopher-lua state with only the base,
// table, string and math libraries. Scripts drive the UI through a global
// ui table:
//
//	ui.focus_next()      move focus forward, returns whether it moved
//	ui.focus_previous()  move focus backward
//	ui.close_popup()     close the topmost popup, returns whether one closed
//	ui.beep()            ring the terminal bell
//	ui.log(msg)          write msg to the application log
//
// While an action runs, the global event table holds the triggering
// action event's command and modifiers. Actions run on the UI goroutine
// like any other action; a script that runs past the engine timeout is
// cancelled.
package script
