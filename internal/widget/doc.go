// Package widget provides the concrete widgets of the toolkit.
//
// Widgets are built by composition. Each one owns a node in the host's
// component.Tree and implements only the capability interfaces it needs
// (component.Focusable, component.Clickable, component.HasMnemonic,
// component.Paintable and friends). There is no widget class hierarchy;
// shared plumbing lives in Base, which every widget embeds.
//
// # Bindings
//
// A widget's keyboard behavior is split in two:
//
//   - its UI action map, built by the constructor, maps action keys such
//     as keymap.ActPress to closures over the widget
//   - its UI input maps come from the host's keymap.Registry for the
//     widget's class and map strokes to those action keys
//
// InstallUI (re)installs both. Application entries put into the widget's
// own maps are never replaced.
//
// # Menus
//
// A MenuBar holds Menus. Each Menu owns a PopupMenu, a top-level window
// pushed on the host's popup.Stack when the menu opens. A Menu added to a
// PopupMenu is a submenu. When the popup of a menu bar menu closes with
// Left or Right, the bar re-injects that key and then Enter as one deferred
// task, which moves the open menu to its neighbour.
package widget
