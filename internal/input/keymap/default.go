package keymap

// Widget class names.
const (
	ClassWindow    = "Window"
	ClassDialog    = "Dialog"
	ClassButton    = "Button"
	ClassCheckBox  = "CheckBox"
	ClassTextField = "TextField"
	ClassList      = "List"
	ClassComboBox  = "ComboBox"
	ClassMenuBar   = "MenuBar"
	ClassPopupMenu = "PopupMenu"
)

// Action keys installed by the widgets' UI action maps.
const (
	ActPress = "press"

	ActCaretBackward  = "caretBackward"
	ActCaretForward   = "caretForward"
	ActCaretBegin     = "caretBegin"
	ActCaretEnd       = "caretEnd"
	ActDeletePrevious = "deletePrevious"
	ActDeleteNext     = "deleteNext"
	ActNotifyField    = "notifyFieldAccept"

	ActSelectPreviousRow       = "selectPreviousRow"
	ActSelectNextRow           = "selectNextRow"
	ActSelectPreviousRowExtend = "selectPreviousRowExtendSelection"
	ActSelectNextRowExtend     = "selectNextRowExtendSelection"
	ActSelectFirstRow          = "selectFirstRow"
	ActSelectLastRow           = "selectLastRow"
	ActToggleSelection         = "toggleAndAnchor"
	ActSelectAll               = "selectAll"
	ActActivateRow             = "activateRow"

	ActTogglePopup = "togglePopup"

	ActSelectPrevious = "selectPrevious"
	ActSelectNext     = "selectNext"
	ActOpenMenu       = "openMenu"
	ActTakeFocus      = "takeFocus"
	ActSelectItem     = "selectItem"
	ActSelectChild    = "selectChild"
	ActSelectParent   = "selectParent"

	ActPressDefault = "pressDefault"
	ActQuit         = "quit"
)

// DefaultSource tags the built-in keymaps.
const DefaultSource = "default"

// LoadDefaults registers the built-in keymap of every widget class.
func LoadDefaults(r *Registry) error {
	keymaps := []*Keymap{
		DefaultWindowKeymap(),
		DefaultDialogKeymap(),
		DefaultButtonKeymap(ClassButton),
		DefaultButtonKeymap(ClassCheckBox),
		DefaultTextFieldKeymap(),
		DefaultListKeymap(),
		DefaultComboBoxKeymap(),
		DefaultMenuBarKeymap(),
		DefaultPopupMenuKeymap(),
	}

	for _, km := range keymaps {
		if err := r.Register(km); err != nil {
			return err
		}
	}

	return nil
}

// DefaultWindowKeymap returns the bindings of top-level windows.
func DefaultWindowKeymap() *Keymap {
	return &Keymap{
		Name:   ClassWindow,
		Source: DefaultSource,
		Bindings: []Binding{
			{Keys: "Ctrl+Q", Action: ActQuit, Scope: "window", Description: "Quit", Category: "Application"},
		},
	}
}

// DefaultDialogKeymap returns the bindings of modal dialogs.
func DefaultDialogKeymap() *Keymap {
	return &Keymap{
		Name:   ClassDialog,
		Source: DefaultSource,
		Bindings: []Binding{
			{Keys: "Enter", Action: ActPressDefault, Scope: "window", Description: "Press the default button", Category: "Dialog"},
		},
	}
}

// DefaultButtonKeymap returns the bindings shared by push buttons and check boxes.
func DefaultButtonKeymap(class string) *Keymap {
	return &Keymap{
		Name:   class,
		Source: DefaultSource,
		Bindings: []Binding{
			{Keys: "Space", Action: ActPress, Description: "Press", Category: "Button"},
			{Keys: "Enter", Action: ActPress, Description: "Press", Category: "Button"},
		},
	}
}

// DefaultTextFieldKeymap returns single-line text editing bindings.
func DefaultTextFieldKeymap() *Keymap {
	return &Keymap{
		Name:   ClassTextField,
		Source: DefaultSource,
		Bindings: []Binding{
			{Keys: "Left", Action: ActCaretBackward, Description: "Move left", Category: "Movement"},
			{Keys: "Right", Action: ActCaretForward, Description: "Move right", Category: "Movement"},
			{Keys: "Home", Action: ActCaretBegin, Description: "Move to start", Category: "Movement"},
			{Keys: "End", Action: ActCaretEnd, Description: "Move to end", Category: "Movement"},
			{Keys: "Ctrl+A", Action: ActCaretBegin, Description: "Move to start", Category: "Movement"},
			{Keys: "Ctrl+E", Action: ActCaretEnd, Description: "Move to end", Category: "Movement"},
			{Keys: "Backspace", Action: ActDeletePrevious, Description: "Delete previous character", Category: "Editing"},
			{Keys: "Delete", Action: ActDeleteNext, Description: "Delete next character", Category: "Editing"},
			{Keys: "Enter", Action: ActNotifyField, Description: "Accept", Category: "Editing"},
		},
	}
}

// DefaultListKeymap returns list navigation and selection bindings.
func DefaultListKeymap() *Keymap {
	return &Keymap{
		Name:   ClassList,
		Source: DefaultSource,
		Bindings: []Binding{
			{Keys: "Up", Action: ActSelectPreviousRow, Description: "Previous row", Category: "Selection"},
			{Keys: "Down", Action: ActSelectNextRow, Description: "Next row", Category: "Selection"},
			{Keys: "Shift+Up", Action: ActSelectPreviousRowExtend, Description: "Extend up", Category: "Selection"},
			{Keys: "Shift+Down", Action: ActSelectNextRowExtend, Description: "Extend down", Category: "Selection"},
			{Keys: "Home", Action: ActSelectFirstRow, Description: "First row", Category: "Selection"},
			{Keys: "End", Action: ActSelectLastRow, Description: "Last row", Category: "Selection"},
			{Keys: "Space", Action: ActToggleSelection, Description: "Toggle row", Category: "Selection"},
			{Keys: "Ctrl+A", Action: ActSelectAll, Description: "Select all", Category: "Selection"},
			{Keys: "Enter", Action: ActActivateRow, Description: "Activate row", Category: "Selection"},
		},
	}
}

// DefaultComboBoxKeymap returns drop-down bindings.
func DefaultComboBoxKeymap() *Keymap {
	return &Keymap{
		Name:   ClassComboBox,
		Source: DefaultSource,
		Bindings: []Binding{
			{Keys: "Down", Action: ActTogglePopup, Description: "Open list", Category: "ComboBox"},
			{Keys: "Alt+Down", Action: ActTogglePopup, Description: "Open list", Category: "ComboBox"},
			{Keys: "Enter", Action: ActTogglePopup, Description: "Open list", Category: "ComboBox"},
		},
	}
}

// DefaultMenuBarKeymap returns menu bar bindings.
func DefaultMenuBarKeymap() *Keymap {
	return &Keymap{
		Name:   ClassMenuBar,
		Source: DefaultSource,
		Bindings: []Binding{
			{Keys: "Left", Action: ActSelectPrevious, Description: "Previous menu", Category: "Menu"},
			{Keys: "Right", Action: ActSelectNext, Description: "Next menu", Category: "Menu"},
			{Keys: "Enter", Action: ActOpenMenu, Description: "Open menu", Category: "Menu"},
			{Keys: "Down", Action: ActOpenMenu, Description: "Open menu", Category: "Menu"},
			{Keys: "F10", Action: ActTakeFocus, Scope: "window", Description: "Focus the menu bar", Category: "Menu"},
		},
	}
}

// DefaultPopupMenuKeymap returns bindings for open menus. Escape and
// Backspace are left to the popup stack.
func DefaultPopupMenuKeymap() *Keymap {
	return &Keymap{
		Name:   ClassPopupMenu,
		Source: DefaultSource,
		Bindings: []Binding{
			{Keys: "Up", Action: ActSelectPrevious, Description: "Previous item", Category: "Menu"},
			{Keys: "Down", Action: ActSelectNext, Description: "Next item", Category: "Menu"},
			{Keys: "Enter", Action: ActSelectItem, Description: "Choose item", Category: "Menu"},
			{Keys: "Space", Action: ActSelectItem, Description: "Choose item", Category: "Menu"},
			{Keys: "Right", Action: ActSelectChild, Description: "Open submenu or next menu", Category: "Menu"},
			{Keys: "Left", Action: ActSelectParent, Description: "Close submenu or previous menu", Category: "Menu"},
		},
	}
}
