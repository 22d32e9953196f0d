package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// charAliases names characters that cannot appear literally in a spec.
var charAliases = map[string]rune{
	"space": ' ',
	"plus":  '+',
	"minus": '-',
	"lt":    '<',
	"gt":    '>',
}

// Parse parses a key specification string into a Stroke.
//
// Supported formats:
//   - Bare character: "a", "A", "@" (typed)
//   - Key names: "Enter", "Escape", "Tab", "Space", "F5" (pressed)
//   - With modifiers: "Ctrl+S", "Alt+F", "Ctrl+Shift+Tab" (pressed)
//   - Word modifiers: "shift Tab", "ctrl alt Delete"
//   - Vim-style: "<C-s>", "<A-f>", "<S-Tab>", "<CR>", "<Esc>"
//   - Explicit kind: "typed a", "pressed A", "released Enter"
func Parse(spec string) (Stroke, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Stroke{}, ErrEmptySpec
	}

	fields := strings.Fields(spec)
	body := fields[len(fields)-1]

	var (
		mods     Modifier
		kind     string
		explicit bool
	)
	for _, f := range fields[:len(fields)-1] {
		lower := strings.ToLower(f)
		switch lower {
		case "typed", "pressed", "released":
			if explicit {
				return Stroke{}, fmt.Errorf("%w: %q: more than one kind", ErrInvalidSpec, spec)
			}
			kind, explicit = lower, true
			continue
		}
		mod := ModifierFromName(lower)
		if mod == ModNone {
			return Stroke{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, f)
		}
		mods = mods.With(mod)
	}

	keyPart, bodyMods, err := splitBody(body)
	if err != nil {
		return Stroke{}, fmt.Errorf("%w: %q", err, spec)
	}
	mods = mods.With(bodyMods)

	return resolve(keyPart, mods, kind)
}

// splitBody separates modifiers from the key part of "<C-s>" and "Ctrl+S"
// forms. Other bodies are returned unchanged.
func splitBody(body string) (string, Modifier, error) {
	if len(body) > 2 && strings.HasPrefix(body, "<") && strings.HasSuffix(body, ">") {
		return splitVim(body[1 : len(body)-1])
	}
	if len(body) > 1 && strings.Contains(body, "+") {
		parts := strings.Split(body, "+")
		var mods Modifier
		for _, p := range parts[:len(parts)-1] {
			mod := ModifierFromName(p)
			if mod == ModNone {
				return "", ModNone, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
			}
			mods = mods.With(mod)
		}
		return parts[len(parts)-1], mods, nil
	}
	return body, ModNone, nil
}

func splitVim(inner string) (string, Modifier, error) {
	parts := strings.Split(inner, "-")
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(p) {
		case "c":
			mods = mods.With(ModCtrl)
		case "a":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		case "m", "d":
			mods = mods.With(ModMeta)
		default:
			return "", ModNone, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}
	return parts[len(parts)-1], mods, nil
}

// resolve builds the stroke for a key part. Without an explicit kind a
// lone unmodified character is typed and everything else is pressed.
func resolve(keyPart string, mods Modifier, kind string) (Stroke, error) {
	if keyPart == "" {
		return Stroke{}, ErrInvalidSpec
	}
	lower := strings.ToLower(keyPart)

	r, isChar := charAliases[lower]
	if !isChar {
		runes := []rune(keyPart)
		if len(runes) == 1 {
			r, isChar = runes[0], true
		}
	}

	if kind == "typed" || (kind == "" && isChar && mods == ModNone && CodeFromName(lower) == CodeNone) {
		if !isChar {
			return Stroke{}, fmt.Errorf("%w: typed stroke needs a character, got %q", ErrInvalidSpec, keyPart)
		}
		return TypedWith(r, mods), nil
	}

	code := CodeFromName(lower)
	if code == CodeNone && isChar {
		code = CodeForRune(r)
	}
	if code == CodeNone {
		return Stroke{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}
	return New(code, mods, kind == "released"), nil
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Stroke {
	s, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return s
}

// NormalizeSpec parses and re-formats a key specification to its canonical form.
func NormalizeSpec(spec string) (string, error) {
	s, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return s.String(), nil
}
