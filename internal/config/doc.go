// Package config loads termkit settings from layered sources.
//
// Layers, lowest priority first:
//
//	builtin defaults
//	the TOML config file (with @include)
//	TERMKIT_* environment variables
//	command-line flags
//
// Settings:
//
//	log.level            debug, info, warn or error
//	log.file             log destination; empty discards logs
//	ui.mouse             enable mouse reporting
//	ui.progressInterval  indeterminate progress bar tick
//	keymaps.files        keymap files (TOML, YAML or JSON) loaded after the defaults
//	keymaps.watch        reload keymap files when they change
//	scripts.actions      table of action name to Lua source
package config
