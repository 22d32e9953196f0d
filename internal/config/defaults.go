package config

import "time"

// Default values for every known setting.
const (
	DefaultLogLevel         = "info"
	DefaultProgressInterval = 100 * time.Millisecond
)

func defaults() map[string]any {
	return map[string]any{
		"log": map[string]any{
			"level": DefaultLogLevel,
			"file":  "",
		},
		"ui": map[string]any{
			"mouse":            true,
			"progressInterval": DefaultProgressInterval.String(),
		},
		"keymaps": map[string]any{
			"files": []any{},
			"watch": false,
		},
		"scripts": map[string]any{
			"actions": map[string]any{},
		},
	}
}
