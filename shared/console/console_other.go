//go:build !windows

package console

import (
	"os"
	"strings"
)

// IsLightBackground returns true if the terminal background color is light.
func IsLightBackground() bool {
	raw := os.Getenv("COLORFGBG")

	if raw == "" {
		return false
	}

	parts := strings.Split(raw, ";")

	if len(parts) == 0 {
		return false
	}

	bg := strings.TrimSpace(parts[len(parts)-1])

	if bg == "" {
		return false
	}

	// ANSI 16-color backgrounds: 7 (white) and 15 (bright white).
	return bg == "7" || bg == "15"
}
