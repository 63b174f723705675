//go:build !windows

// Package console inspects the terminal the diagnostics are written to.
package console

import (
	"os"
	"strings"
)

// IsBlueBackground returns true if the terminal background color is blue,
// as advertised by COLORFGBG. f is unused outside Windows.
func IsBlueBackground(_ *os.File) bool {
	raw := os.Getenv("COLORFGBG")
	if raw == "" {
		return false
	}

	parts := strings.Split(raw, ";")
	bg := strings.TrimSpace(parts[len(parts)-1])

	// ANSI 16-color backgrounds: 4 (blue) and 12 (bright blue).
	return bg == "4" || bg == "12"
}
