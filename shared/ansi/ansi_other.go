//go:build !windows

// Package ansi prepares a console for ANSI escape sequences.
package ansi

import "os"

// EnableANSI is a no-op on non-Windows; ANSI escape sequences are supported by default.
func EnableANSI(_ *os.File) {
}
