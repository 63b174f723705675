//go:build windows

package ansi

import (
	"os"

	"golang.org/x/sys/windows"
)

// EnableANSI enables ANSI escape sequence processing on the console behind f.
func EnableANSI(f *os.File) {
	handle := windows.Handle(f.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return
	}

	const enableVirtualTerminalProcessing = 0x0004

	_ = windows.SetConsoleMode(handle, mode|enableVirtualTerminalProcessing)
}
