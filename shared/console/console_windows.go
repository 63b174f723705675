//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

// IsBlueBackground returns true if the console behind f has a blue background.
func IsBlueBackground(f *os.File) bool {
	handle := windows.Handle(f.Fd())

	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(handle, &info); err != nil {
		return false
	}

	const backgroundBlue = 0x0010

	return info.Attributes&backgroundBlue != 0
}
