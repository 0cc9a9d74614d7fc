//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

// IsLightBackground returns true if the terminal background color is light.
func IsLightBackground() bool {
	handle := windows.Handle(os.Stdout.Fd())

	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(handle, &info); err != nil {
		return false
	}

	const backgroundWhite = 0x0070

	return info.Attributes&backgroundWhite == backgroundWhite
}
