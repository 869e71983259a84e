// Package platform reports the operating system pbxgen runs on. Generation
// works anywhere, but the produced project only opens in Xcode, so non-macOS
// runs get a warning.
package platform

import "runtime"

// OS represents an operating system pbxgen knows about.
type OS string

const (
	MacOS OS = "darwin"
	Linux OS = "linux"
	Other OS = "other"
)

// Detect returns the current operating system.
func Detect() OS {
	switch runtime.GOOS {
	case string(MacOS):
		return MacOS
	case string(Linux):
		return Linux
	}
	return Other
}

// IsMacOS returns true if running on macOS, the only place the generated
// project can actually be opened.
func IsMacOS() bool {
	return Detect() == MacOS
}
