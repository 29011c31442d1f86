//go:build windows

package xcbew

import "golang.org/x/sys/windows"

// cString returns s as a NUL-terminated C string. It fails if s contains a NUL byte.
func cString(s string) (*byte, error) {
	return windows.BytePtrFromString(s)
}

// goString copies a NUL-terminated C string into Go memory.
func goString(p *byte) string {
	return windows.BytePtrToString(p)
}
