//go:build windows

package xcbew

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// systemLoader resolves libraries through LoadLibrary/GetProcAddress.
type systemLoader struct{}

func (systemLoader) Open(name string) (uintptr, error) {
	handle, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, err
	}
	if handle == 0 {
		return 0, fmt.Errorf("LoadLibrary returned a nil handle for %q", name)
	}
	return uintptr(handle), nil
}

func (systemLoader) Lookup(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func (systemLoader) Close(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return windows.FreeLibrary(windows.Handle(handle))
}
