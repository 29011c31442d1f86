//go:build !windows

package xcbew

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// systemLoader resolves libraries through dlopen/dlsym.
type systemLoader struct{}

func (systemLoader) Open(name string) (uintptr, error) {
	handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	if handle == 0 {
		return 0, fmt.Errorf("dlopen returned a nil handle for %q", name)
	}
	return handle, nil
}

func (systemLoader) Lookup(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func (systemLoader) Close(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return purego.Dlclose(handle)
}
