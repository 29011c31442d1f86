package xcbew

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/go-kit/log"
)

var errFakeNotFound = errors.New("cannot open shared object file: No such file or directory")

// fakeLoader emulates dlopen over an in-memory set of libraries.
type fakeLoader struct {
	mu       sync.Mutex
	libs     map[string]fakeLibrary
	handles  map[uintptr]string
	attempts []string
	closed   []uintptr
	next     uintptr
}

type fakeLibrary struct {
	missing map[string]bool
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		libs:    make(map[string]fakeLibrary),
		handles: make(map[uintptr]string),
		next:    1,
	}
}

// install registers a library under name that exports every symbol except missing.
func (f *fakeLoader) install(name string, missing ...string) *fakeLoader {
	lib := fakeLibrary{missing: make(map[string]bool)}
	for _, m := range missing {
		lib.missing[m] = true
	}
	f.libs[name] = lib
	return f
}

func (f *fakeLoader) Open(name string) (uintptr, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.attempts = append(f.attempts, name)
	if _, ok := f.libs[name]; !ok {
		return 0, fmt.Errorf("%s: %w", name, errFakeNotFound)
	}
	handle := f.next << 16
	f.next++
	f.handles[handle] = name
	return handle, nil
}

func (f *fakeLoader) Lookup(handle uintptr, name string) (uintptr, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	libName, ok := f.handles[handle]
	if !ok {
		return 0, fmt.Errorf("invalid handle %#x", handle)
	}
	if f.libs[libName].missing[name] {
		return 0, fmt.Errorf("undefined symbol: %s", name)
	}
	if name == "free" {
		return handle + 0xff8, nil
	}
	for i, sym := range xcbSymbols {
		if sym.name == name {
			return handle + uintptr(i+1)*8, nil
		}
	}
	return 0, fmt.Errorf("undefined symbol: %s", name)
}

func (f *fakeLoader) Close(handle uintptr) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.handles[handle]; !ok {
		return fmt.Errorf("invalid handle %#x", handle)
	}
	delete(f.handles, handle)
	f.closed = append(f.closed, handle)
	return nil
}

func (f *fakeLoader) openAttempts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.attempts...)
}

func (f *fakeLoader) openCount() int {
	return len(f.openAttempts())
}

func (f *fakeLoader) closedHandles() []uintptr {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]uintptr(nil), f.closed...)
}

// stubRegisterFunc replaces purego registration for the duration of the test
// and records every bound address.
func stubRegisterFunc(t *testing.T) *[]uintptr {
	t.Helper()

	var (
		mu    sync.Mutex
		addrs []uintptr
	)
	prev := registerFunc
	registerFunc = func(_ any, addr uintptr) {
		mu.Lock()
		addrs = append(addrs, addr)
		mu.Unlock()
	}
	t.Cleanup(func() { registerFunc = prev })
	return &addrs
}

// resetState clears process-wide state for testing.
func resetState(t *testing.T) {
	t.Helper()

	reset := func() {
		mu.Lock()
		defer mu.Unlock()
		current.Store(nil)
		libPath = ""
		lastErr = nil
	}
	reset()
	SetLogger(log.NewNopLogger())
	t.Cleanup(reset)
}

// clearEnv unsets the loader's environment variables for the test.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envLibPath, "")
	t.Setenv(envLibraryDirs, "")
	t.Setenv(envDisableSystemSearch, "")
}
