package xcbew

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

var (
	mu      sync.Mutex
	current atomic.Pointer[Library]
	libPath string
	lastErr error
)

// Init locates libxcb, resolves every required symbol and publishes the result
// process-wide. Once it has returned StatusSuccess further calls are no-ops.
// After StatusNotFound a later call repeats the search.
func Init() Status {
	if err := InitWithOptions(); err != nil {
		return StatusNotFound
	}
	return StatusSuccess
}

// InitWithOptions is Init with options and a descriptive error. Concurrent
// callers are serialized; all of them observe the same committed library.
func InitWithOptions(opts ...Option) error {
	if current.Load() != nil && len(opts) == 0 {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	if libPath != "" {
		opts = append([]Option{WithLibraryPath(libPath)}, opts...)
	}
	cfg, err := resolveConfig(opts...)

	if lib := current.Load(); lib != nil {
		if err != nil {
			return err
		}
		if cfg.libraryPath != "" && cfg.libraryPath != lib.path {
			return fmt.Errorf("cannot change library path after initialization: loaded %q", lib.path)
		}
		return nil
	}

	if err != nil {
		lastErr = err
		return err
	}

	lib, err := load(cfg)
	if err != nil {
		lastErr = err
		return err
	}

	current.Store(lib)
	lastErr = nil
	return nil
}

// IsInitialized reports whether Init has succeeded.
func IsInitialized() bool {
	return current.Load() != nil
}

// Current returns the process-wide library, or nil before a successful Init.
func Current() *Library {
	return current.Load()
}

// Api returns the process-wide symbol table, or nil before a successful Init.
func Api() *XcbApi {
	if lib := current.Load(); lib != nil {
		return lib.api
	}
	return nil
}

// LibraryPath returns the path libxcb was loaded from, or "" before Init.
func LibraryPath() string {
	if lib := current.Load(); lib != nil {
		return lib.path
	}
	return ""
}

// LastError returns the error of the most recent failed Init, or nil.
func LastError() error {
	mu.Lock()
	defer mu.Unlock()
	return lastErr
}

// SetSharedLibraryPath restricts Init to a single library path. Surrounding
// whitespace is ignored and an empty path lifts the restriction.
func SetSharedLibraryPath(path string) error {
	path = strings.TrimSpace(path)

	mu.Lock()
	defer mu.Unlock()

	if lib := current.Load(); lib != nil {
		if lib.path == path {
			return nil
		}
		return fmt.Errorf("cannot change library path after initialization")
	}

	libPath = path
	return nil
}
