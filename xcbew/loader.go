package xcbew

import (
	"errors"
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/hashicorp/go-multierror"
)

// Library is an opened libxcb with its complete symbol table. The handle is
// never closed: the addresses in Api stay valid for the life of the process.
type Library struct {
	path   string
	handle uintptr
	api    *XcbApi
	fn     functions
}

// Path returns the candidate name the library was opened from.
func (l *Library) Path() string {
	return l.path
}

// Handle returns the OS library handle.
func (l *Library) Handle() uintptr {
	return l.handle
}

// Api returns the resolved symbol table.
func (l *Library) Api() *XcbApi {
	return l.api
}

// Symbol returns the address of a required export by its C name.
func (l *Library) Symbol(name string) (uintptr, bool) {
	return lookupSymbol(l.api, name)
}

// Symbols returns the names in the symbol table, in resolution order.
func (l *Library) Symbols() []string {
	return SymbolNames()
}

// Load searches for libxcb and resolves the full symbol table. It does not
// touch process-wide state; see Init for that.
//
// The returned error matches ErrLibraryNotFound when no candidate opened and
// ErrSymbolMissing (as a *MissingSymbolsError) when the opened library is
// incomplete. In the latter case the handle has already been closed.
func Load(opts ...Option) (*Library, error) {
	cfg, err := resolveConfig(opts...)
	if err != nil {
		return nil, err
	}
	return load(cfg)
}

func load(cfg config) (*Library, error) {
	path, handle, err := openFirst(cfg, cfg.candidateList())
	if err != nil {
		return nil, err
	}

	api, missing := resolveSymbols(cfg, handle)
	if len(missing) > 0 {
		level.Warn(cfg.logger).Log("msg", "library is missing required symbols", "path", path, "symbols", len(missing))
		missingErr := &MissingSymbolsError{Path: path, Symbols: missing}
		if closeErr := cfg.loader.Close(handle); closeErr != nil {
			return nil, errors.Join(missingErr, fmt.Errorf("failed to close %q: %w", path, closeErr))
		}
		return nil, missingErr
	}

	lib := &Library{
		path:   path,
		handle: handle,
		api:    api,
	}
	lib.fn.bind(api)
	if addr, err := cfg.loader.Lookup(handle, "free"); err == nil && addr != 0 {
		lib.fn.bindFree(addr)
	} else {
		level.Debug(cfg.logger).Log("msg", "C allocator free not resolved, ParseDisplay disabled", "path", path, "err", err)
	}

	level.Info(cfg.logger).Log("msg", "libxcb loaded", "path", path, "symbols", len(xcbSymbols))
	return lib, nil
}

// openFirst tries each candidate in order and returns the first that opens.
func openFirst(cfg config, candidates []string) (string, uintptr, error) {
	if len(candidates) == 0 {
		return "", 0, fmt.Errorf("%w: no candidate library names", ErrLibraryNotFound)
	}

	var result *multierror.Error
	for _, candidate := range candidates {
		handle, err := cfg.loader.Open(candidate)
		if err == nil && handle != 0 {
			level.Debug(cfg.logger).Log("msg", "opened library candidate", "candidate", candidate)
			return candidate, handle, nil
		}
		if err == nil {
			err = fmt.Errorf("nil handle")
		}
		level.Debug(cfg.logger).Log("msg", "library candidate failed", "candidate", candidate, "err", err)
		result = multierror.Append(result, fmt.Errorf("%s: %w", candidate, err))
	}

	return "", 0, fmt.Errorf("%w: %w", ErrLibraryNotFound, result.ErrorOrNil())
}
