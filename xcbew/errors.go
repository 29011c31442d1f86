package xcbew

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLibraryNotFound is returned when no candidate library could be opened.
	ErrLibraryNotFound = errors.New("libxcb shared library not found")
	// ErrSymbolMissing is matched by MissingSymbolsError.
	ErrSymbolMissing = errors.New("libxcb is missing a required symbol")
	// ErrNotInitialized is returned by the typed call-throughs before a successful Init.
	ErrNotInitialized = errors.New("libxcb is not initialized")
)

// MissingSymbolsError reports a library that opened but does not export the
// full symbol table, usually an older libxcb.
type MissingSymbolsError struct {
	Path    string
	Symbols []string
}

func (e *MissingSymbolsError) Error() string {
	return fmt.Sprintf("library %q is missing %d required symbol(s): %s",
		e.Path, len(e.Symbols), strings.Join(e.Symbols, ", "))
}

func (e *MissingSymbolsError) Is(target error) bool {
	return target == ErrSymbolMissing
}
