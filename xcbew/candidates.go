package xcbew

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-kit/log/level"
)

// platformLibrary lists the names libxcb is installed under on one platform.
// names are tried in order; globs only apply inside search directories.
type platformLibrary struct {
	names []string
	globs []string
}

var platformLibraries = map[string]platformLibrary{
	"linux":     unixLibrary,
	"freebsd":   unixLibrary,
	"netbsd":    unixLibrary,
	"openbsd":   unixLibrary,
	"dragonfly": unixLibrary,
	"darwin": {
		names: []string{
			"libxcb.dylib",
			"libxcb.1.dylib",
			"/opt/X11/lib/libxcb.1.dylib",
			"/opt/homebrew/lib/libxcb.1.dylib",
			"/usr/local/lib/libxcb.1.dylib",
		},
		globs: []string{"libxcb.*dylib"},
	},
	"windows": {
		names: []string{"libxcb.dll", "libxcb-1.dll", "cygxcb-1.dll"},
		globs: []string{"libxcb-[0-9]*.dll"},
	},
}

var unixLibrary = platformLibrary{
	names: []string{"libxcb.so", "libxcb.so.1"},
	globs: []string{"libxcb.so.*"},
}

func platformLibraryNames(goos string) []string {
	lib, ok := platformLibraries[goos]
	if !ok {
		lib = unixLibrary
	}
	return append([]string(nil), lib.names...)
}

// Candidates returns the ordered list of library names Load would try.
func Candidates(opts ...Option) ([]string, error) {
	cfg, err := resolveConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.candidateList(), nil
}

func (cfg config) candidateList() []string {
	if cfg.libraryPath != "" {
		return []string{cfg.libraryPath}
	}

	lib, ok := platformLibraries[cfg.goos]
	if !ok {
		lib = unixLibrary
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	for _, dir := range cfg.searchDirs {
		for _, path := range searchDir(cfg, dir, lib) {
			add(path)
		}
	}

	if cfg.systemSearch {
		for _, name := range cfg.candidates {
			add(name)
		}
	}

	return out
}

// searchDir returns the library files in dir, exact names first and then
// glob matches in lexical order.
func searchDir(cfg config, dir string, lib platformLibrary) []string {
	var paths []string
	for _, name := range cfg.candidates {
		if filepath.IsAbs(name) || strings.ContainsAny(name, `/\`) {
			continue
		}
		path := filepath.Join(dir, name)
		if resolved, err := statLibraryCandidate(path); err == nil {
			paths = append(paths, resolved)
		} else if !errors.Is(err, os.ErrNotExist) {
			level.Debug(cfg.logger).Log("msg", "skipping library candidate", "path", path, "err", err)
		}
	}

	for _, pattern := range lib.globs {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			level.Debug(cfg.logger).Log("msg", "invalid library glob", "pattern", pattern, "err", err)
			continue
		}
		sort.Strings(matches)
		for _, match := range matches {
			resolved, err := statLibraryCandidate(match)
			if err != nil {
				level.Debug(cfg.logger).Log("msg", "skipping library candidate", "path", match, "err", err)
				continue
			}
			paths = append(paths, resolved)
		}
	}

	return paths
}

// statLibraryCandidate accepts a regular, non-empty file or a symlink that
// ends at one, and returns its absolute path. The link itself is kept so the
// OS loader sees the versioned name the package manager installed.
func statLibraryCandidate(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("libxcb candidate %q: %w", path, err)
	}

	info, err := os.Lstat(absPath)
	if err != nil {
		return "", err
	}
	if info.Mode()&os.ModeSymlink != 0 {
		if info, err = os.Stat(absPath); err != nil {
			return "", fmt.Errorf("libxcb candidate %s is a dangling symlink: %w", absPath, err)
		}
	}

	switch {
	case info.IsDir():
		return "", fmt.Errorf("libxcb candidate %s is a directory", absPath)
	case !info.Mode().IsRegular():
		return "", fmt.Errorf("libxcb candidate %s is not a regular file (%s)", absPath, info.Mode().Type())
	case info.Size() == 0:
		return "", fmt.Errorf("libxcb candidate %s is empty", absPath)
	}
	return absPath, nil
}
