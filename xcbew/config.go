package xcbew

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/drone/envsubst"
	"github.com/go-kit/log"
)

const (
	envLibPath             = "XCBEW_LIB_PATH"
	envLibraryDirs         = "XCBEW_LIBRARY_DIRS"
	envDisableSystemSearch = "XCBEW_DISABLE_SYSTEM_SEARCH"
)

// Option configures Load and InitWithOptions.
type Option func(*config) error

// dynamicLoader is the OS facility used to open libraries and resolve symbols.
type dynamicLoader interface {
	Open(name string) (uintptr, error)
	Lookup(handle uintptr, name string) (uintptr, error)
	Close(handle uintptr) error
}

type config struct {
	libraryPath  string
	searchDirs   []string
	candidates   []string
	systemSearch bool
	logger       log.Logger
	loader       dynamicLoader
	goos         string
}

// WithLibraryPath forces a single library path. No other candidate is tried.
func WithLibraryPath(path string) Option {
	return func(cfg *config) error {
		path = strings.TrimSpace(path)
		if path == "" {
			return fmt.Errorf("library path cannot be empty")
		}
		cfg.libraryPath = path
		return nil
	}
}

// WithSearchDirs adds directories that are searched before the platform
// library names. ${VAR} references are expanded from the environment; a
// directory still holding a '$' afterwards, such as a bare $VAR, is rejected.
func WithSearchDirs(dirs ...string) Option {
	return func(cfg *config) error {
		for _, dir := range dirs {
			expanded, err := expandDir(dir)
			if err != nil {
				return err
			}
			if expanded == "" {
				return fmt.Errorf("search directory cannot be empty")
			}
			cfg.searchDirs = append(cfg.searchDirs, expanded)
		}
		return nil
	}
}

// WithCandidates replaces the platform library names, in priority order.
func WithCandidates(names ...string) Option {
	return func(cfg *config) error {
		if len(names) == 0 {
			return fmt.Errorf("candidate list cannot be empty")
		}
		candidates := make([]string, 0, len(names))
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				return fmt.Errorf("candidate name cannot be empty")
			}
			candidates = append(candidates, name)
		}
		cfg.candidates = candidates
		return nil
	}
}

// WithSystemSearch enables or disables trying the platform library names.
func WithSystemSearch(enabled bool) Option {
	return func(cfg *config) error {
		cfg.systemSearch = enabled
		return nil
	}
}

// WithLogger sets the logger for a single Load or InitWithOptions call.
func WithLogger(logger log.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

func withLoader(loader dynamicLoader) Option {
	return func(cfg *config) error {
		if loader == nil {
			return fmt.Errorf("loader cannot be nil")
		}
		cfg.loader = loader
		return nil
	}
}

func withGOOS(goos string) Option {
	return func(cfg *config) error {
		cfg.goos = goos
		return nil
	}
}

func resolveConfig(opts ...Option) (config, error) {
	disableSystem, err := envFlag(envDisableSystemSearch)
	if err != nil {
		return config{}, err
	}

	cfg := config{
		libraryPath:  strings.TrimSpace(os.Getenv(envLibPath)),
		systemSearch: !disableSystem,
		logger:       defaultLogger(),
		loader:       systemLoader{},
		goos:         runtime.GOOS,
	}

	if dirs := os.Getenv(envLibraryDirs); strings.TrimSpace(dirs) != "" {
		for _, dir := range filepath.SplitList(dirs) {
			expanded, err := expandDir(dir)
			if err != nil {
				return config{}, fmt.Errorf("invalid %s: %w", envLibraryDirs, err)
			}
			if expanded != "" {
				cfg.searchDirs = append(cfg.searchDirs, expanded)
			}
		}
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}

	if cfg.candidates == nil {
		cfg.candidates = platformLibraryNames(cfg.goos)
	}
	cfg.logger = log.With(cfg.logger, "component", "xcbew")

	return cfg, nil
}

func expandDir(dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", nil
	}
	expanded, err := envsubst.EvalEnv(dir)
	if err != nil {
		return "", fmt.Errorf("failed to expand search directory %q: %w", dir, err)
	}
	expanded = strings.TrimSpace(expanded)
	if strings.Contains(expanded, "$") {
		return "", fmt.Errorf("search directory %q has an unexpanded variable reference, use ${VAR}", dir)
	}
	if expanded == "" {
		return "", nil
	}
	return filepath.Clean(expanded), nil
}

var envFlagValues = map[string]bool{
	"1": true, "t": true, "true": true, "y": true, "yes": true, "on": true,
	"0": false, "f": false, "false": false, "n": false, "no": false, "off": false,
}

// envFlag reads a boolean switch such as XCBEW_DISABLE_SYSTEM_SEARCH. Unset
// or blank means false.
func envFlag(name string) (bool, error) {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	if value == "" {
		return false, nil
	}
	enabled, ok := envFlagValues[value]
	if !ok {
		return false, fmt.Errorf("%s=%q is not a switch value, use 1/0, true/false, yes/no or on/off", name, os.Getenv(name))
	}
	return enabled, nil
}
