package xcbew

import (
	"sync"

	"github.com/go-kit/log"
)

var (
	loggerMu  sync.RWMutex
	pkgLogger log.Logger = log.NewNopLogger()
)

// SetLogger sets the logger used by Init and Load when no WithLogger option is
// given. A nil logger discards output.
func SetLogger(logger log.Logger) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	loggerMu.Lock()
	pkgLogger = logger
	loggerMu.Unlock()
}

func defaultLogger() log.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return pkgLogger
}
