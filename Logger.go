package Go_ADT

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger used by all containers. Capacity changes are logged at debug level, swallowed shrink failures at warn level.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger replaces the logger returned by Logger. A nil l restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}
