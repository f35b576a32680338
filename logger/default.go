package logger

import (
	"log"
	"os"
	"sync"
)

type loggerValue struct {
	sync.RWMutex
	logger Logger
}

func (l *loggerValue) get() Logger {
	l.RLock()
	defer l.RUnlock()
	return l.logger
}

func (l *loggerValue) set(logger Logger) {
	l.Lock()
	defer l.Unlock()
	l.logger = logger
}

var defaultLogger = loggerValue{
	logger: NewSimpleLogger(
		log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile),
		LevelInfo,
	),
}

// Default returns the process-wide default Logger, used by queries that were
// not given a logger explicitly.
func Default() Logger {
	return defaultLogger.get()
}

// SetDefault makes l the default Logger. A nil l installs a [NoOpLogger].
func SetDefault(l Logger) {
	if l == nil {
		l = NoOpLogger{}
	}
	defaultLogger.set(l)
}
