package logger

import "sync"

var (
	defaultMu     sync.Mutex
	defaultLogger *Logger
)

// Default returns the process-wide logger, constructing it with opts on the
// first call. Once it exists, calls without options return it and calls with
// options fail with ErrAlreadyInitialized; it cannot be reconfigured.
func Default(opts ...Option) (*Logger, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLogger != nil {
		if len(opts) > 0 {
			return nil, ErrAlreadyInitialized
		}
		return defaultLogger, nil
	}

	l, err := New(opts...)
	if err != nil {
		return nil, err
	}
	defaultLogger = l
	return l, nil
}
