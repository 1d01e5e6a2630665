package logger

// ResetDefault drops the shared logger so tests can construct it again.
func ResetDefault() {
	defaultMu.Lock()
	defaultLogger = nil
	defaultMu.Unlock()
}
