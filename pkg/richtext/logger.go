package richtext

// Logger is the narrow diagnostics sink the package needs. The service
// wires the application logger in; correctness never depends on log
// output, only observability.
type Logger interface {
	Warn(module, message string, details map[string]interface{})
	Error(module, message string, details map[string]interface{})
}

// nopLogger keeps the package usable without a wired logger.
type nopLogger struct{}

func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}

// NopLogger returns a logger that discards everything.
func NopLogger() Logger {
	return nopLogger{}
}
