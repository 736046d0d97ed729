package core

// Fields carries extra diagnostic data along with a log entry.
type Fields map[string]interface{}

// Logger is any service that can record diagnostics.
// expected args: error, Fields
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
