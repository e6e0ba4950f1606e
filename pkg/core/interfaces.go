package core

// Logger interface for render logging
type Logger interface {
	Printf(format string, args ...interface{})
}
