package config

// NewLogger is exported for testing
var NewLogger = newLogger

// NewHazardForTest creates a Hazard config for testing purposes
func NewHazardForTest(path string) *Hazard {
	return &Hazard{path: path}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewSentryForTest creates a Sentry config for testing purposes
func NewSentryForTest(dsn, env string) *Sentry {
	return &Sentry{dsn: dsn, env: env}
}
