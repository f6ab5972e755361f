// Package logger provides structured logging for restkit services built on
// rs/zerolog. It exposes a global logger initialized from config, named
// component loggers, and an io.Writer adapter used to capture log output of
// libraries that only write to a plain writer (see server.RedirectFrameworkLogs).
package logger
