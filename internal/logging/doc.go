// Package logging provides structured logging for peppy-cfg.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent by default: a level must be given on the command line
// (--log-level) or through PEPPY_CFG_LOG_LEVEL.
//
// # Sinks
//
// The terminal interface draws over stdout, so log lines go elsewhere:
//   - --log-file set: a size-rotated file managed by lumberjack
//   - otherwise: stderr
//
// # Usage
//
//	if err := logging.Initialize(logging.Options{Level: "debug", File: "peppy-cfg.log"}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.LogSourceLoaded("labels", path, 120)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once Initialize has
// returned. Initialize itself should be called once, before any goroutines
// start logging.
package logging
