// Package logging configures the process-wide zap logger.
package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance. It is a no-op until Setup runs.
var Logger = zap.NewNop()

// Setup builds the global logger. Production configuration writes JSON to
// stderr at info level; debug switches to the human-readable development
// encoder at debug level. On failure Logger falls back to zap's example logger
// and the build error is returned.
func Setup(debug bool, appName, appVersion string) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	l, err := cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	Logger = l
	zap.ReplaceGlobals(Logger)
	return nil
}
