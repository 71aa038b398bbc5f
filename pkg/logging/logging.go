package logging

import (
	"go.uber.org/zap"
)

// Setup builds the application logger and installs it as the zap global.
// Debug mode selects the human-readable development config; otherwise the
// JSON production config is used. The app name and version ride along as
// initial fields on every entry.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
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

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
