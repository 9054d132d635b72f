package app

import (
	"context"

	"github.com/oshokin/easycodec/internal/config"
	"github.com/oshokin/easycodec/internal/logger"
)

// ExecuteConfigInitCommand writes a configuration file with default values.
func ExecuteConfigInitCommand(ctx context.Context, configFilename string, overwrite bool) {
	if configFilename == "" {
		configFilename = config.DefaultConfigFilename
	}

	if err := config.SaveConfig(config.Default(), configFilename, overwrite); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
	}

	logger.Infof(ctx, "Configuration written to '%s'", configFilename)
}
