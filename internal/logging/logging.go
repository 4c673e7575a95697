// Package logging builds the zap logger shared by the server and its middleware.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/PortNumber53/health-service/internal/config"
)

// New returns a logger matching cfg. Test harnesses get a no-op logger.
func New(cfg config.Config) (*zap.Logger, error) {
	if cfg.Testing {
		return zap.NewNop(), nil
	}

	var (
		logger *zap.Logger
		err    error
	)
	switch cfg.LogMode {
	case config.LogModeDevelopment:
		logger, err = zap.NewDevelopment()
	case config.LogModeProduction, "":
		logger, err = zap.NewProduction()
	default:
		return nil, fmt.Errorf("unknown log mode %q", cfg.LogMode)
	}
	if err != nil {
		return nil, fmt.Errorf("build %s logger: %w", cfg.LogMode, err)
	}
	return logger, nil
}
