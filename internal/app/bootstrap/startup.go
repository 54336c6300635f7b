// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/projecthub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeoutConfig(appCfg))
	c := timeouts.Current()
	logger.Info("store timeouts configured",
		zap.Duration("ping", c.Ping),
		zap.Duration("short", c.Short),
		zap.Duration("medium", c.Medium),
		zap.Duration("long", c.Long))
	return nil
}

func timeoutConfig(appCfg AppConfig) timeouts.Config {
	return timeouts.Config{
		Ping:   appCfg.TimeoutPing,
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
		Long:   appCfg.TimeoutLong,
	}
}
