// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after DB connections and schema/index setup are
// complete, but before the HTTP handler is built and requests are served.
//
// This app has no warm-up work: content documents are created lazily on
// first read and uploads are streamed straight to storage.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("proximacms ready",
		zap.String("database", appCfg.MongoDatabase),
		zap.String("storage", appCfg.StorageType),
	)
	return nil
}
