// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/technavigator/internal/app/resources"
	"github.com/dalemusser/technavigator/internal/app/system/catalog"
	"github.com/dalemusser/technavigator/internal/app/system/timeouts"
	"github.com/dalemusser/technavigator/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the catalog is
// loaded and before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	viewdata.SetSiteName(appCfg.SiteName)
	timeouts.Log(logger)

	if n := catalog.ReportUnresolved(deps.Catalog, logger); n > 0 {
		logger.Warn("roadmap has unresolved domain references; they will be omitted", zap.Int("count", n))
	}
	return nil
}
