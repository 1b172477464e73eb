// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	aboutfeature "github.com/dalemusser/technavigator/internal/app/features/about"
	apifeature "github.com/dalemusser/technavigator/internal/app/features/api"
	dashboardfeature "github.com/dalemusser/technavigator/internal/app/features/dashboard"
	domainsfeature "github.com/dalemusser/technavigator/internal/app/features/domains"
	errorsfeature "github.com/dalemusser/technavigator/internal/app/features/errors"
	healthfeature "github.com/dalemusser/technavigator/internal/app/features/health"
	homefeature "github.com/dalemusser/technavigator/internal/app/features/home"
	roadmapfeature "github.com/dalemusser/technavigator/internal/app/features/roadmap"
	themefeature "github.com/dalemusser/technavigator/internal/app/features/theme"
	"github.com/dalemusser/technavigator/internal/app/system/prefs"
	"github.com/dalemusser/technavigator/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// apiLimiter is stopped by Shutdown.
var apiLimiter *ratelimit.Limiter

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, catalog load, schema setup, and
// the Startup hook have completed. It boots the template engine and mounts
// the feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(appCfg, deps, coreCfg.Env == "prod", logger)
}

// newRouter mounts every feature. secure marks the preference cookie Secure.
func newRouter(appCfg AppConfig, deps DBDeps, secure bool, logger *zap.Logger) (chi.Router, error) {
	prefMgr, err := prefs.NewManager(prefs.Options{
		Key:          appCfg.PrefKey,
		CookieName:   appCfg.PrefCookieName,
		DefaultTheme: appCfg.DefaultTheme,
		Secure:       secure,
	}, logger)
	if err != nil {
		logger.Error("preference manager init failed", zap.Error(err))
		return nil, err
	}

	buckets, err := bucketsFor(appCfg.BucketThresholds)
	if err != nil {
		return nil, err
	}

	errLog := errorsfeature.NewErrorLogger(logger)
	cat := deps.Catalog

	r := chi.NewRouter()

	// Theme preference for every request; views read it through viewdata.
	r.Use(prefMgr.Middleware)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, cat, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Pages
	r.Mount("/", homefeature.Routes(homefeature.NewHandler(cat, logger)))
	r.Mount("/domains", domainsfeature.Routes(domainsfeature.NewHandler(cat, logger)))
	r.Mount("/roadmap", roadmapfeature.Routes(roadmapfeature.NewHandler(cat, logger)))
	r.Mount("/dashboard", dashboardfeature.Routes(
		dashboardfeature.NewHandler(cat, buckets, appCfg.HoursPerYear, errLog, logger)))
	r.Mount("/about", aboutfeature.Routes(
		aboutfeature.NewHandler(cat, buckets, appCfg.HoursPerYear, logger)))

	// Shell
	r.Mount("/theme", themefeature.Routes(themefeature.NewHandler(prefMgr, logger)))

	// Read-only JSON
	var limiter *ratelimit.Limiter
	if appCfg.APIRateLimit > 0 {
		limiter = ratelimit.New(appCfg.APIRateLimit, time.Minute)
		apiLimiter = limiter
	}
	apiHandler := apifeature.NewHandler(cat, buckets, appCfg.HoursPerYear, logger)
	r.Mount("/api", apifeature.Routes(apiHandler, appCfg.APIAllowedOrigins, limiter))

	errorsHandler := errorsfeature.NewHandler(logger)
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
