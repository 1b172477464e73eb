// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/technavigator/internal/app/system/prefs"
	"github.com/dalemusser/technavigator/internal/app/system/workload"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Tech Navigator.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: catalog_source, hours_per_year, etc.
//   - Environment variables: TECHNAV_CATALOG_SOURCE, TECHNAV_HOURS_PER_YEAR, etc.
//   - Command-line flags: --catalog_source, --hours_per_year, etc.
var appConfigKeys = []config.AppKey{
	{Name: "catalog_source", Default: SourceEmbedded, Desc: "Dataset source: 'embedded', 'file' or 'mongo'"},
	{Name: "catalog_domains_path", Default: "", Desc: "Path to the domains JSON file (file source)"},
	{Name: "catalog_roadmap_path", Default: "", Desc: "Path to the roadmap YAML file (file source)"},

	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI (mongo source)"},
	{Name: "mongo_database", Default: "technavigator", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 20, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 0, Desc: "MongoDB min connection pool size"},

	{Name: "hours_per_year", Default: "600", Desc: "Study hours per year used for the years-at-pace figure"},
	{Name: "bucket_thresholds", Default: "", Desc: "Comma-separated ascending hour thresholds for workload buckets (blank: 90,150 short/medium/long)"},

	{Name: "site_name", Default: "Tech Navigator", Desc: "Site name shown in the layout"},
	{Name: "default_theme", Default: prefs.ThemeDark, Desc: "Theme for visitors without a preference: 'light' or 'dark'"},
	{Name: "pref_key", Default: "", Desc: "Preference cookie signing key (blank generates one per process)"},
	{Name: "pref_cookie_name", Default: "technav-prefs", Desc: "Preference cookie name"},

	{Name: "api_allowed_origins", Default: "*", Desc: "Comma-separated CORS origins for /api"},
	{Name: "api_rate_limit", Default: 120, Desc: "Requests per minute per client for /api (0 disables)"},

	{Name: "ping_timeout", Default: "2s", Desc: "Health check MongoDB ping timeout"},
	{Name: "load_timeout", Default: "10s", Desc: "Dataset load timeout"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, TECHNAV_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "TECHNAV", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	hoursPerYear, err := strconv.ParseFloat(strings.TrimSpace(appValues.String("hours_per_year")), 64)
	if err != nil {
		return nil, AppConfig{}, fmt.Errorf("hours_per_year: %w", err)
	}
	thresholds, err := parseThresholds(appValues.String("bucket_thresholds"))
	if err != nil {
		return nil, AppConfig{}, fmt.Errorf("bucket_thresholds: %w", err)
	}

	appCfg := AppConfig{
		CatalogSource:      strings.ToLower(strings.TrimSpace(appValues.String("catalog_source"))),
		CatalogDomainsPath: appValues.String("catalog_domains_path"),
		CatalogRoadmapPath: appValues.String("catalog_roadmap_path"),

		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		HoursPerYear:     hoursPerYear,
		BucketThresholds: thresholds,

		SiteName:     appValues.String("site_name"),
		DefaultTheme: appValues.String("default_theme"),

		PrefKey:        appValues.String("pref_key"),
		PrefCookieName: appValues.String("pref_cookie_name"),

		APIAllowedOrigins: splitList(appValues.String("api_allowed_origins")),
		APIRateLimit:      appValues.Int("api_rate_limit"),

		PingTimeout: appValues.Duration("ping_timeout", 2*time.Second),
		LoadTimeout: appValues.Duration("load_timeout", 10*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.CatalogSource {
	case SourceEmbedded:
	case SourceFile:
		if appCfg.CatalogDomainsPath == "" || appCfg.CatalogRoadmapPath == "" {
			return fmt.Errorf("catalog_source=file requires catalog_domains_path and catalog_roadmap_path")
		}
	case SourceMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.MongoDatabase == "" {
			return fmt.Errorf("catalog_source=mongo requires mongo_database")
		}
	default:
		return fmt.Errorf("unknown catalog_source %q (want embedded, file or mongo)", appCfg.CatalogSource)
	}

	if _, err := workload.YearsAtPace(0, appCfg.HoursPerYear); err != nil {
		return fmt.Errorf("hours_per_year: %w", err)
	}
	if _, err := bucketsFor(appCfg.BucketThresholds); err != nil {
		return fmt.Errorf("bucket_thresholds: %w", err)
	}
	if _, ok := prefs.NormalizeTheme(appCfg.DefaultTheme); !ok {
		return fmt.Errorf("default_theme must be 'light' or 'dark', got %q", appCfg.DefaultTheme)
	}
	if len(appCfg.APIAllowedOrigins) == 0 {
		return fmt.Errorf("api_allowed_origins must list at least one origin")
	}
	if appCfg.APIRateLimit < 0 {
		return fmt.Errorf("api_rate_limit must be >= 0, got %d", appCfg.APIRateLimit)
	}
	return nil
}

// bucketsFor returns the bucket set for configured thresholds.
func bucketsFor(thresholds []float64) ([]workload.Bucket, error) {
	if len(thresholds) == 0 {
		return workload.DefaultBuckets, nil
	}
	return workload.BucketsFromThresholds(thresholds)
}

func parseThresholds(s string) ([]float64, error) {
	var out []float64
	for _, part := range splitList(s) {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", part)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%q is not finite", part)
		}
		out = append(out, v)
	}
	return out, nil
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
