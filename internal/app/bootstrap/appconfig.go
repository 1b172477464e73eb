// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// Catalog sources accepted by catalog_source.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceMongo    = "mongo"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration; ports, TLS and log level
// live in WAFFLE's CoreConfig.
type AppConfig struct {
	// Where the dataset comes from: embedded, file or mongo.
	CatalogSource      string
	CatalogDomainsPath string // JSON array of domain records (file source)
	CatalogRoadmapPath string // YAML list of roadmap stages (file source)

	// MongoDB connection configuration (mongo source only)
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Aggregation settings
	HoursPerYear     float64   // study pace used for "years at pace"
	BucketThresholds []float64 // empty means the default short/medium/long split

	// Presentation
	SiteName     string
	DefaultTheme string

	// Preference cookie
	PrefKey        string // signing key; blank generates a random one per process
	PrefCookieName string

	// JSON API
	APIAllowedOrigins []string
	APIRateLimit      int // requests per minute per client; 0 disables

	// I/O deadlines
	PingTimeout time.Duration
	LoadTimeout time.Duration
}
