// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	domainstore "github.com/dalemusser/technavigator/internal/app/store/domains"
	roadmapstore "github.com/dalemusser/technavigator/internal/app/store/roadmap"
	"github.com/dalemusser/technavigator/internal/app/resources"
	"github.com/dalemusser/technavigator/internal/app/system/catalog"
	"github.com/dalemusser/technavigator/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB connects to MongoDB when the catalog lives there, then loads and
// validates the catalog. Any dataset problem aborts startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	timeouts.Configure(timeouts.Config{Ping: appCfg.PingTimeout, Load: appCfg.LoadTimeout})

	var deps DBDeps
	if appCfg.CatalogSource == SourceMongo {
		client, err := connectMongo(ctx, appCfg)
		if err != nil {
			logger.Error("mongo connect failed", zap.Error(err))
			return DBDeps{}, err
		}
		deps.MongoClient = client
		deps.MongoDatabase = client.Database(appCfg.MongoDatabase)
		logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	}

	loadCtx, cancel := context.WithTimeout(ctx, timeouts.Load())
	defer cancel()

	cat, err := loadCatalog(loadCtx, appCfg, deps.MongoDatabase)
	if err != nil {
		logger.Error("catalog load failed", zap.String("source", appCfg.CatalogSource), zap.Error(err))
		if deps.MongoClient != nil {
			_ = deps.MongoClient.Disconnect(context.Background())
		}
		return DBDeps{}, err
	}
	deps.Catalog = cat

	logger.Info("catalog loaded",
		zap.String("source", cat.Source()),
		zap.Int("domains", cat.Len()),
		zap.Int("stages", len(cat.Stages())))
	return deps, nil
}

func connectMongo(ctx context.Context, appCfg AppConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// loadCatalog picks the loaders for appCfg.CatalogSource. db is only used by
// the mongo source.
func loadCatalog(ctx context.Context, appCfg AppConfig, db *mongo.Database) (*catalog.Catalog, error) {
	switch appCfg.CatalogSource {
	case SourceEmbedded:
		domains, err := resources.DomainsJSON()
		if err != nil {
			return nil, fmt.Errorf("read embedded domains: %w", err)
		}
		roadmap, err := resources.RoadmapYAML()
		if err != nil {
			return nil, fmt.Errorf("read embedded roadmap: %w", err)
		}
		return catalog.Load(ctx, SourceEmbedded, domainstore.BytesLoader(domains), roadmapstore.BytesLoader(roadmap))
	case SourceFile:
		return catalog.Load(ctx, appCfg.CatalogDomainsPath,
			domainstore.FileLoader{Path: appCfg.CatalogDomainsPath},
			roadmapstore.FileLoader{Path: appCfg.CatalogRoadmapPath})
	case SourceMongo:
		if db == nil {
			return nil, fmt.Errorf("catalog_source=mongo without a database")
		}
		return catalog.Load(ctx, "mongo:"+db.Name(), domainstore.New(db), roadmapstore.New(db))
	}
	return nil, fmt.Errorf("unknown catalog_source %q", appCfg.CatalogSource)
}

// EnsureSchema creates the unique id indexes when the catalog is stored in
// MongoDB. Other sources have no schema.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}
	if err := domainstore.New(deps.MongoDatabase).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure domain indexes: %w", err)
	}
	if err := roadmapstore.New(deps.MongoDatabase).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure roadmap indexes: %w", err)
	}
	logger.Info("catalog indexes ensured")
	return nil
}
