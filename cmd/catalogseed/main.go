// Command catalogseed validates a domain dataset and roadmap and copies them
// into MongoDB, replacing whatever is there. With no paths it seeds the
// bundled dataset.
package main

import (
	"context"
	"fmt"
	"os"

	domainstore "github.com/dalemusser/technavigator/internal/app/store/domains"
	roadmapstore "github.com/dalemusser/technavigator/internal/app/store/roadmap"
	"github.com/dalemusser/technavigator/internal/app/resources"
	"github.com/dalemusser/technavigator/internal/app/system/catalog"
	"github.com/dalemusser/technavigator/internal/app/system/timeouts"
	"github.com/dalemusser/technavigator/internal/app/system/txn"
	"github.com/spf13/pflag"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type seedOptions struct {
	DomainsPath string
	RoadmapPath string
	MongoURI    string
	Database    string
	DryRun      bool
}

func main() {
	var opts seedOptions
	fs := pflag.NewFlagSet("catalogseed", pflag.ExitOnError)
	fs.StringVar(&opts.DomainsPath, "domains", "", "domains JSON file (default: bundled dataset)")
	fs.StringVar(&opts.RoadmapPath, "roadmap", "", "roadmap YAML file (default: bundled roadmap)")
	fs.StringVar(&opts.MongoURI, "mongo-uri", envOr("TECHNAV_MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection URI")
	fs.StringVar(&opts.Database, "database", envOr("TECHNAV_MONGO_DATABASE", "technavigator"), "MongoDB database name")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "validate only; do not write to MongoDB")
	_ = fs.Parse(os.Args[1:])

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(context.Background(), opts, logger); err != nil {
		logger.Error("catalogseed failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, opts seedOptions, logger *zap.Logger) error {
	cat, err := load(ctx, opts)
	if err != nil {
		return err
	}
	logger.Info("dataset valid",
		zap.String("source", cat.Source()),
		zap.Int("domains", cat.Len()),
		zap.Int("stages", len(cat.Stages())))
	catalog.ReportUnresolved(cat, logger)

	if opts.DryRun {
		logger.Info("dry run; nothing written")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Seed())
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.MongoURI))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	return seed(ctx, client.Database(opts.Database), cat, logger)
}

// load validates the dataset exactly as the server would.
func load(ctx context.Context, opts seedOptions) (*catalog.Catalog, error) {
	var (
		dl     catalog.DomainLoader
		sl     catalog.StageLoader
		source = "embedded"
	)

	if opts.DomainsPath != "" {
		dl = domainstore.FileLoader{Path: opts.DomainsPath}
		source = opts.DomainsPath
	} else {
		b, err := resources.DomainsJSON()
		if err != nil {
			return nil, err
		}
		dl = domainstore.BytesLoader(b)
	}

	if opts.RoadmapPath != "" {
		sl = roadmapstore.FileLoader{Path: opts.RoadmapPath}
	} else {
		b, err := resources.RoadmapYAML()
		if err != nil {
			return nil, err
		}
		sl = roadmapstore.BytesLoader(b)
	}

	return catalog.Load(ctx, source, dl, sl)
}

// seed replaces both collections in one transaction so a failed write
// leaves the previous dataset in place.
func seed(ctx context.Context, db *mongo.Database, cat *catalog.Catalog, logger *zap.Logger) error {
	ds := domainstore.New(db)
	rs := roadmapstore.New(db)

	if err := ds.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("domain indexes: %w", err)
	}
	if err := rs.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("stage indexes: %w", err)
	}

	if err := txn.Run(ctx, db, logger, func(ctx context.Context) error {
		if err := ds.ReplaceAll(ctx, cat.Domains()); err != nil {
			return fmt.Errorf("write domains: %w", err)
		}
		if err := rs.ReplaceAll(ctx, cat.Stages()); err != nil {
			return fmt.Errorf("write stages: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}

	logger.Info("catalog seeded", zap.String("database", db.Name()))
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
