package testutil

import (
	"context"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/technavigator/internal/app/system/catalog"
	"github.com/dalemusser/technavigator/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestContext returns a context bounded for a single test's DB work.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// SetupTestDB connects to the MongoDB named by TECHNAV_TEST_MONGO_URI
// (default mongodb://localhost:27017) and returns a fresh database that is
// dropped when the test ends. The test is skipped when no server answers.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("TECHNAV_TEST_MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerSelectionTimeout(time.Second))
	if err != nil {
		t.Skipf("mongo unavailable: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("mongo unavailable: %v", err)
	}

	name := "technav_test_" + strings.NewReplacer("/", "_", " ", "_").Replace(strings.ToLower(t.Name()))
	if len(name) > 60 {
		name = name[:60]
	}
	db := client.Database(name)
	_ = db.Drop(ctx)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}

func hours(v float64) *float64 { return &v }

// Domains returns a small valid dataset. "c" has no hour estimate.
func Domains() []models.DomainRecord {
	return []models.DomainRecord{
		{
			ID:                    "a",
			Name:                  "Alpha Systems",
			ShortDescription:      "The first domain.",
			Definition:            "Alpha covers the basics.",
			EstimatedLearningTime: "60 hours",
			ApproxHours:           hours(60),
			KeySubtopics:          []string{"Registers", "Caches"},
		},
		{
			ID:                    "b",
			Name:                  "Beta Networks",
			ShortDescription:      "The second domain.",
			Definition:            "<p>Beta is about <strong>packets</strong>.</p><script>alert(1)</script>",
			EstimatedLearningTime: "120 hours",
			ApproxHours:           hours(120),
			KeySubtopics:          []string{"Routing"},
		},
		{
			ID:                    "c",
			Name:                  "Gamma Ethics",
			ShortDescription:      "No estimate yet.",
			Definition:            "Gamma has no hour figure.",
			EstimatedLearningTime: "varies",
		},
	}
}

// Stages returns stage definitions over Domains, including one id that
// does not resolve.
func Stages() []models.RoadmapStage {
	return []models.RoadmapStage{
		{ID: "starter", Label: "Starter", Description: "Begin here.", DomainIDs: []string{"a", "missing", "b"}},
		{ID: "advanced", Label: "Advanced", Description: "Then this.", DomainIDs: []string{"c"}},
	}
}

// Catalog builds a catalog from Domains and Stages.
func Catalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New("test", Domains(), Stages())
	if err != nil {
		t.Fatalf("build test catalog: %v", err)
	}
	return c
}
