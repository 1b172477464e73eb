package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	domainstore "github.com/dalemusser/technavigator/internal/app/store/domains"
	roadmapstore "github.com/dalemusser/technavigator/internal/app/store/roadmap"
	"github.com/dalemusser/technavigator/internal/app/system/catalog"
	"github.com/dalemusser/technavigator/internal/testutil"
	"go.uber.org/zap"
)

func TestLoadCatalog_Embedded(t *testing.T) {
	cat, err := loadCatalog(context.Background(), AppConfig{CatalogSource: SourceEmbedded}, nil)
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if cat.Len() != 15 {
		t.Errorf("domains = %d, want 15", cat.Len())
	}
	if len(cat.Stages()) != 5 {
		t.Errorf("stages = %d, want 5", len(cat.Stages()))
	}
	if refs := cat.Unresolved(); len(refs) != 0 {
		t.Errorf("bundled roadmap has unresolved references: %+v", refs)
	}
	if cat.Source() != SourceEmbedded {
		t.Errorf("Source = %q", cat.Source())
	}
}

func TestLoadCatalog_File(t *testing.T) {
	dir := t.TempDir()
	domains := filepath.Join(dir, "domains.json")
	roadmap := filepath.Join(dir, "roadmap.yaml")
	writeFile(t, domains, `[{"id":"go","name":"Go","approxHours":40}]`)
	writeFile(t, roadmap, "- id: start\n  label: Start\n  domainIds: [go]\n")

	cfg := AppConfig{CatalogSource: SourceFile, CatalogDomainsPath: domains, CatalogRoadmapPath: roadmap}
	cat, err := loadCatalog(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if d, ok := cat.FindByID("go"); !ok || d.Hours() != 40 {
		t.Errorf("FindByID(go) = %+v, %v", d, ok)
	}
}

func TestLoadCatalog_FileInvalidDataset(t *testing.T) {
	dir := t.TempDir()
	domains := filepath.Join(dir, "domains.json")
	roadmap := filepath.Join(dir, "roadmap.yaml")
	writeFile(t, domains, `[{"id":"go","name":"Go"},{"id":"go","name":"Go again"}]`)
	writeFile(t, roadmap, "[]\n")

	cfg := AppConfig{CatalogSource: SourceFile, CatalogDomainsPath: domains, CatalogRoadmapPath: roadmap}
	_, err := loadCatalog(context.Background(), cfg, nil)

	var dsErr *catalog.DatasetError
	if !errors.As(err, &dsErr) {
		t.Fatalf("expected *catalog.DatasetError, got %v", err)
	}
}

func TestLoadCatalog_MongoWithoutDB(t *testing.T) {
	if _, err := loadCatalog(context.Background(), AppConfig{CatalogSource: SourceMongo}, nil); err == nil {
		t.Fatal("expected error without a database")
	}
}

func TestLoadCatalog_Mongo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := domainstore.New(db).ReplaceAll(ctx, testutil.Domains()); err != nil {
		t.Fatalf("seed domains: %v", err)
	}
	if err := roadmapstore.New(db).ReplaceAll(ctx, testutil.Stages()); err != nil {
		t.Fatalf("seed stages: %v", err)
	}

	cat, err := loadCatalog(ctx, AppConfig{CatalogSource: SourceMongo}, db)
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if cat.Len() != 3 || len(cat.Stages()) != 2 {
		t.Errorf("loaded %d domains / %d stages", cat.Len(), len(cat.Stages()))
	}

	deps := DBDeps{MongoClient: db.Client(), MongoDatabase: db, Catalog: cat}
	if err := EnsureSchema(ctx, nil, AppConfig{}, deps, zap.NewNop()); err != nil {
		t.Errorf("EnsureSchema: %v", err)
	}
}

func TestEnsureSchema_NoDatabase(t *testing.T) {
	if err := EnsureSchema(context.Background(), nil, AppConfig{}, DBDeps{}, zap.NewNop()); err != nil {
		t.Errorf("EnsureSchema without mongo: %v", err)
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
