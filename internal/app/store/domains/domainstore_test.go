package domainstore_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	domainstore "github.com/dalemusser/technavigator/internal/app/store/domains"
	"github.com/dalemusser/technavigator/internal/domain/models"
	"github.com/dalemusser/technavigator/internal/testutil"
)

const sampleJSON = `[
  {"id": "a", "name": "Alpha", "estimatedLearningTime": "60 hours", "approxHours": 60, "keySubtopics": ["x", "y"]},
  {"id": "b", "name": "Beta", "approxHours": 120},
  {"id": "c", "name": "Gamma", "shortDescription": "no hours"}
]`

func TestDecode(t *testing.T) {
	recs, err := domainstore.Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if recs[0].Hours() != 60 || len(recs[0].KeySubtopics) != 2 {
		t.Errorf("record a decoded wrong: %+v", recs[0])
	}
	if recs[2].HasHours() {
		t.Error("expected record c to have no hours")
	}
	for i, r := range recs {
		if r.Position != i {
			t.Errorf("record %q position: got %d, want %d", r.ID, r.Position, i)
		}
	}
}

func TestDecode_Malformed(t *testing.T) {
	inputs := map[string]string{
		"not json":      `{{{`,
		"object":        `{"id": "a"}`,
		"trailing data": `[] []`,
		"string hours":  `[{"id": "a", "approxHours": "many"}]`,
		"misspelt key":  `[{"id": "a", "name": "Alpha", "approxHour": 60}]`,
		"position key":  `[{"id": "a", "name": "Alpha", "position": 3}]`,
	}
	for name, in := range inputs {
		if _, err := domainstore.Decode(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expected decode error", name)
		}
	}
}

func TestFileLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domains.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	recs, err := domainstore.FileLoader{Path: path}.LoadDomains(context.Background())
	if err != nil {
		t.Fatalf("LoadDomains failed: %v", err)
	}
	if len(recs) != 3 {
		t.Errorf("expected 3 records, got %d", len(recs))
	}

	if _, err := (domainstore.FileLoader{Path: path + ".missing"}).LoadDomains(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBytesLoader(t *testing.T) {
	recs, err := domainstore.BytesLoader(sampleJSON).LoadDomains(context.Background())
	if err != nil {
		t.Fatalf("LoadDomains failed: %v", err)
	}
	if recs[1].ID != "b" {
		t.Errorf("expected second record b, got %q", recs[1].ID)
	}
}

func TestStore_ReplaceAllAndLoad(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := domainstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}

	recs, err := domainstore.Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	// Insert in reverse to prove positions come from the slice order given.
	reversed := []models.DomainRecord{recs[2], recs[1], recs[0]}
	if err := store.ReplaceAll(ctx, reversed); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	got, err := store.LoadDomains(ctx)
	if err != nil {
		t.Fatalf("LoadDomains failed: %v", err)
	}
	want := []string{"c", "b", "a"}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("record %d: got %q, want %q", i, got[i].ID, id)
		}
	}
	if !got[1].HasHours() || got[1].Hours() != 120 {
		t.Errorf("expected b to keep 120 hours, got %+v", got[1])
	}
	if got[0].HasHours() {
		t.Error("expected c to round-trip without hours")
	}

	// Replacing again must not trip the unique index.
	if err := store.ReplaceAll(ctx, recs); err != nil {
		t.Fatalf("second ReplaceAll failed: %v", err)
	}
}
