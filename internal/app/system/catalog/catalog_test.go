package catalog

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/dalemusser/technavigator/internal/domain/models"
	"go.uber.org/zap"
)

func hours(v float64) *float64 { return &v }

func validDomains() []models.DomainRecord {
	return []models.DomainRecord{
		{ID: "a", Name: "Alpha", ApproxHours: hours(60), KeySubtopics: []string{"one", "two"}},
		{ID: "b", Name: "Beta", ApproxHours: hours(120)},
		{ID: "c", Name: "Gamma"},
	}
}

func validStages() []models.RoadmapStage {
	return []models.RoadmapStage{
		{ID: "s1", Label: "Stage 1", DomainIDs: []string{"a", "missing", "b"}},
		{ID: "s2", Label: "Stage 2", DomainIDs: []string{"c"}},
	}
}

type domainsFunc func(context.Context) ([]models.DomainRecord, error)

func (f domainsFunc) LoadDomains(ctx context.Context) ([]models.DomainRecord, error) { return f(ctx) }

type stagesFunc func(context.Context) ([]models.RoadmapStage, error)

func (f stagesFunc) LoadStages(ctx context.Context) ([]models.RoadmapStage, error) { return f(ctx) }

func TestNew_Valid(t *testing.T) {
	c, err := New("test", validDomains(), validStages())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Len() != 3 {
		t.Errorf("Len: got %d, want 3", c.Len())
	}
	if c.Source() != "test" {
		t.Errorf("Source: got %q, want %q", c.Source(), "test")
	}
	if len(c.Stages()) != 2 {
		t.Errorf("Stages: got %d, want 2", len(c.Stages()))
	}
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		domains []models.DomainRecord
		stages  []models.RoadmapStage
		want    string
	}{
		{"empty dataset", nil, nil, "dataset is empty"},
		{"duplicate id", []models.DomainRecord{{ID: "a", Name: "A"}, {ID: "a", Name: "A2"}}, nil, "duplicate id"},
		{"negative hours", []models.DomainRecord{{ID: "a", Name: "A", ApproxHours: hours(-1)}}, nil, "approxHours must be >= 0"},
		{"infinite hours", []models.DomainRecord{{ID: "a", Name: "A", ApproxHours: hours(math.Inf(1))}}, nil, "approxHours must be finite"},
		{"nan hours", []models.DomainRecord{{ID: "a", Name: "A", ApproxHours: hours(math.NaN())}}, nil, "approxHours must be finite"},
		{"missing id", []models.DomainRecord{{Name: "A"}}, nil, "id is required"},
		{"bad slug", []models.DomainRecord{{ID: "Not A Slug", Name: "A"}}, nil, "not a lowercase slug"},
		{"missing name", []models.DomainRecord{{ID: "a"}}, nil, "name is required"},
		{"blank subtopic", []models.DomainRecord{{ID: "a", Name: "A", KeySubtopics: []string{"x", ""}}}, nil, "is required"},
		{"duplicate stage", validDomains(), []models.RoadmapStage{{ID: "s", Label: "S"}, {ID: "s", Label: "T"}}, "duplicate stage id"},
		{"stage without label", validDomains(), []models.RoadmapStage{{ID: "s"}}, "label is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New("test", tt.domains, tt.stages)
			if c != nil {
				t.Error("expected no catalog on failure")
			}
			var dsErr *DatasetError
			if !errors.As(err, &dsErr) {
				t.Fatalf("expected *DatasetError, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestNew_ZeroHoursAllowed(t *testing.T) {
	if _, err := New("test", []models.DomainRecord{{ID: "a", Name: "A", ApproxHours: hours(0)}}, nil); err != nil {
		t.Errorf("zero hours should be valid: %v", err)
	}
}

func TestLoad_WrapsLoaderErrors(t *testing.T) {
	boom := errors.New("boom")
	okStages := stagesFunc(func(context.Context) ([]models.RoadmapStage, error) { return validStages(), nil })
	badDomains := domainsFunc(func(context.Context) ([]models.DomainRecord, error) { return nil, boom })

	_, err := Load(context.Background(), "file", badDomains, okStages)
	var dsErr *DatasetError
	if !errors.As(err, &dsErr) {
		t.Fatalf("expected *DatasetError, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped loader error, got %v", err)
	}
	if dsErr.Source != "file" {
		t.Errorf("Source: got %q, want %q", dsErr.Source, "file")
	}
}

func TestLoad_Success(t *testing.T) {
	dl := domainsFunc(func(context.Context) ([]models.DomainRecord, error) { return validDomains(), nil })
	sl := stagesFunc(func(context.Context) ([]models.RoadmapStage, error) { return validStages(), nil })
	c, err := Load(context.Background(), "embedded", dl, sl)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 3 {
		t.Errorf("Len: got %d, want 3", c.Len())
	}
}

func TestCatalog_IsImmutable(t *testing.T) {
	src := validDomains()
	c, err := New("test", src, validStages())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Mutating the input after New must not leak in.
	*src[0].ApproxHours = 999
	src[0].KeySubtopics[0] = "changed"

	got := c.Domains()
	if got[0].Hours() != 60 || got[0].KeySubtopics[0] != "one" {
		t.Errorf("catalog changed through input slice: %+v", got[0])
	}

	// Mutating an accessor result must not leak back.
	*got[0].ApproxHours = 1
	got[0].Name = "changed"
	again, _ := c.FindByID("a")
	if again.Hours() != 60 || again.Name != "Alpha" {
		t.Errorf("catalog changed through accessor: %+v", again)
	}

	st := c.Stages()
	st[0].DomainIDs[0] = "zzz"
	if c.Stages()[0].DomainIDs[0] != "a" {
		t.Error("catalog stages changed through accessor")
	}
}

func TestCatalog_FindByID(t *testing.T) {
	c, err := New("test", validDomains(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d, ok := c.FindByID("b"); !ok || d.Name != "Beta" {
		t.Errorf("FindByID(b): got (%+v, %v)", d, ok)
	}
	if _, ok := c.FindByID("nope"); ok {
		t.Error("FindByID(nope): expected not found")
	}
}

func TestCatalog_Unresolved(t *testing.T) {
	c, err := New("test", validDomains(), validStages())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	refs := c.Unresolved()
	if len(refs) != 1 || refs[0] != (Reference{StageID: "s1", DomainID: "missing"}) {
		t.Errorf("Unresolved: got %+v", refs)
	}
	if n := ReportUnresolved(c, zap.NewNop()); n != 1 {
		t.Errorf("ReportUnresolved: got %d, want 1", n)
	}
}

func TestDatasetError_Message(t *testing.T) {
	e := &DatasetError{Source: "file", Problems: []string{"x", "y"}}
	if got := e.Error(); got != "dataset file: 2 problems: x; y" {
		t.Errorf("Error: got %q", got)
	}
	e = &DatasetError{Source: "mongo", Problems: []string{"dataset is empty"}}
	if got := e.Error(); got != "dataset mongo: dataset is empty" {
		t.Errorf("Error: got %q", got)
	}
}

func TestIsSlug(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"operating-systems", true},
		{"hci-ux", true},
		{"ai2", true},
		{"", false},
		{"Upper", false},
		{"double--dash", false},
		{"-leading", false},
		{"trailing-", false},
		{"has space", false},
	}
	for _, tt := range tests {
		if got := IsSlug(tt.in); got != tt.want {
			t.Errorf("IsSlug(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}
