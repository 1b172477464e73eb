// Package catalog holds the load-once domain dataset and roadmap stages.
//
// A Catalog is built exactly once at startup and never mutated afterwards, so
// it is safe to share across request goroutines without locking. Accessors
// hand out copies to keep it that way.
package catalog

import (
	"context"
	"slices"

	"github.com/dalemusser/technavigator/internal/app/system/workload"
	"github.com/dalemusser/technavigator/internal/domain/models"
	"go.uber.org/zap"
)

// DomainLoader fetches raw domain records from a backing source.
type DomainLoader interface {
	LoadDomains(ctx context.Context) ([]models.DomainRecord, error)
}

// StageLoader fetches raw roadmap stage definitions from a backing source.
type StageLoader interface {
	LoadStages(ctx context.Context) ([]models.RoadmapStage, error)
}

// Catalog is the validated, immutable dataset.
type Catalog struct {
	source  string
	domains []models.DomainRecord
	stages  []models.RoadmapStage
}

// Load reads both collections and validates them. Any failure yields a
// *DatasetError and no catalog.
func Load(ctx context.Context, source string, dl DomainLoader, sl StageLoader) (*Catalog, error) {
	domains, err := dl.LoadDomains(ctx)
	if err != nil {
		return nil, &DatasetError{Source: source, Err: err}
	}
	stages, err := sl.LoadStages(ctx)
	if err != nil {
		return nil, &DatasetError{Source: source, Err: err}
	}
	return New(source, domains, stages)
}

// New validates already-decoded collections and wraps them in a Catalog.
func New(source string, domains []models.DomainRecord, stages []models.RoadmapStage) (*Catalog, error) {
	problems := ValidateDomains(domains)
	problems = append(problems, ValidateStages(stages)...)
	if len(problems) > 0 {
		return nil, &DatasetError{Source: source, Problems: problems}
	}

	c := &Catalog{
		source:  source,
		domains: make([]models.DomainRecord, len(domains)),
		stages:  make([]models.RoadmapStage, len(stages)),
	}
	for i, d := range domains {
		c.domains[i] = cloneDomain(d)
	}
	for i, st := range stages {
		c.stages[i] = cloneStage(st)
	}
	return c, nil
}

// Source names where the catalog was loaded from.
func (c *Catalog) Source() string { return c.source }

// Len is the number of domain records.
func (c *Catalog) Len() int { return len(c.domains) }

// Domains returns a copy of all records in dataset order.
func (c *Catalog) Domains() []models.DomainRecord {
	out := make([]models.DomainRecord, len(c.domains))
	for i, d := range c.domains {
		out[i] = cloneDomain(d)
	}
	return out
}

// Stages returns a copy of the roadmap stage definitions in order.
func (c *Catalog) Stages() []models.RoadmapStage {
	out := make([]models.RoadmapStage, len(c.stages))
	for i, st := range c.stages {
		out[i] = cloneStage(st)
	}
	return out
}

// FindByID looks up one record. The bool is false when the id is unknown.
func (c *Catalog) FindByID(id string) (models.DomainRecord, bool) {
	d, ok := workload.FindByID(c.domains, id)
	if !ok {
		return d, false
	}
	return cloneDomain(d), true
}

// Reference is a stage entry pointing at a domain id.
type Reference struct {
	StageID  string
	DomainID string
}

// Unresolved lists every stage reference that has no matching record.
func (c *Catalog) Unresolved() []Reference {
	var out []Reference
	workload.ProjectStages(c.stages, c.domains, func(stageID, domainID string) {
		out = append(out, Reference{StageID: stageID, DomainID: domainID})
	})
	return out
}

// ReportUnresolved logs each unresolved stage reference as a warning and
// returns how many there were.
func ReportUnresolved(c *Catalog, logger *zap.Logger) int {
	refs := c.Unresolved()
	for _, ref := range refs {
		logger.Warn("roadmap stage references unknown domain",
			zap.String("stage", ref.StageID),
			zap.String("domain", ref.DomainID),
			zap.String("source", c.source))
	}
	return len(refs)
}

// UnresolvedLogger returns a projection hook that logs at debug level.
func UnresolvedLogger(logger *zap.Logger) workload.UnresolvedFunc {
	return func(stageID, domainID string) {
		logger.Debug("dropped unresolved roadmap reference",
			zap.String("stage", stageID),
			zap.String("domain", domainID))
	}
}

func cloneDomain(d models.DomainRecord) models.DomainRecord {
	if d.ApproxHours != nil {
		h := *d.ApproxHours
		d.ApproxHours = &h
	}
	d.KeySubtopics = slices.Clone(d.KeySubtopics)
	return d
}

func cloneStage(st models.RoadmapStage) models.RoadmapStage {
	st.DomainIDs = slices.Clone(st.DomainIDs)
	return st
}
