// internal/domain/models/roadmap.go
package models

// RoadmapStage is one phase of the suggested learning sequence.
// DomainIDs reference DomainRecord.ID values in display order; ids that are
// missing from the dataset are dropped when the stage is projected.
type RoadmapStage struct {
	ID          string   `bson:"id" json:"id" yaml:"id" validate:"required,slug"`
	Label       string   `bson:"label" json:"label" yaml:"label" validate:"required"`
	Description string   `bson:"description" json:"description" yaml:"description"`
	DomainIDs   []string `bson:"domain_ids" json:"domainIds" yaml:"domainIds" validate:"dive,required"`

	Position int `bson:"position" json:"-" yaml:"-"`
}
