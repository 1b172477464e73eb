// internal/domain/models/domain.go
package models

// DomainRecord is one catalogued technology domain.
//
// ApproxHours is a pointer so that "no estimate" stays distinct from an
// estimate of zero; aggregations skip records where it is nil.
type DomainRecord struct {
	ID                    string   `bson:"id" json:"id" yaml:"id" validate:"required,slug"`
	Name                  string   `bson:"name" json:"name" yaml:"name" validate:"required"`
	ShortDescription      string   `bson:"short_description" json:"shortDescription" yaml:"shortDescription"`
	Definition            string   `bson:"definition" json:"definition" yaml:"definition"`
	EstimatedLearningTime string   `bson:"estimated_learning_time" json:"estimatedLearningTime" yaml:"estimatedLearningTime"`
	ApproxHours           *float64 `bson:"approx_hours,omitempty" json:"approxHours,omitempty" yaml:"approxHours,omitempty" validate:"omitempty,gte=0"`
	KeySubtopics          []string `bson:"key_subtopics" json:"keySubtopics" yaml:"keySubtopics" validate:"dive,required"`

	// Position keeps dataset order when records live in MongoDB.
	Position int `bson:"position" json:"-" yaml:"-"`
}

// HasHours reports whether the record carries a numeric hour estimate.
func (d DomainRecord) HasHours() bool {
	return d.ApproxHours != nil
}

// Hours returns the hour estimate, or 0 when absent. Callers that need to
// tell the two apart use HasHours.
func (d DomainRecord) Hours() float64 {
	if d.ApproxHours == nil {
		return 0
	}
	return *d.ApproxHours
}

// DefaultSiteName is shown in the header when no site_name is configured.
const DefaultSiteName = "Tech Navigator"
