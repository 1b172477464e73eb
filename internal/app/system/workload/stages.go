// internal/app/system/workload/stages.go
package workload

import (
	"strings"

	"github.com/dalemusser/technavigator/internal/domain/models"
)

// UnresolvedFunc is told about each stage reference that did not match a
// record. It must not retain the arguments past the call.
type UnresolvedFunc func(stageID, domainID string)

// StageProjection is a roadmap stage with its domain ids resolved.
type StageProjection struct {
	Stage      models.RoadmapStage   `json:"stage"`
	Number     int                   `json:"number"`
	Records    []models.DomainRecord `json:"records"`
	TotalHours float64               `json:"totalHours"`
	TimeHint   string                `json:"timeHint"`
}

// ProjectStages resolves every stage's DomainIDs against records. Stage
// order and per-stage id order are preserved; ids without a matching record
// are skipped and passed to onUnresolved when it is non-nil.
func ProjectStages(stages []models.RoadmapStage, records []models.DomainRecord, onUnresolved UnresolvedFunc) []StageProjection {
	out := make([]StageProjection, 0, len(stages))
	for i, st := range stages {
		p := StageProjection{
			Stage:   st,
			Number:  i + 1,
			Records: make([]models.DomainRecord, 0, len(st.DomainIDs)),
		}
		var hints []string
		for _, id := range st.DomainIDs {
			d, ok := FindByID(records, id)
			if !ok {
				if onUnresolved != nil {
					onUnresolved(st.ID, id)
				}
				continue
			}
			p.Records = append(p.Records, d)
			if d.EstimatedLearningTime != "" {
				hints = append(hints, d.EstimatedLearningTime)
			}
		}
		p.TotalHours = TotalHours(p.Records)
		p.TimeHint = strings.Join(hints, " · ")
		out = append(out, p)
	}
	return out
}

// StageOf returns the first stage that lists domainID.
func StageOf(stages []models.RoadmapStage, domainID string) (models.RoadmapStage, int, bool) {
	for i, st := range stages {
		for _, id := range st.DomainIDs {
			if id == domainID {
				return st, i + 1, true
			}
		}
	}
	return models.RoadmapStage{}, 0, false
}
