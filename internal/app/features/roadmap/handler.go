package roadmap

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/dalemusser/technavigator/internal/app/system/catalog"
	"github.com/dalemusser/technavigator/internal/app/system/viewdata"
	"github.com/dalemusser/technavigator/internal/app/system/workload"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the staged learning roadmap.
type Handler struct {
	Catalog *catalog.Catalog
	Log     *zap.Logger
}

func NewHandler(cat *catalog.Catalog, logger *zap.Logger) *Handler {
	return &Handler{Catalog: cat, Log: logger}
}

type chip struct {
	Name string
	Href string
}

type stageVM struct {
	Number      int
	Heading     string
	Description string
	Chips       []chip
	TimeHint    string
	Hours       string
}

// stageHeading renders a stage title as "01 • Label".
func stageHeading(n int, label string) string {
	return fmt.Sprintf("%02d • %s", n, label)
}

func buildStages(projections []workload.StageProjection) []stageVM {
	out := make([]stageVM, 0, len(projections))
	for _, p := range projections {
		s := stageVM{
			Number:      p.Number,
			Heading:     stageHeading(p.Number, p.Stage.Label),
			Description: p.Stage.Description,
			TimeHint:    p.TimeHint,
			Chips:       make([]chip, 0, len(p.Records)),
		}
		if p.TotalHours > 0 {
			s.Hours = "~" + viewdata.Hours(p.TotalHours) + " hours"
		}
		for _, d := range p.Records {
			s.Chips = append(s.Chips, chip{
				Name: d.Name,
				Href: "/domains/" + url.PathEscape(d.ID) + "?return=%2Froadmap",
			})
		}
		out = append(out, s)
	}
	return out
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /roadmap – stages in order                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoadmap(w http.ResponseWriter, r *http.Request) {
	projections := workload.ProjectStages(h.Catalog.Stages(), h.Catalog.Domains(), catalog.UnresolvedLogger(h.Log))

	data := struct {
		viewdata.BaseVM
		Stages []stageVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "Roadmap", "/"),
		Stages: buildStages(projections),
	}

	templates.Render(w, r, "roadmap", data)
}
