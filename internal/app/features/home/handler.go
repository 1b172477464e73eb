package home

import (
	"net/http"

	"github.com/dalemusser/technavigator/internal/app/system/catalog"
	"github.com/dalemusser/technavigator/internal/app/system/viewdata"
	"github.com/dalemusser/technavigator/internal/app/system/workload"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Catalog *catalog.Catalog
	Log     *zap.Logger
}

func NewHandler(cat *catalog.Catalog, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: cat,
		Log:     logger,
	}
}

type homeVM struct {
	DomainCount   int
	StageCount    int
	TotalHours    string
	StarterStage  string
	AdvancedStage string
}

func buildHomeVM(cat *catalog.Catalog) homeVM {
	stages := cat.Stages()
	vm := homeVM{
		DomainCount: cat.Len(),
		StageCount:  len(stages),
		TotalHours:  "~" + viewdata.Hours(workload.TotalHours(cat.Domains())),
	}
	if len(stages) > 0 {
		vm.StarterStage = stages[0].Label
		vm.AdvancedStage = stages[len(stages)-1].Label
	}
	return vm
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		homeVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "", "/"),
		homeVM: buildHomeVM(h.Catalog),
	}

	templates.Render(w, r, "home", data)
}
