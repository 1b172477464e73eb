package domains

import (
	"fmt"
	"html/template"
	"net/http"

	errorsfeature "github.com/dalemusser/technavigator/internal/app/features/errors"
	"github.com/dalemusser/technavigator/internal/app/system/htmlsanitize"
	"github.com/dalemusser/technavigator/internal/app/system/navigation"
	"github.com/dalemusser/technavigator/internal/app/system/viewdata"
	"github.com/dalemusser/technavigator/internal/app/system/workload"
	"github.com/dalemusser/technavigator/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type stageRef struct {
	Number int
	Label  string
}

type detailVM struct {
	viewdata.BaseVM
	Domain     models.DomainRecord
	Definition template.HTML
	Hours      string
	Stage      *stageRef
}

// NotFoundMessage is shown when a detail page is requested for an unknown id.
func NotFoundMessage(id string) string {
	return fmt.Sprintf("We couldn't find a domain with id %q. Please choose one from the list.", id)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /domains/{id} – one domain                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	back := navigation.SafeBackURL(r, navigation.DomainsBackURL)

	d, ok := workload.FindByID(h.Catalog.Domains(), id)
	if !ok {
		h.Log.Debug("unknown domain id", zap.String("id", id))
		errorsfeature.RenderNotFound(w, r, NotFoundMessage(id), back)
		return
	}

	data := detailVM{
		BaseVM:     viewdata.NewBaseVM(r, d.Name, back),
		Domain:     d,
		Definition: htmlsanitize.PrepareForDisplay(d.Definition),
		Hours:      viewdata.OptionalHours(d.ApproxHours),
	}
	data.BackURL = back
	if st, n, found := workload.StageOf(h.Catalog.Stages(), d.ID); found {
		data.Stage = &stageRef{Number: n, Label: st.Label}
	}

	templates.Render(w, r, "domains_detail", data)
}
