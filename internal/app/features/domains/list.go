package domains

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/technavigator/internal/app/system/viewdata"
	"github.com/dalemusser/technavigator/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/text"
)

type listVM struct {
	viewdata.BaseVM
	Query   string
	Total   int
	Showing int
	Cards   []viewdata.DomainCard
}

// Filter keeps records whose name, short description or a subtopic contains
// q, ignoring case and diacritics. An empty q keeps everything.
func Filter(recs []models.DomainRecord, q string) []models.DomainRecord {
	needle := text.Fold(strings.TrimSpace(q))
	if needle == "" {
		return recs
	}
	out := make([]models.DomainRecord, 0, len(recs))
	for _, d := range recs {
		if matches(d, needle) {
			out = append(out, d)
		}
	}
	return out
}

func matches(d models.DomainRecord, needle string) bool {
	if strings.Contains(text.Fold(d.Name), needle) || strings.Contains(text.Fold(d.ShortDescription), needle) {
		return true
	}
	for _, s := range d.KeySubtopics {
		if strings.Contains(text.Fold(s), needle) {
			return true
		}
	}
	return false
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /domains – card list, optional ?q= filter                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Get(r, "q")
	all := h.Catalog.Domains()
	shown := Filter(all, q)

	returnTo := ""
	if strings.TrimSpace(q) != "" {
		returnTo = r.URL.Path + "?q=" + url.QueryEscape(q)
	}

	data := listVM{
		BaseVM:  viewdata.NewBaseVM(r, "Domains", "/"),
		Query:   q,
		Total:   len(all),
		Showing: len(shown),
		Cards:   viewdata.NewDomainCards(shown, returnTo),
	}

	templates.Render(w, r, "domains_list", data)
}
