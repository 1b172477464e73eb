package dashboard

import (
	"net/http"

	errorsfeature "github.com/dalemusser/technavigator/internal/app/features/errors"
	"github.com/dalemusser/technavigator/internal/app/system/catalog"
	"github.com/dalemusser/technavigator/internal/app/system/viewdata"
	"github.com/dalemusser/technavigator/internal/app/system/workload"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the workload dashboard.
type Handler struct {
	Catalog      *catalog.Catalog
	Buckets      []workload.Bucket
	HoursPerYear float64
	ErrLog       *errorsfeature.ErrorLogger
	Log          *zap.Logger
}

func NewHandler(cat *catalog.Catalog, buckets []workload.Bucket, hoursPerYear float64, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:      cat,
		Buckets:      buckets,
		HoursPerYear: hoursPerYear,
		ErrLog:       errLog,
		Log:          logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard – aggregate workload                                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	recs := h.Catalog.Domains()
	sum, err := workload.Summarize(recs, h.Buckets, h.HoursPerYear)
	if err != nil {
		h.ErrLog.HandleServerError(w, r, err, "dashboard: summarize workload")
		return
	}

	data := struct {
		viewdata.BaseVM
		dashboardVM
	}{
		BaseVM:      viewdata.NewBaseVM(r, "Dashboard", "/"),
		dashboardVM: buildDashboardVM(sum, recs),
	}

	templates.Render(w, r, "dashboard", data)
}
