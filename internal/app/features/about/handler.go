// internal/app/features/about/handler.go
package about

import (
	"net/http"

	"github.com/dalemusser/technavigator/internal/app/system/catalog"
	"github.com/dalemusser/technavigator/internal/app/system/viewdata"
	"github.com/dalemusser/technavigator/internal/app/system/workload"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the page explaining where the numbers come from.
type Handler struct {
	Catalog      *catalog.Catalog
	Buckets      []workload.Bucket
	HoursPerYear float64
	Log          *zap.Logger
}

func NewHandler(cat *catalog.Catalog, buckets []workload.Bucket, hoursPerYear float64, logger *zap.Logger) *Handler {
	return &Handler{Catalog: cat, Buckets: buckets, HoursPerYear: hoursPerYear, Log: logger}
}

type aboutVM struct {
	DomainCount   int
	WithHours     int
	StageCount    int
	HoursPerYear  string
	BucketLabels  []string
	DatasetSource string
}

func buildAboutVM(cat *catalog.Catalog, buckets []workload.Bucket, hoursPerYear float64) aboutVM {
	recs := cat.Domains()
	vm := aboutVM{
		DomainCount:   len(recs),
		WithHours:     workload.CountWithHours(recs),
		StageCount:    len(cat.Stages()),
		HoursPerYear:  viewdata.Hours(hoursPerYear),
		DatasetSource: cat.Source(),
	}
	for _, b := range buckets {
		vm.BucketLabels = append(vm.BucketLabels, b.Label)
	}
	return vm
}

func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		aboutVM
	}{
		BaseVM:  viewdata.NewBaseVM(r, "About the numbers", "/"),
		aboutVM: buildAboutVM(h.Catalog, h.Buckets, h.HoursPerYear),
	}

	templates.Render(w, r, "about", data)
}
