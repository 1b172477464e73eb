package dashboard

import (
	"math"
	"net/url"

	"github.com/dalemusser/technavigator/internal/app/system/viewdata"
	"github.com/dalemusser/technavigator/internal/app/system/workload"
	"github.com/dalemusser/technavigator/internal/domain/models"
)

type bucketBar struct {
	Label   string
	Count   int
	Percent string
	Width   int
}

type breakdownRow struct {
	Name  string
	Href  string
	Time  string
	Hours string
}

type dashboardVM struct {
	DomainCount  int
	WithHours    int
	TotalHours   string
	AverageHours string
	HoursPerYear string
	Years        string
	Bars         []bucketBar
	Rows         []breakdownRow
}

func buildDashboardVM(sum workload.Summary, recs []models.DomainRecord) dashboardVM {
	vm := dashboardVM{
		DomainCount:  sum.Domains,
		WithHours:    sum.WithHours,
		TotalHours:   viewdata.Hours(sum.TotalHours) + " hours",
		AverageHours: viewdata.Hours(float64(sum.RoundedAverage)) + " hours",
		HoursPerYear: viewdata.Hours(sum.HoursPerYear),
		Years:        viewdata.OneDecimal(sum.Years),
		Bars:         make([]bucketBar, 0, len(sum.Buckets)),
		Rows:         make([]breakdownRow, 0, len(recs)),
	}
	for _, b := range sum.Buckets {
		vm.Bars = append(vm.Bars, bucketBar{
			Label:   b.Label,
			Count:   b.Count,
			Percent: viewdata.Percent(b.Percent),
			Width:   int(math.Round(b.Percent)),
		})
	}
	for _, d := range recs {
		vm.Rows = append(vm.Rows, breakdownRow{
			Name:  d.Name,
			Href:  "/domains/" + url.PathEscape(d.ID) + "?return=%2Fdashboard",
			Time:  d.EstimatedLearningTime,
			Hours: viewdata.OptionalHours(d.ApproxHours),
		})
	}
	return vm
}
