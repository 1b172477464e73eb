// internal/app/system/workload/summary.go
package workload

import (
	"fmt"
	"math"

	"github.com/dalemusser/technavigator/internal/domain/models"
)

// BucketShare is a bucket count together with its share of all records.
type BucketShare struct {
	BucketCount
	Percent float64 `json:"percent"`
}

// Summary is the dashboard aggregate over a record set.
type Summary struct {
	Domains        int           `json:"domains"`
	WithHours      int           `json:"withHours"`
	TotalHours     float64       `json:"totalHours"`
	AverageHours   float64       `json:"averageHours"`
	RoundedAverage int           `json:"roundedAverage"`
	HoursPerYear   float64       `json:"hoursPerYear"`
	Years          float64       `json:"years"`
	Buckets        []BucketShare `json:"buckets"`
}

// Summarize computes the full dashboard aggregate. Bucket percentages are
// taken over every record, so records without hours lower each share.
func Summarize(records []models.DomainRecord, buckets []Bucket, hoursPerYear float64) (Summary, error) {
	avg, err := AverageHours(records)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	total := TotalHours(records)
	years, err := YearsAtPace(total, hoursPerYear)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	counts, err := Bucketize(records, buckets)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}

	shares := make([]BucketShare, len(counts))
	for i, c := range counts {
		shares[i] = BucketShare{BucketCount: c, Percent: PercentageOf(c.Count, len(records))}
	}

	return Summary{
		Domains:        len(records),
		WithHours:      CountWithHours(records),
		TotalHours:     total,
		AverageHours:   avg,
		RoundedAverage: int(math.Round(avg)),
		HoursPerYear:   hoursPerYear,
		Years:          years,
		Buckets:        shares,
	}, nil
}
