// Package workload implements lookup and aggregation over the domain catalog.
//
// Every function here is a pure transform of its arguments. Nothing is cached;
// the catalog never changes after load, so callers simply recompute per request.
package workload

import (
	"errors"
	"fmt"
	"math"

	"github.com/dalemusser/technavigator/internal/domain/models"
)

var (
	// ErrEmptyDataset is returned by averages over zero records.
	ErrEmptyDataset = errors.New("workload: empty dataset")

	// ErrInvalidParameter marks a caller-supplied argument that violates its
	// precondition (non-positive pace, malformed bucket set).
	ErrInvalidParameter = errors.New("workload: invalid parameter")
)

// FindByID returns the record with the given id. The bool is false when no
// record matches; that is a normal outcome, not an error.
func FindByID(records []models.DomainRecord, id string) (models.DomainRecord, bool) {
	for _, d := range records {
		if d.ID == id {
			return d, true
		}
	}
	return models.DomainRecord{}, false
}

// TotalHours sums ApproxHours over the records that have it.
func TotalHours(records []models.DomainRecord) float64 {
	var total float64
	for _, d := range records {
		if d.HasHours() {
			total += *d.ApproxHours
		}
	}
	return total
}

// CountWithHours returns how many records carry an hour estimate.
func CountWithHours(records []models.DomainRecord) int {
	n := 0
	for _, d := range records {
		if d.HasHours() {
			n++
		}
	}
	return n
}

// AverageHours is TotalHours divided by the full record count, including
// records without an estimate. It is the average workload per catalogued
// domain, not per estimated domain.
func AverageHours(records []models.DomainRecord) (float64, error) {
	if len(records) == 0 {
		return 0, ErrEmptyDataset
	}
	return TotalHours(records) / float64(len(records)), nil
}

// YearsAtPace converts a total hour figure into years at hoursPerYear.
func YearsAtPace(totalHours, hoursPerYear float64) (float64, error) {
	if !(hoursPerYear > 0) || math.IsInf(hoursPerYear, 1) {
		return 0, fmt.Errorf("%w: hours per year must be a positive number, got %v", ErrInvalidParameter, hoursPerYear)
	}
	return totalHours / hoursPerYear, nil
}

// PercentageOf returns count/total*100, or 0 when total is 0.
func PercentageOf(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
