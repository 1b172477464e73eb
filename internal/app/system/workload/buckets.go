// internal/app/system/workload/buckets.go
package workload

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dalemusser/technavigator/internal/domain/models"
)

// Bucket is a labelled hour range. A record falls in the bucket when its
// hours are ≤ Max and greater than the previous bucket's Max. A nil Max is
// unbounded and is only valid for the last bucket.
type Bucket struct {
	Label string   `json:"label"`
	Max   *float64 `json:"max,omitempty"`
}

// BucketCount is the result row for one bucket.
type BucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

func bound(v float64) *float64 { return &v }

// DefaultBuckets splits domains into short, medium and long workloads.
var DefaultBuckets = []Bucket{
	{Label: "Short (≤ 90h)", Max: bound(90)},
	{Label: "Medium (91–150h)", Max: bound(150)},
	{Label: "Long (> 150h)"},
}

// BucketsFromThresholds builds an ordered bucket set with one bucket per
// threshold plus an unbounded tail. Thresholds must be strictly ascending.
func BucketsFromThresholds(thresholds []float64) ([]Bucket, error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("%w: at least one threshold is required", ErrInvalidParameter)
	}
	out := make([]Bucket, 0, len(thresholds)+1)
	for i, t := range thresholds {
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			return nil, fmt.Errorf("%w: threshold %v is not a finite non-negative number", ErrInvalidParameter, t)
		}
		var label string
		if i == 0 {
			label = "≤ " + formatHours(t) + "h"
		} else {
			prev := thresholds[i-1]
			if t <= prev {
				return nil, fmt.Errorf("%w: thresholds must be ascending (%v after %v)", ErrInvalidParameter, t, prev)
			}
			lo := prev
			if lo == math.Trunc(lo) {
				lo++
			}
			label = formatHours(lo) + "–" + formatHours(t) + "h"
		}
		out = append(out, Bucket{Label: label, Max: bound(t)})
	}
	out = append(out, Bucket{Label: "> " + formatHours(thresholds[len(thresholds)-1]) + "h"})
	return out, nil
}

// ValidateBuckets checks that bounds ascend strictly and that only the
// final bucket is unbounded.
func ValidateBuckets(buckets []Bucket) error {
	if len(buckets) == 0 {
		return fmt.Errorf("%w: no buckets", ErrInvalidParameter)
	}
	for i, b := range buckets {
		last := i == len(buckets)-1
		if b.Max == nil {
			if !last {
				return fmt.Errorf("%w: bucket %q is unbounded but not last", ErrInvalidParameter, b.Label)
			}
			continue
		}
		if last {
			return fmt.Errorf("%w: last bucket %q must be unbounded", ErrInvalidParameter, b.Label)
		}
		if math.IsNaN(*b.Max) {
			return fmt.Errorf("%w: bucket %q has NaN bound", ErrInvalidParameter, b.Label)
		}
		if i > 0 && *b.Max <= *buckets[i-1].Max {
			return fmt.Errorf("%w: bucket %q bound does not ascend", ErrInvalidParameter, b.Label)
		}
	}
	return nil
}

// Bucketize counts records with an hour estimate into the first bucket
// whose bound admits them. Records without hours appear in no bucket, so the
// counts sum to CountWithHours(records).
func Bucketize(records []models.DomainRecord, buckets []Bucket) ([]BucketCount, error) {
	if err := ValidateBuckets(buckets); err != nil {
		return nil, err
	}
	out := make([]BucketCount, len(buckets))
	for i, b := range buckets {
		out[i].Label = b.Label
	}
	for _, d := range records {
		if !d.HasHours() {
			continue
		}
		h := *d.ApproxHours
		for i, b := range buckets {
			if b.Max == nil || h <= *b.Max {
				out[i].Count++
				break
			}
		}
	}
	return out, nil
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
