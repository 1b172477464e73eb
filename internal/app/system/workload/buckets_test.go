package workload

import (
	"errors"
	"testing"

	"github.com/dalemusser/technavigator/internal/domain/models"
)

func TestBucketize_DefaultBuckets(t *testing.T) {
	got, err := Bucketize(sample(), DefaultBuckets)
	if err != nil {
		t.Fatalf("Bucketize: %v", err)
	}
	want := []BucketCount{
		{Label: "Short (≤ 90h)", Count: 1},
		{Label: "Medium (91–150h)", Count: 1},
		{Label: "Long (> 150h)", Count: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("Bucketize: got %d buckets, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBucketize_Boundaries(t *testing.T) {
	recs := []models.DomainRecord{
		{ID: "at-90", ApproxHours: hours(90)},
		{ID: "just-over-90", ApproxHours: hours(90.5)},
		{ID: "at-150", ApproxHours: hours(150)},
		{ID: "over-150", ApproxHours: hours(151)},
		{ID: "zero", ApproxHours: hours(0)},
		{ID: "none"},
	}
	got, err := Bucketize(recs, DefaultBuckets)
	if err != nil {
		t.Fatalf("Bucketize: %v", err)
	}
	wantCounts := []int{2, 2, 1}
	sum := 0
	for i, c := range got {
		if c.Count != wantCounts[i] {
			t.Errorf("bucket %q: got %d, want %d", c.Label, c.Count, wantCounts[i])
		}
		sum += c.Count
	}
	if sum != CountWithHours(recs) {
		t.Errorf("bucket counts sum to %d, want %d", sum, CountWithHours(recs))
	}
}

func TestBucketize_InvalidBuckets(t *testing.T) {
	tests := []struct {
		name    string
		buckets []Bucket
	}{
		{"empty", nil},
		{"bounded tail", []Bucket{{Label: "a", Max: bound(10)}}},
		{"unbounded middle", []Bucket{{Label: "a"}, {Label: "b"}}},
		{"descending", []Bucket{{Label: "a", Max: bound(100)}, {Label: "b", Max: bound(50)}, {Label: "c"}}},
		{"equal bounds", []Bucket{{Label: "a", Max: bound(50)}, {Label: "b", Max: bound(50)}, {Label: "c"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Bucketize(sample(), tt.buckets); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("got %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestBucketsFromThresholds(t *testing.T) {
	got, err := BucketsFromThresholds([]float64{90, 150})
	if err != nil {
		t.Fatalf("BucketsFromThresholds: %v", err)
	}
	wantLabels := []string{"≤ 90h", "91–150h", "> 150h"}
	if len(got) != len(wantLabels) {
		t.Fatalf("got %d buckets, want %d", len(got), len(wantLabels))
	}
	for i, l := range wantLabels {
		if got[i].Label != l {
			t.Errorf("bucket %d label: got %q, want %q", i, got[i].Label, l)
		}
	}
	if got[2].Max != nil {
		t.Error("expected last bucket to be unbounded")
	}
	if err := ValidateBuckets(got); err != nil {
		t.Errorf("generated buckets should validate: %v", err)
	}
}

func TestBucketsFromThresholds_Invalid(t *testing.T) {
	for _, th := range [][]float64{nil, {150, 90}, {90, 90}, {-1}} {
		if _, err := BucketsFromThresholds(th); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("BucketsFromThresholds(%v): got %v, want ErrInvalidParameter", th, err)
		}
	}
}
