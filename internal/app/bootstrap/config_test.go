package bootstrap

import (
	"testing"

	"go.uber.org/zap"
)

func validConfig() AppConfig {
	return AppConfig{
		CatalogSource:     SourceEmbedded,
		MongoURI:          "mongodb://localhost:27017",
		MongoDatabase:     "technavigator",
		HoursPerYear:      600,
		DefaultTheme:      "dark",
		APIAllowedOrigins: []string{"*"},
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"embedded defaults", func(c *AppConfig) {}, false},
		{"file without paths", func(c *AppConfig) { c.CatalogSource = SourceFile }, true},
		{"file with paths", func(c *AppConfig) {
			c.CatalogSource = SourceFile
			c.CatalogDomainsPath = "domains.json"
			c.CatalogRoadmapPath = "roadmap.yaml"
		}, false},
		{"mongo", func(c *AppConfig) { c.CatalogSource = SourceMongo }, false},
		{"mongo without database", func(c *AppConfig) {
			c.CatalogSource = SourceMongo
			c.MongoDatabase = ""
		}, true},
		{"unknown source", func(c *AppConfig) { c.CatalogSource = "s3" }, true},
		{"zero pace", func(c *AppConfig) { c.HoursPerYear = 0 }, true},
		{"negative pace", func(c *AppConfig) { c.HoursPerYear = -10 }, true},
		{"descending thresholds", func(c *AppConfig) { c.BucketThresholds = []float64{150, 90} }, true},
		{"custom thresholds", func(c *AppConfig) { c.BucketThresholds = []float64{50, 100, 200} }, false},
		{"bad theme", func(c *AppConfig) { c.DefaultTheme = "sepia" }, true},
		{"no origins", func(c *AppConfig) { c.APIAllowedOrigins = nil }, true},
		{"negative rate limit", func(c *AppConfig) { c.APIRateLimit = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(nil, cfg, zap.NewNop())
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseThresholds(t *testing.T) {
	got, err := parseThresholds(" 90, 150 ,")
	if err != nil {
		t.Fatalf("parseThresholds: %v", err)
	}
	if len(got) != 2 || got[0] != 90 || got[1] != 150 {
		t.Errorf("got %v, want [90 150]", got)
	}

	if got, err := parseThresholds(""); err != nil || len(got) != 0 {
		t.Errorf("blank: got %v, %v", got, err)
	}
	for _, bad := range []string{"ninety", "90,Inf", "NaN"} {
		if _, err := parseThresholds(bad); err == nil {
			t.Errorf("parseThresholds(%q) should fail", bad)
		}
	}
}

func TestBucketsFor(t *testing.T) {
	b, err := bucketsFor(nil)
	if err != nil || len(b) != 3 || b[0].Label != "Short (≤ 90h)" {
		t.Errorf("default buckets = %+v, %v", b, err)
	}
	b, err = bucketsFor([]float64{100})
	if err != nil || len(b) != 2 {
		t.Errorf("custom buckets = %+v, %v", b, err)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList("https://a.example, ,https://b.example")
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Errorf("splitList = %v", got)
	}
	if splitList("") != nil {
		t.Error("splitList(\"\") should be nil")
	}
}
