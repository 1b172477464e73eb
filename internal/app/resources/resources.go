// internal/app/resources/resources.go
package resources

import (
	"embed"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

// Embed the shared template files.
//
//go:embed templates/*.gohtml
var FS embed.FS

// Data holds the bundled catalog dataset.
//
//go:embed data/domains.json data/roadmap.yaml
var Data embed.FS

const (
	DomainsFile = "data/domains.json"
	RoadmapFile = "data/roadmap.yaml"
)

var registerOnce sync.Once

// LoadSharedTemplates registers the layout and partials used by every feature.
func LoadSharedTemplates() {
	registerOnce.Do(func() {
		templates.Register(templates.Set{
			Name:     "shared",
			FS:       FS,
			Patterns: []string{"templates/*.gohtml"},
		})
	})
}

// DomainsJSON returns the bundled domain dataset.
func DomainsJSON() ([]byte, error) {
	return Data.ReadFile(DomainsFile)
}

// RoadmapYAML returns the bundled roadmap stage definitions.
func RoadmapYAML() ([]byte, error) {
	return Data.ReadFile(RoadmapFile)
}
