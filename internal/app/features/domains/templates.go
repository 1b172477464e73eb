// internal/app/features/domains/templates.go
package domains

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "domains",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
