// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"strings"
	"sync"

	"github.com/dalemusser/technavigator/internal/app/system/prefs"
	"github.com/dalemusser/technavigator/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

const (
	ViewportMobile  = "mobile"
	ViewportDesktop = "desktop"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	data := struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	}
type BaseVM struct {
	SiteName string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// Presentation context, chosen by the shell and never read by the catalog.
	Theme    string
	Viewport string
}

var (
	mu       sync.RWMutex
	siteName = models.DefaultSiteName
)

// SetSiteName overrides the site name shown in the layout. Call it once at
// startup from bootstrap; an empty name restores the default.
func SetSiteName(name string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(name) == "" {
		name = models.DefaultSiteName
	}
	siteName = name
}

// SiteName returns the configured site name.
func SiteName() string {
	mu.RLock()
	defer mu.RUnlock()
	return siteName
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request (theme comes from prefs middleware)
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	return BaseVM{
		SiteName:    SiteName(),
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		Theme:       prefs.FromRequest(r).Theme,
		Viewport:    ViewportOf(r),
	}
}

// ViewportOf classifies the client as mobile or desktop. The client hint wins
// when present; otherwise the User-Agent is checked for the "Mobi" token.
func ViewportOf(r *http.Request) string {
	switch r.Header.Get("Sec-CH-UA-Mobile") {
	case "?1":
		return ViewportMobile
	case "?0":
		return ViewportDesktop
	}
	if strings.Contains(r.UserAgent(), "Mobi") {
		return ViewportMobile
	}
	return ViewportDesktop
}
