// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures the behavior of SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required URL prefix. If empty, any safe URL is allowed.
	AllowedPrefix string

	// ExcludedSubpaths are rejected to avoid redirecting back onto action endpoints.
	ExcludedSubpaths []string

	// Fallback is used when no valid return URL is found.
	Fallback string
}

// SafeBackURL extracts and validates a return URL from the request.
//
// It checks the "return" query parameter, then the form value, rejects
// anything that is not a local path (open redirects), and applies the
// prefix and subpath rules from opts.
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "")
	}
	if ret == "" {
		return opts.Fallback
	}

	if opts.AllowedPrefix != "" && !strings.HasPrefix(ret, opts.AllowedPrefix) {
		return opts.Fallback
	}
	for _, excluded := range opts.ExcludedSubpaths {
		if strings.Contains(ret, excluded) {
			return opts.Fallback
		}
	}
	return ret
}

var (
	// ThemeBackURL sends a theme switch back to the page it came from.
	ThemeBackURL = BackURLOptions{
		ExcludedSubpaths: []string{"/theme", "/api/"},
		Fallback:         "/",
	}

	// DomainsBackURL returns detail pages to the (possibly filtered) list.
	DomainsBackURL = BackURLOptions{
		AllowedPrefix: "/domains",
		Fallback:      "/domains",
	}
)
