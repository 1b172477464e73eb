// internal/app/system/limits/limits.go
package limits

// Request body size limits. The site is read-only apart from the theme form,
// so these stay small.
const (
	// MaxThemeFormSize bounds POST /theme (a theme name and a return path).
	MaxThemeFormSize = 4 << 10 // 4 KB
)
