package theme

import (
	"net/http"
	"strings"

	"github.com/dalemusser/technavigator/internal/app/system/limits"
	"github.com/dalemusser/technavigator/internal/app/system/navigation"
	"github.com/dalemusser/technavigator/internal/app/system/prefs"
	"go.uber.org/zap"
)

// Handler stores the visitor's theme choice.
type Handler struct {
	Prefs *prefs.Manager
	Log   *zap.Logger
}

func NewHandler(pm *prefs.Manager, logger *zap.Logger) *Handler {
	return &Handler{Prefs: pm, Log: logger}
}

// Set handles POST /theme with theme=light|dark|toggle and an optional
// return path. It answers 303 to the return path, or 400 for unknown values.
func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxThemeFormSize)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	p := h.Prefs.Load(r)
	choice := strings.ToLower(strings.TrimSpace(r.PostFormValue("theme")))
	if choice == "toggle" {
		p.Theme = prefs.Opposite(p.Theme)
	} else if t, ok := prefs.NormalizeTheme(choice); ok {
		p.Theme = t
	} else {
		h.Log.Debug("rejected theme value", zap.String("theme", choice))
		http.Error(w, "unknown theme", http.StatusBadRequest)
		return
	}

	if err := h.Prefs.Save(w, r, p); err != nil {
		h.Log.Error("save theme preference", zap.Error(err))
		http.Error(w, "could not save preference", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, navigation.SafeBackURL(r, navigation.ThemeBackURL), http.StatusSeeOther)
}
