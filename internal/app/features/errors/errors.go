// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/technavigator/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Heading string
	Message string
}

// Handler is the errors feature handler.
// No catalog needed; it just renders templates.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs an errors Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// NotFound renders the friendly page for unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Log.Debug("route not found", zap.String("path", r.URL.Path))
	RenderNotFound(w, r, "We couldn't find that page.", "/")
}

// RenderNotFound writes a 404 with msg and a back link to backURL.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Not found", backURL),
		Heading: "Not found",
		Message: msg,
	}
	data.BackURL = backURL
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_not_found", data)
}
