package errors

import (
	"net/http"

	"github.com/dalemusser/technavigator/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ErrorLogger logs server-side failures and renders the 500 page.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// HandleServerError logs err with request context and renders a generic
// 500 page. msg is logged, never shown.
func (el *ErrorLogger) HandleServerError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	el.Log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Something went wrong", "/"),
		Heading: "Something went wrong",
		Message: "We couldn't build this page. Please try again later.",
	}
	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_server", data)
}
