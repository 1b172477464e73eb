package domains

import (
	"github.com/dalemusser/technavigator/internal/app/system/catalog"
	"go.uber.org/zap"
)

// Handler serves the domain list and detail pages.
type Handler struct {
	Catalog *catalog.Catalog
	Log     *zap.Logger
}

func NewHandler(cat *catalog.Catalog, logger *zap.Logger) *Handler {
	return &Handler{Catalog: cat, Log: logger}
}
