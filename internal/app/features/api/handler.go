// Package api serves the catalog and its aggregates as read-only JSON.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/technavigator/internal/app/system/catalog"
	"github.com/dalemusser/technavigator/internal/app/system/workload"
	"github.com/dalemusser/technavigator/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler holds the catalog and aggregation settings for the JSON API.
type Handler struct {
	Catalog      *catalog.Catalog
	Buckets      []workload.Bucket
	HoursPerYear float64
	Log          *zap.Logger
}

func NewHandler(cat *catalog.Catalog, buckets []workload.Bucket, hoursPerYear float64, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:      cat,
		Buckets:      buckets,
		HoursPerYear: hoursPerYear,
		Log:          logger,
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

type stageResponse struct {
	ID          string                `json:"id"`
	Number      int                   `json:"number"`
	Label       string                `json:"label"`
	Description string                `json:"description"`
	Domains     []models.DomainRecord `json:"domains"`
	TotalHours  float64               `json:"totalHours"`
	TimeHint    string                `json:"timeHint"`
}

// ListDomains handles GET /api/domains.
func (h *Handler) ListDomains(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Catalog.Domains())
}

// GetDomain handles GET /api/domains/{id}.
//
// Unknown ids: 404 and
//
//	{ "error":"not_found", "id":"…" }
func (h *Handler) GetDomain(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d, ok := workload.FindByID(h.Catalog.Domains(), id)
	if !ok {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "not_found", ID: id})
		return
	}
	h.writeJSON(w, http.StatusOK, d)
}

// Roadmap handles GET /api/roadmap. Unresolved stage entries are omitted.
func (h *Handler) Roadmap(w http.ResponseWriter, r *http.Request) {
	projections := workload.ProjectStages(h.Catalog.Stages(), h.Catalog.Domains(), catalog.UnresolvedLogger(h.Log))
	out := make([]stageResponse, 0, len(projections))
	for _, p := range projections {
		out = append(out, stageResponse{
			ID:          p.Stage.ID,
			Number:      p.Number,
			Label:       p.Stage.Label,
			Description: p.Stage.Description,
			Domains:     p.Records,
			TotalHours:  p.TotalHours,
			TimeHint:    p.TimeHint,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

// Summary handles GET /api/summary.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := workload.Summarize(h.Catalog.Domains(), h.Buckets, h.HoursPerYear)
	if err != nil {
		h.Log.Error("api: summarize workload", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal", Message: "could not compute summary"})
		return
	}
	h.writeJSON(w, http.StatusOK, sum)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Warn("api: write response", zap.Error(err))
	}
}
