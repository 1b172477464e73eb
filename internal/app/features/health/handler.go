package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/technavigator/internal/app/system/catalog"
	"github.com/dalemusser/technavigator/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks. Client is nil when
// the catalog is not served from MongoDB.
type Handler struct {
	Client  *mongo.Client
	Catalog *catalog.Catalog
	Log     *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(client *mongo.Client, cat *catalog.Catalog, logger *zap.Logger) *Handler {
	return &Handler{
		Client:  client,
		Catalog: cat,
		Log:     logger,
	}
}

type catalogStatus struct {
	Domains int    `json:"domains"`
	Stages  int    `json:"stages"`
	Source  string `json:"source"`
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string        `json:"status"`
	Catalog  catalogStatus `json:"catalog"`
	Database string        `json:"database"`
	Message  string        `json:"message,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "catalog":{"domains":15,"stages":5,"source":"embedded"}, "database":"not configured" }
//
// On DB failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status: "ok",
		Catalog: catalogStatus{
			Domains: h.Catalog.Len(),
			Stages:  len(h.Catalog.Stages()),
			Source:  h.Catalog.Source(),
		},
		Database: "not configured",
	}

	if h.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
		defer cancel()

		if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
			h.Log.Error("health-check: mongo ping failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			resp.Status = "error"
			resp.Database = "disconnected"
			resp.Message = "Database unavailable"
			resp.Error = err.Error()
			_ = json.NewEncoder(w).Encode(resp)
			return
		}
		resp.Database = "connected"
	}

	_ = json.NewEncoder(w).Encode(resp)
}
