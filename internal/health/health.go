package health

import (
	"context"
	"net/http"
	"time"

	httputil "classbook/pkg/http"
	"classbook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Classes *int   `json:"classes,omitempty"`
}

// ClassCounter reports how many sessions the catalog holds.
type ClassCounter interface {
	Count(ctx context.Context) (int, error)
}

type HealthHandler struct {
	classes ClassCounter
	log     *logger.Logger
}

func NewHealthHandler(classes ClassCounter, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		classes: classes,
		log:     log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	n, err := h.classes.Count(ctx)
	if err != nil || n == 0 {
		h.log.Error("Readiness check failed",
			"classes", n,
			"error", err,
			"path", r.URL.Path,
		)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:  "ready",
		Classes: &n,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
