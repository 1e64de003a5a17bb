package handler

import (
	"net/http"

	"classbook/internal/classes/service"
	httputil "classbook/pkg/http"
	"classbook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type ClassHandler struct {
	service service.ClassService
	log     *logger.Logger
}

func NewClassHandler(service service.ClassService, log *logger.Logger) *ClassHandler {
	return &ClassHandler{
		service: service,
		log:     log,
	}
}

func (h *ClassHandler) Name() string {
	return "classes"
}

func (h *ClassHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var timezone *string
	if query := r.URL.Query(); query.Has("timezone") {
		tz := query.Get("timezone")
		timezone = &tz
	}

	views, err := h.service.List(r.Context(), timezone)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, views); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ClassHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/classes", h.List)
}
