package handler

import (
	"encoding/json"
	"net/http"

	"classbook/internal/bookings/service"
	httputil "classbook/pkg/http"
	"classbook/pkg/logger"
	"classbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Name() string {
	return "bookings"
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	booking, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) GetByEmail(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.GetByEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByEmail", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByEmail", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/book", h.Create)
	router.GET("/bookings", h.GetByEmail)
}
