package http

import (
	"encoding/json"
	"net/http"

	apperrors "classbook/pkg/errors"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

// WriteJSON encodes data as the response body. The error is returned so the
// caller can log it; nothing can be recovered once the header is written.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)

	statusCode := appErr.StatusCode()
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}

	resp := ErrorResponse{
		Error:   appErr.Message,
		Details: appErr.Details,
	}
	if appErr.Code == apperrors.CodeInternal {
		resp = ErrorResponse{Error: "Internal server error"}
	}

	return WriteJSON(w, statusCode, resp)
}

func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, data)
}

func WriteCreated(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusCreated, data)
}
