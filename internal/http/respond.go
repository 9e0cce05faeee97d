package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"wallet/internal/core"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// writeValidationError maps the validation sentinels onto stable error codes
// so clients can branch without parsing messages.
func writeValidationError(w http.ResponseWriter, err error) {
	code := "invalid_input"
	switch {
	case errors.Is(err, core.ErrMissingTitle):
		code = "missing_title"
	case errors.Is(err, core.ErrInvalidAmount):
		code = "invalid_amount"
	case errors.Is(err, core.ErrInvalidCategory):
		code = "invalid_category"
	case errors.Is(err, core.ErrInvalidDate):
		code = "invalid_date"
	case errors.Is(err, core.ErrInvalidType):
		code = "invalid_type"
	}
	writeError(w, http.StatusUnprocessableEntity, code, err.Error())
}
