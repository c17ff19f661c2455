package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"legalnav-api/internal/logging"
)

// Request bodies larger than this are rejected outright.
const maxRequestBody = 1 << 20

func decodeJSON(r *http.Request, dst any) error {
	body := io.LimitReader(r.Body, maxRequestBody)
	return json.NewDecoder(body).Decode(dst)
}

// errorBody is the error shape every endpoint returns.
type errorBody struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
	Timestamp string `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

// writeError emits the consistent error body with an HTTP_<status> code.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.writeErrorCode(w, r, status, message, fmt.Sprintf("HTTP_%d", status))
}

func (h *Handler) writeErrorCode(w http.ResponseWriter, r *http.Request, status int, message, code string) {
	logger := loggerFromContext(r, h.logger)
	writeJSON(w, status, errorBody{
		Success:   false,
		Error:     message,
		ErrorCode: code,
		Timestamp: h.timestamp(),
	}, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
