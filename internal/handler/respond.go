package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// messageResponse is the uniform error payload: {"message": "..."}.
// Messages are deliberately generic; details stay in the server logs.
type messageResponse struct {
	Message string `json:"message"`
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent; all we can do is log.
		slog.Error("encode response", "error", err)
	}
}

// respondMessage writes the standard {"message": ...} error payload.
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, messageResponse{Message: message})
}

// respondServerError logs the underlying error and masks it behind the
// generic 500 payload. No partial results accompany a failure.
func respondServerError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	respondMessage(w, http.StatusInternalServerError, "Server error")
}
