package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type errorJSON struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeErrorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorJSON{Error: message})
}

// writeInternalError logs the real failure and sends a generic payload;
// internal detail never reaches the client.
func writeInternalError(w http.ResponseWriter, logger *zap.Logger, err error) {
	logger.Error("request failed", zap.Error(err))
	writeErrorJSON(w, http.StatusInternalServerError, "internal error")
}

func writeUnauthenticated(w http.ResponseWriter) {
	writeErrorJSON(w, http.StatusUnauthorized, "unauthenticated")
}
