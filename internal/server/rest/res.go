// Package rest is the HTTP adapter: request/response payloads, JSON
// writers, and the mapping from service errors to status codes.
package rest

import (
	"encoding/json"
	"net/http"
)

func Json(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, msg string, statusCode int) {
	Json(w, map[string]any{"status": "error", "message": msg}, statusCode)
}
