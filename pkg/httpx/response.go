package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform failure envelope every endpoint returns.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the failure envelope with the given status code.
func WriteError(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, ErrorResponse{Success: false, Message: message})
}

// WriteErrorDetail writes the failure envelope including diagnostic detail.
// Callers should only pass detail in non-production configuration.
func WriteErrorDetail(w http.ResponseWriter, code int, message, detail string) {
	WriteJSON(w, code, ErrorResponse{Success: false, Message: message, Detail: detail})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
