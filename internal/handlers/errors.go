package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"timeadventures/internal/service"
)

const errInternalServer = "Internal server error"

// respondJSON writes a JSON response body with the given status
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// respondWithError writes a JSON error body. The user-facing message stays
// generic; err carries the detail and goes to the server log only.
func respondWithError(w http.ResponseWriter, status int, userMsg string, err error) {
	if err != nil {
		log.Printf("%s: %v", userMsg, err)
	}
	respondJSON(w, status, map[string]string{"error": userMsg})
}

// respondServiceError maps service-layer errors onto the HTTP surface:
// validation errors become 400 with their message, everything else is a
// 500 with a generic body.
func respondServiceError(w http.ResponseWriter, err error) {
	var ve service.ValidationError
	if errors.As(err, &ve) {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": ve.Message})
		return
	}
	respondWithError(w, http.StatusInternalServerError, errInternalServer, err)
}
