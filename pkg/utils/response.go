package utils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"freight-backend/internal/apperrors"
)

// JSON writes data as an application/json response
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Message writes a {"message": ...} body
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}

// Error maps a service error onto its HTTP status and writes the
// {"message": ...} body. Unexpected errors are logged and returned as a
// generic 500 so internals never leak to callers.
func Error(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		Message(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		Message(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		Message(w, http.StatusForbidden, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		Message(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		Message(w, http.StatusConflict, err.Error())
	default:
		log.Printf("[HTTP] internal error: %v", err)
		Message(w, http.StatusInternalServerError, "Something went wrong!")
	}
}
