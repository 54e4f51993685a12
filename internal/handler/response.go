package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"chirp-api/internal/model"
	"chirp-api/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError is the single response boundary for failures: known error kinds
// map to their status and message, anything else becomes a fixed internal
// error so no internal detail leaks.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		status := apiErr.Kind.HTTPStatus()
		writeJSON(w, status, model.APIError{
			Status:  status,
			Message: apiErr.Message,
			Errors:  apiErr.Fields,
		})
		return
	}

	slog.Error("unhandled error in writeError", "error", err.Error())
	writeJSON(w, http.StatusInternalServerError, model.APIError{
		Status:  http.StatusInternalServerError,
		Message: "An unknown error occurred.",
	})
}
