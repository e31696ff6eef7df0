package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
)

const (
	validationMessage = "One or more validation errors occurred."
	internalMessage   = "An internal server error has occurred."
)

type errorDetail struct {
	PropertyName string `json:"propertyName"`
	ErrorMessage string `json:"errorMessage"`
}

type errorBody struct {
	Error   string        `json:"error"`
	Details []errorDetail `json:"details"`
}

// writeError translates an application error into its HTTP status and body.
// Unclassified errors are logged in full and answered with an opaque 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := classify(err)
	if status == http.StatusInternalServerError {
		common.LoggerFromContext(r.Context()).Error("Unhandled error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}
	writeJSON(w, status, body)
}

func classify(err error) (int, errorBody) {
	var validationErr *shared.ValidationError
	if errors.As(err, &validationErr) {
		details := make([]errorDetail, 0, len(validationErr.Failures))
		for _, f := range validationErr.Failures {
			details = append(details, errorDetail{PropertyName: f.Field, ErrorMessage: f.Message})
		}
		status := http.StatusBadRequest
		if validationErr.IsConflict() {
			status = http.StatusConflict
		}
		return status, errorBody{Error: validationMessage, Details: details}
	}

	switch {
	case errors.Is(err, shared.ErrConflict):
		return http.StatusConflict, errorBody{Error: err.Error()}
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound, errorBody{Error: err.Error()}
	case errors.Is(err, shared.ErrUnauthorized):
		return http.StatusUnauthorized, errorBody{Error: err.Error()}
	case errors.Is(err, shared.ErrForbidden):
		return http.StatusForbidden, errorBody{Error: err.Error()}
	default:
		return http.StatusInternalServerError, errorBody{Error: internalMessage}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}
