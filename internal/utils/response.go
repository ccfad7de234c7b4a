package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"NUTRINO_BACK-END/internal/apperr"
	"NUTRINO_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes the standard error envelope
func WriteErrorResponse(w http.ResponseWriter, status int, message, detail string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

// WriteAppError maps err to its HTTP status and logs server side failures
// on the request logger.
func WriteAppError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperr.As(err)
	status := appErr.Status()

	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().
			Err(appErr.Err).
			Str("kind", appErr.Kind.String()).
			Msg(appErr.Message)
	} else {
		zerolog.Ctx(r.Context()).Debug().
			Str("kind", appErr.Kind.String()).
			Int("status", status).
			Msg(appErr.Message)
	}

	WriteErrorResponse(w, status, appErr.Message, appErr.Detail())
}
