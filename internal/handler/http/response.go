package http

import (
	"errors"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/utils"
	"github.com/taskdeck/taskdeck/internal/validators"
	"github.com/taskdeck/taskdeck/models"
)

// writeSuccess writes a success envelope with the given payload.
func writeSuccess(w http.ResponseWriter, status int, data any, message, correlationID string) {
	utils.WriteJSON(w, models.SuccessEnvelope(data, message, correlationID), status)
}

// writeError maps err to an HTTP status and writes a failure envelope.
// Internal errors are reduced to a generic message so storage or driver
// detail never reaches the client.
func writeError(w http.ResponseWriter, err error, message, correlationID string) {
	status := statusFromError(err)

	var errs []string
	var vErr *validators.ValidationError
	switch {
	case errors.As(err, &vErr):
		errs = vErr.Messages()
	case status == http.StatusInternalServerError:
		errs = []string{http.StatusText(http.StatusInternalServerError)}
	default:
		errs = []string{err.Error()}
	}

	utils.WriteJSON(w, models.ErrorEnvelope(message, errs, correlationID), status)
}
