package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/norsk-drill/internal/domain"
	"github.com/heartmarshall/norsk-drill/pkg/ctxutil"
)

type errorResponse struct {
	Error     string         `json:"error"`
	Exhausted bool           `json:"exhausted,omitempty"`
	Fields    []fieldMessage `json:"fields,omitempty"`
}

type fieldMessage struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps err to a status code and JSON body. subject names the
// missing thing in 404 messages ("Noun not found").
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error, subject string) {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNoneAvailable):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "No more items available", Exhausted: true})
	case errors.Is(err, domain.ErrNotFound):
		if subject == "" {
			subject = "Item"
		}
		writeError(w, http.StatusNotFound, subject+" not found")
	case errors.As(err, &ve):
		body := errorResponse{Error: ve.Error()}
		for _, fe := range ve.Errors {
			body.Fields = append(body.Fields, fieldMessage{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, body)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "Already exists")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
