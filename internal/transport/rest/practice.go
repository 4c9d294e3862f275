package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

type practiceService interface {
	RandomCandidate(ctx context.Context, kind domain.Kind, filter domain.Filter, excludeIDs []int64) (domain.Item, error)
	CheckAnswer(ctx context.Context, kind domain.Kind, id int64, sub domain.Submission) (domain.Verdict, error)
}

// PracticeHandler serves the public drill endpoints.
type PracticeHandler struct {
	svc practiceService
	log *slog.Logger
}

// NewPracticeHandler creates a PracticeHandler.
func NewPracticeHandler(svc practiceService, logger *slog.Logger) *PracticeHandler {
	return &PracticeHandler{svc: svc, log: logger.With("handler", "practice")}
}

// Random returns one item the learner has not seen yet.
// GET /api/{kind}/random?exclude_ids=1,2&tag=&category=&level=
func (h *PracticeHandler) Random(w http.ResponseWriter, r *http.Request) {
	kind, err := pathKind(r)
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}

	excluded := parseExcludeIDs(r.URL.Query().Get("exclude_ids"))
	item, err := h.svc.RandomCandidate(r.Context(), kind, queryFilter(r), excluded)
	if err != nil {
		handleError(h.log, w, r, err, kind.Title())
		return
	}
	writeJSON(w, http.StatusOK, toItemJSON(item))
}

// Check grades a submitted answer.
// POST /api/{kind}/{id}/check
func (h *PracticeHandler) Check(w http.ResponseWriter, r *http.Request) {
	kind, err := pathKind(r)
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err, kind.Title())
		return
	}

	var body map[string]any
	if err := decodeJSON(w, r, &body); err != nil {
		handleError(h.log, w, r, err, kind.Title())
		return
	}

	verdict, err := h.svc.CheckAnswer(r.Context(), kind, id, submissionFromJSON(body))
	if err != nil {
		handleError(h.log, w, r, err, kind.Title())
		return
	}
	writeJSON(w, http.StatusOK, toVerdictJSON(verdict))
}
