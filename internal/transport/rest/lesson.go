package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/samber/lo"

	"github.com/heartmarshall/norsk-drill/internal/domain"
	"github.com/heartmarshall/norsk-drill/internal/service/lesson"
)

type lessonService interface {
	List(ctx context.Context, f domain.Filter) ([]*domain.GrammarLesson, error)
	Get(ctx context.Context, id int64) (*domain.GrammarLesson, error)
	Create(ctx context.Context, input lesson.CreateInput) (*domain.GrammarLesson, error)
	Delete(ctx context.Context, id int64) error
}

// LessonHandler serves grammar lessons. List and Get are public; Create and
// Delete are mounted under /admin.
type LessonHandler struct {
	svc lessonService
	log *slog.Logger
}

// NewLessonHandler creates a LessonHandler.
func NewLessonHandler(svc lessonService, logger *slog.Logger) *LessonHandler {
	return &LessonHandler{svc: svc, log: logger.With("handler", "lesson")}
}

// List handles GET /api/lessons?tag=&level=
func (h *LessonHandler) List(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.svc.List(r.Context(), queryFilter(r))
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, lo.Map(lessons, func(l *domain.GrammarLesson, _ int) lessonJSON {
		return toLessonJSON(l)
	}))
}

// Get handles GET /api/lessons/{id}.
func (h *LessonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}
	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err, "Lesson")
		return
	}
	writeJSON(w, http.StatusOK, toLessonJSON(l))
}

// Create handles POST /admin/lessons.
func (h *LessonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req lessonRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err, "")
		return
	}
	l, err := h.svc.Create(r.Context(), lesson.CreateInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
		Level:   req.Level,
	})
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, toLessonJSON(l))
}

// Delete handles DELETE /admin/lessons/{id}.
func (h *LessonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err, "Lesson")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
