package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/norsk-drill/internal/service/search"
)

type searcher interface {
	Search(ctx context.Context, q string) (search.Result, error)
}

// SearchHandler serves GET /api/search.
type SearchHandler struct {
	svc searcher
	log *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searcher, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: logger.With("handler", "search")}
}

// Search handles GET /api/search?q=...
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, toSearchJSON(res))
}
