package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/heartmarshall/norsk-drill/internal/domain"
	"github.com/heartmarshall/norsk-drill/internal/service/importer"
	"github.com/heartmarshall/norsk-drill/internal/service/vocabulary"
)

type vocabularyService interface {
	Get(ctx context.Context, kind domain.Kind, id int64) (domain.Item, error)
	List(ctx context.Context, kind domain.Kind, f domain.Filter) ([]domain.Item, error)
	Delete(ctx context.Context, kind domain.Kind, id int64) error
	Stats(ctx context.Context) (domain.Counts, error)
	PhraseCategories(ctx context.Context) ([]string, error)

	CreateNoun(ctx context.Context, input vocabulary.NounInput) (*domain.Noun, domain.CreateOutcome, error)
	CreateVerb(ctx context.Context, input vocabulary.VerbInput) (*domain.Verb, domain.CreateOutcome, error)
	CreateAdjective(ctx context.Context, input vocabulary.AdjectiveInput) (*domain.Adjective, domain.CreateOutcome, error)
	CreatePhrase(ctx context.Context, input vocabulary.PhraseInput) (*domain.Phrase, domain.CreateOutcome, error)

	UpdateNoun(ctx context.Context, id int64, params domain.NounUpdateParams) (*domain.Noun, error)
	UpdateVerb(ctx context.Context, id int64, params domain.VerbUpdateParams) (*domain.Verb, error)
	UpdateAdjective(ctx context.Context, id int64, params domain.AdjectiveUpdateParams) (*domain.Adjective, error)
	UpdatePhrase(ctx context.Context, id int64, params domain.PhraseUpdateParams) (*domain.Phrase, error)
}

type importService interface {
	Import(ctx context.Context, kind domain.Kind, format importer.Format, r io.Reader) (importer.Report, error)
}

// AdminHandler serves the vocabulary management endpoints. Access control
// happens in middleware; every route here assumes an admin context.
type AdminHandler struct {
	vocab          vocabularyService
	imports        importService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewAdminHandler creates an AdminHandler. maxUploadBytes caps import
// request bodies.
func NewAdminHandler(vocab vocabularyService, imports importService, maxUploadBytes int64, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		vocab:          vocab,
		imports:        imports,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "admin"),
	}
}

type createResponse struct {
	Duplicate bool `json:"duplicate"`
	Item      any  `json:"item"`
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.vocab.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// Categories handles GET /api/phrases/categories.
func (h *AdminHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.vocab.PhraseCategories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}
	if cats == nil {
		cats = []string{}
	}
	writeJSON(w, http.StatusOK, cats)
}

// List handles GET /admin/{kind}?tag=&category=&level=&limit=&offset=
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, err := pathKind(r)
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}
	items, err := h.vocab.List(r.Context(), kind, queryFilter(r))
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, toItemsJSON(items))
}

// Get handles GET /admin/{kind}/{id}.
func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := h.kindAndID(w, r)
	if !ok {
		return
	}
	item, err := h.vocab.Get(r.Context(), kind, id)
	if err != nil {
		handleError(h.log, w, r, err, kind.Title())
		return
	}
	writeJSON(w, http.StatusOK, toItemJSON(item))
}

// Delete handles DELETE /admin/{kind}/{id}.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := h.kindAndID(w, r)
	if !ok {
		return
	}
	if err := h.vocab.Delete(r.Context(), kind, id); err != nil {
		handleError(h.log, w, r, err, kind.Title())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Create handles POST /admin/{kind}. A fresh record answers 201; an existing
// record with the same natural key answers 200 with duplicate set.
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	kind, err := pathKind(r)
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}

	var (
		item    domain.Item
		outcome domain.CreateOutcome
	)
	switch kind {
	case domain.KindNoun:
		var req nounRequest
		if err = decodeJSON(w, r, &req); err == nil {
			item, outcome, err = asCreated(h.vocab.CreateNoun(r.Context(), vocabulary.NounInput{
				Article:      deref(req.Article),
				Word:         deref(req.Word),
				Definite:     req.Definite,
				Plural:       req.Plural,
				Translations: req.Translations,
				Tags:         req.Tags,
				Level:        req.Level,
			}))
		}
	case domain.KindVerb:
		var req verbRequest
		if err = decodeJSON(w, r, &req); err == nil {
			item, outcome, err = asCreated(h.vocab.CreateVerb(r.Context(), vocabulary.VerbInput{
				Infinitive:        deref(req.Infinitive),
				Presens:           req.Presens,
				Preteritum:        req.Preteritum,
				PerfectParticiple: req.PerfectParticiple,
				Group:             req.Group,
				GroupDescription:  req.GroupDescription,
				Translations:      req.Translations,
				Tags:              req.Tags,
				Level:             req.Level,
			}))
		}
	case domain.KindAdjective:
		var req adjectiveRequest
		if err = decodeJSON(w, r, &req); err == nil {
			item, outcome, err = asCreated(h.vocab.CreateAdjective(r.Context(), vocabulary.AdjectiveInput{
				Base:             deref(req.Base),
				Neuter:           req.Neuter,
				Plural:           req.Plural,
				Comparative:      req.Comparative,
				Superlative:      req.Superlative,
				Group:            req.Group,
				GroupDescription: req.GroupDescription,
				Translations:     req.Translations,
				Tags:             req.Tags,
				Level:            req.Level,
			}))
		}
	case domain.KindPhrase:
		var req phraseRequest
		if err = decodeJSON(w, r, &req); err == nil {
			item, outcome, err = asCreated(h.vocab.CreatePhrase(r.Context(), vocabulary.PhraseInput{
				Norwegian:    deref(req.Norwegian),
				Category:     req.Category,
				Notes:        req.Notes,
				Translations: req.Translations,
				Tags:         req.Tags,
				Level:        req.Level,
			}))
		}
	}
	if err != nil {
		handleError(h.log, w, r, err, kind.Title())
		return
	}

	status := http.StatusCreated
	if outcome == domain.OutcomeDuplicate {
		status = http.StatusOK
	}
	writeJSON(w, status, createResponse{Duplicate: outcome == domain.OutcomeDuplicate, Item: toItemJSON(item)})
}

// Update handles PATCH /admin/{kind}/{id}. Absent keys are left untouched;
// an empty string clears an optional field.
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := h.kindAndID(w, r)
	if !ok {
		return
	}

	var (
		item domain.Item
		err  error
	)
	switch kind {
	case domain.KindNoun:
		var req nounRequest
		if err = decodeJSON(w, r, &req); err == nil {
			item, err = asItem(h.vocab.UpdateNoun(r.Context(), id, domain.NounUpdateParams{
				Article:      req.Article,
				Word:         req.Word,
				Definite:     req.Definite,
				Plural:       req.Plural,
				Translations: req.Translations,
				Tags:         req.Tags,
				Level:        req.Level,
			}))
		}
	case domain.KindVerb:
		var req verbRequest
		if err = decodeJSON(w, r, &req); err == nil {
			item, err = asItem(h.vocab.UpdateVerb(r.Context(), id, domain.VerbUpdateParams{
				Infinitive:        req.Infinitive,
				Presens:           req.Presens,
				Preteritum:        req.Preteritum,
				PerfectParticiple: req.PerfectParticiple,
				Group:             req.Group,
				GroupDescription:  req.GroupDescription,
				Translations:      req.Translations,
				Tags:              req.Tags,
				Level:             req.Level,
			}))
		}
	case domain.KindAdjective:
		var req adjectiveRequest
		if err = decodeJSON(w, r, &req); err == nil {
			item, err = asItem(h.vocab.UpdateAdjective(r.Context(), id, domain.AdjectiveUpdateParams{
				Base:             req.Base,
				Neuter:           req.Neuter,
				Plural:           req.Plural,
				Comparative:      req.Comparative,
				Superlative:      req.Superlative,
				Group:            req.Group,
				GroupDescription: req.GroupDescription,
				Translations:     req.Translations,
				Tags:             req.Tags,
				Level:            req.Level,
			}))
		}
	case domain.KindPhrase:
		var req phraseRequest
		if err = decodeJSON(w, r, &req); err == nil {
			item, err = asItem(h.vocab.UpdatePhrase(r.Context(), id, domain.PhraseUpdateParams{
				Norwegian:    req.Norwegian,
				Category:     req.Category,
				Notes:        req.Notes,
				Translations: req.Translations,
				Tags:         req.Tags,
				Level:        req.Level,
			}))
		}
	}
	if err != nil {
		handleError(h.log, w, r, err, kind.Title())
		return
	}
	writeJSON(w, http.StatusOK, toItemJSON(item))
}

// ImportText handles POST /admin/{kind}/import-text. The text block is the
// raw body, or the text_data field of a form.
func (h *AdminHandler) ImportText(w http.ResponseWriter, r *http.Request) {
	h.runImport(w, r, importer.FormatText, func(r *http.Request) (io.Reader, func(), error) {
		switch mediaType(r) {
		case "multipart/form-data":
			if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
				return nil, nil, err
			}
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return nil, nil, err
			}
		default:
			return r.Body, func() {}, nil
		}
		return strings.NewReader(r.FormValue("text_data")), func() {}, nil
	})
}

// ImportCSV handles POST /admin/{kind}/import-csv. The CSV comes from the
// multipart field "file" or from the raw body.
func (h *AdminHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	h.runImport(w, r, importer.FormatCSV, func(r *http.Request) (io.Reader, func(), error) {
		if mediaType(r) == "multipart/form-data" {
			f, _, err := r.FormFile("file")
			if err != nil {
				if errors.Is(err, http.ErrMissingFile) {
					return nil, nil, domain.NewValidationError("file", "required")
				}
				return nil, nil, err
			}
			return f, func() { _ = f.Close() }, nil
		}
		return r.Body, func() {}, nil
	})
}

type sourceFunc func(r *http.Request) (io.Reader, func(), error)

func (h *AdminHandler) runImport(w http.ResponseWriter, r *http.Request, format importer.Format, source sourceFunc) {
	kind, err := pathKind(r)
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	src, done, err := source(r)
	if err != nil {
		h.uploadError(w, r, err)
		return
	}
	defer done()

	report, err := h.imports.Import(r.Context(), kind, format, src)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.uploadError(w, r, err)
			return
		}
		h.log.WarnContext(r.Context(), "import aborted",
			slog.String("kind", kind.String()),
			slog.Int("added", report.Added),
			slog.String("error", err.Error()),
		)
		handleError(h.log, w, r, err, "")
		return
	}
	if report.Errors == nil {
		report.Errors = []importer.LineError{}
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *AdminHandler) uploadError(w http.ResponseWriter, r *http.Request, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("Upload exceeds %d bytes", maxErr.Limit))
		return
	}
	if errors.Is(err, domain.ErrValidation) {
		handleError(h.log, w, r, err, "")
		return
	}
	writeError(w, http.StatusBadRequest, "Invalid upload")
}

func (h *AdminHandler) kindAndID(w http.ResponseWriter, r *http.Request) (domain.Kind, int64, bool) {
	kind, err := pathKind(r)
	if err != nil {
		handleError(h.log, w, r, err, "")
		return "", 0, false
	}
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err, kind.Title())
		return "", 0, false
	}
	return kind, id, true
}

func asCreated[T domain.Item](item T, outcome domain.CreateOutcome, err error) (domain.Item, domain.CreateOutcome, error) {
	if err != nil {
		return nil, "", err
	}
	return item, outcome, nil
}

func asItem[T domain.Item](item T, err error) (domain.Item, error) {
	if err != nil {
		return nil, err
	}
	return item, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func mediaType(r *http.Request) string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}
