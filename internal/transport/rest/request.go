package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

const maxJSONBody = 1 << 20

// decodeJSON reads a single JSON value from the body into dst. Syntax and
// type errors come back as validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return domain.NewValidationError("body", fmt.Sprintf("max %d bytes", maxErr.Limit))
		case errors.Is(err, io.EOF):
			return domain.NewValidationError("body", "required")
		default:
			return domain.NewValidationError("body", "invalid JSON")
		}
	}
	if dec.More() {
		return domain.NewValidationError("body", "unexpected data after JSON value")
	}
	return nil
}

// pathKind parses the {kind} path segment (nouns, verbs, adjectives, phrases).
func pathKind(r *http.Request) (domain.Kind, error) {
	return domain.ParseKind(r.PathValue("kind"))
}

// pathID parses the {id} path segment as a positive integer.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

// queryFilter reads tag, category, level, limit and offset.
// Unparseable numbers are ignored.
func queryFilter(r *http.Request) domain.Filter {
	q := r.URL.Query()
	f := domain.Filter{
		Tag:      q.Get("tag"),
		Category: q.Get("category"),
		Level:    q.Get("level"),
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil {
		f.Limit = n
	}
	if n, err := strconv.Atoi(q.Get("offset")); err == nil {
		f.Offset = n
	}
	return f.Normalized()
}

// parseExcludeIDs reads a comma separated ID list. Tokens that are not
// non-negative integers are skipped.
func parseExcludeIDs(raw string) []int64 {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	ids := lo.FilterMap(strings.Split(raw, ","), func(tok string, _ int) (int64, bool) {
		tok = strings.TrimSpace(tok)
		if tok == "" || strings.ContainsAny(tok, "+-") {
			return 0, false
		}
		id, err := strconv.ParseInt(tok, 10, 64)
		return id, err == nil
	})
	return lo.Uniq(ids)
}

// submissionFromJSON keeps string values only. Anything else, including
// null and numbers, counts as a blank answer.
func submissionFromJSON(body map[string]any) domain.Submission {
	sub := make(domain.Submission, len(body))
	for k, v := range body {
		if s, ok := v.(string); ok {
			sub[k] = s
		}
	}
	return sub
}
