package importer

import (
	"strings"

	"github.com/heartmarshall/norsk-drill/internal/domain"
	"github.com/heartmarshall/norsk-drill/internal/service/vocabulary"
)

// Format names an import source layout.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts "text" or "csv" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatCSV:
		return f, nil
	}
	return "", domain.NewValidationError("format", "must be text or csv")
}

// Record is one parsed source line. Exactly one input is set, matching the
// word class the import was started for.
type Record struct {
	Line      int
	Noun      *vocabulary.NounInput
	Verb      *vocabulary.VerbInput
	Adjective *vocabulary.AdjectiveInput
	Phrase    *vocabulary.PhraseInput
}

// LineError reports a source line that could not be imported.
type LineError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// Report summarizes one import run. Skipped counts records whose natural
// key was already stored.
type Report struct {
	Total   int         `json:"total"`
	Added   int         `json:"added"`
	Skipped int         `json:"skipped"`
	Failed  int         `json:"failed"`
	Errors  []LineError `json:"errors"`
}

func (r *Report) fail(line int, msg string) {
	r.Failed++
	r.Errors = append(r.Errors, LineError{Line: line, Message: msg})
}

// SplitTranslations splits a translation cell on "|" when present,
// otherwise on ",".
func SplitTranslations(s string) []string {
	sep := ","
	if strings.Contains(s, "|") {
		sep = "|"
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func blankToNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
