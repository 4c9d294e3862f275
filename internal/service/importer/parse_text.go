package importer

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/norsk-drill/internal/domain"
	"github.com/heartmarshall/norsk-drill/internal/service/vocabulary"
)

// Separators between the Norwegian side and the translations, tried in
// order. The hyphen needs surrounding spaces so hyphenated words survive.
var textSeparators = []string{"–", "\u2014", " - "}

// ParseText parses one record per line:
//
//	noun:      en hus – дом, къща
//	verb:      å være, er, var, har vært – съм
//	adjective: stor, stort, store – голям
//	phrase:    god morgen – добро утро
//
// Blank lines are ignored. Lines that cannot be parsed are returned as
// line errors; they do not stop the parse.
func ParseText(kind domain.Kind, text string) ([]Record, []LineError) {
	var (
		records []Record
		errs    []LineError
	)

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lineNo := i + 1

		left, right, ok := splitLine(line)
		if !ok {
			errs = append(errs, LineError{Line: lineNo, Message: "missing \"–\" between word and translations"})
			continue
		}
		translations := SplitTranslations(right)

		rec, err := textRecord(kind, left, translations)
		if err != nil {
			errs = append(errs, LineError{Line: lineNo, Message: err.Error()})
			continue
		}
		rec.Line = lineNo
		records = append(records, rec)
	}
	return records, errs
}

func splitLine(line string) (string, string, bool) {
	for _, sep := range textSeparators {
		if left, right, ok := strings.Cut(line, sep); ok {
			return strings.TrimSpace(left), strings.TrimSpace(right), true
		}
	}
	return "", "", false
}

func textRecord(kind domain.Kind, left string, translations []string) (Record, error) {
	switch kind {
	case domain.KindNoun:
		parts := strings.Fields(left)
		if len(parts) < 2 {
			return Record{}, fmt.Errorf("expected \"<article> <word>\", got %q", left)
		}
		return Record{Noun: &vocabulary.NounInput{
			Article:      parts[0],
			Word:         strings.Join(parts[1:], " "),
			Translations: translations,
		}}, nil

	case domain.KindVerb:
		f := forms(left, 4)
		return Record{Verb: &vocabulary.VerbInput{
			Infinitive:        f[0],
			Presens:           blankToNil(f[1]),
			Preteritum:        blankToNil(f[2]),
			PerfectParticiple: blankToNil(f[3]),
			Translations:      translations,
		}}, nil

	case domain.KindAdjective:
		f := forms(left, 3)
		return Record{Adjective: &vocabulary.AdjectiveInput{
			Base:         f[0],
			Neuter:       blankToNil(f[1]),
			Plural:       blankToNil(f[2]),
			Translations: translations,
		}}, nil

	case domain.KindPhrase:
		return Record{Phrase: &vocabulary.PhraseInput{
			Norwegian:    left,
			Translations: translations,
		}}, nil
	}
	return Record{}, fmt.Errorf("unknown word class %q", kind)
}

// forms splits a comma separated form list into exactly n trimmed slots.
// Extra forms are ignored.
func forms(s string, n int) []string {
	out := make([]string, n)
	for i, p := range strings.SplitN(s, ",", n+1) {
		if i == n {
			break
		}
		out[i] = strings.TrimSpace(p)
	}
	return out
}
