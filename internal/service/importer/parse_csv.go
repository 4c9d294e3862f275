package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/norsk-drill/internal/domain"
	"github.com/heartmarshall/norsk-drill/internal/service/vocabulary"
)

// requiredColumns lists, per class, the header groups that must be present.
// Any one name of a group satisfies it.
var requiredColumns = map[domain.Kind][][]string{
	domain.KindNoun:      {{"article"}, {"word"}, translationColumns},
	domain.KindVerb:      {{"infinitive"}, translationColumns},
	domain.KindAdjective: {{"base"}, translationColumns},
	domain.KindPhrase:    {{"norwegian"}, translationColumns},
}

var translationColumns = []string{"translations", "translation"}

// ParseCSV reads a header row followed by one record per row. Column names
// are matched case-insensitively; unknown columns are ignored.
//
// A missing required column or a CSV syntax error fails the whole parse.
// Rows with missing values become line errors.
func ParseCSV(kind domain.Kind, r io.Reader, maxRows int) ([]Record, []LineError, error) {
	groups, ok := requiredColumns[kind]
	if !ok {
		return nil, nil, domain.NewValidationError("kind", fmt.Sprintf("unknown word class %q", kind))
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, domain.NewValidationError("file", "empty CSV")
	}
	if err != nil {
		return nil, nil, csvError(err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	for _, g := range groups {
		if !hasAny(cols, g) {
			return nil, nil, domain.NewValidationError("header", fmt.Sprintf("missing column %q", g[0]))
		}
	}

	var (
		records []Record
		errs    []LineError
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, csvError(err)
		}
		line, _ := cr.FieldPos(0)

		row := csvRow{cols: cols, rec: rec}
		if row.blank() {
			continue
		}
		if maxRows > 0 && len(records)+len(errs) >= maxRows {
			return nil, nil, domain.NewValidationError("file", fmt.Sprintf("more than %d rows", maxRows))
		}

		out, err := csvRecord(kind, row)
		if err != nil {
			errs = append(errs, LineError{Line: line, Message: err.Error()})
			continue
		}
		out.Line = line
		records = append(records, out)
	}
	return records, errs, nil
}

func csvRecord(kind domain.Kind, row csvRow) (Record, error) {
	translations := SplitTranslations(row.get(translationColumns...))
	tags, level := row.opt("tags"), row.opt("level")

	switch kind {
	case domain.KindNoun:
		article, word := row.get("article"), row.get("word")
		if article == "" || word == "" {
			return Record{}, errors.New("article and word are required")
		}
		return Record{Noun: &vocabulary.NounInput{
			Article:      article,
			Word:         word,
			Definite:     row.opt("definite"),
			Plural:       row.opt("plural"),
			Translations: translations,
			Tags:         tags,
			Level:        level,
		}}, nil

	case domain.KindVerb:
		if row.get("infinitive") == "" {
			return Record{}, errors.New("infinitive is required")
		}
		return Record{Verb: &vocabulary.VerbInput{
			Infinitive:        row.get("infinitive"),
			Presens:           row.opt("presens"),
			Preteritum:        row.opt("preteritum"),
			PerfectParticiple: row.opt("perfect", "perfect_participle"),
			Group:             row.opt("group"),
			GroupDescription:  row.opt("group_description"),
			Translations:      translations,
			Tags:              tags,
			Level:             level,
		}}, nil

	case domain.KindAdjective:
		if row.get("base") == "" {
			return Record{}, errors.New("base is required")
		}
		return Record{Adjective: &vocabulary.AdjectiveInput{
			Base:             row.get("base"),
			Neuter:           row.opt("neuter"),
			Plural:           row.opt("plural"),
			Comparative:      row.opt("comparative"),
			Superlative:      row.opt("superlative"),
			Group:            row.opt("group"),
			GroupDescription: row.opt("group_description"),
			Translations:     translations,
			Tags:             tags,
			Level:            level,
		}}, nil

	case domain.KindPhrase:
		if row.get("norwegian") == "" {
			return Record{}, errors.New("norwegian is required")
		}
		return Record{Phrase: &vocabulary.PhraseInput{
			Norwegian:    row.get("norwegian"),
			Category:     row.opt("category"),
			Notes:        row.opt("notes"),
			Translations: translations,
			Tags:         tags,
			Level:        level,
		}}, nil
	}
	return Record{}, fmt.Errorf("unknown word class %q", kind)
}

type csvRow struct {
	cols map[string]int
	rec  []string
}

// get returns the trimmed value of the first named column present.
func (r csvRow) get(names ...string) string {
	for _, n := range names {
		if i, ok := r.cols[n]; ok && i < len(r.rec) {
			if v := strings.TrimSpace(r.rec[i]); v != "" {
				return v
			}
		}
	}
	return ""
}

func (r csvRow) opt(names ...string) *string {
	return blankToNil(r.get(names...))
}

func (r csvRow) blank() bool {
	for _, v := range r.rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func hasAny(cols map[string]int, names []string) bool {
	for _, n := range names {
		if _, ok := cols[n]; ok {
			return true
		}
	}
	return false
}

func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return domain.NewValidationError("file", fmt.Sprintf("line %d: %v", pe.Line, pe.Err))
	}
	return fmt.Errorf("read csv: %w", err)
}
