// Package importer bulk-loads vocabulary from pasted text or CSV files.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/norsk-drill/internal/domain"
	"github.com/heartmarshall/norsk-drill/internal/service/vocabulary"
)

//go:generate moq -out writer_mock_test.go -pkg importer . writer

type writer interface {
	CreateNoun(ctx context.Context, input vocabulary.NounInput) (*domain.Noun, domain.CreateOutcome, error)
	CreateVerb(ctx context.Context, input vocabulary.VerbInput) (*domain.Verb, domain.CreateOutcome, error)
	CreateAdjective(ctx context.Context, input vocabulary.AdjectiveInput) (*domain.Adjective, domain.CreateOutcome, error)
	CreatePhrase(ctx context.Context, input vocabulary.PhraseInput) (*domain.Phrase, domain.CreateOutcome, error)
}

// Service runs imports against the vocabulary service.
type Service struct {
	vocab    writer
	maxLines int
	log      *slog.Logger
}

// NewService creates a new import service. maxLines caps the number of
// source lines or rows per import; 0 disables the cap.
func NewService(log *slog.Logger, vocab writer, maxLines int) *Service {
	return &Service{
		vocab:    vocab,
		maxLines: maxLines,
		log:      log.With("service", "importer"),
	}
}

// Import parses r in the given format and stores every record. Line-level
// problems are collected in the report; a storage failure stops the run and
// is returned together with the report so far.
func (s *Service) Import(ctx context.Context, kind domain.Kind, format Format, r io.Reader) (Report, error) {
	if !kind.IsValid() {
		return Report{}, domain.NewValidationError("kind", fmt.Sprintf("unknown word class %q", kind))
	}

	var (
		records []Record
		lineErr []LineError
	)
	switch format {
	case FormatText:
		raw, err := io.ReadAll(r)
		if err != nil {
			return Report{}, fmt.Errorf("read import: %w", err)
		}
		text := strings.TrimRight(string(raw), "\r\n")
		if s.maxLines > 0 && strings.Count(text, "\n")+1 > s.maxLines {
			return Report{}, domain.NewValidationError("text", fmt.Sprintf("more than %d lines", s.maxLines))
		}
		records, lineErr = ParseText(kind, text)
	case FormatCSV:
		var err error
		records, lineErr, err = ParseCSV(kind, r, s.maxLines)
		if err != nil {
			return Report{}, err
		}
	default:
		return Report{}, domain.NewValidationError("format", "must be text or csv")
	}

	report := Report{Total: len(records) + len(lineErr), Errors: []LineError{}}
	for _, le := range lineErr {
		report.fail(le.Line, le.Message)
	}

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		outcome, err := s.store(ctx, rec)
		switch {
		case err == nil && outcome == domain.OutcomeDuplicate:
			report.Skipped++
		case err == nil:
			report.Added++
		case errors.Is(err, domain.ErrValidation):
			report.fail(rec.Line, validationMessage(err))
		default:
			return report, fmt.Errorf("import line %d: %w", rec.Line, err)
		}
	}

	// ParseText reports line errors before records; keep the report in
	// source order.
	sortErrors(report.Errors)

	s.log.InfoContext(ctx, "import finished",
		slog.String("kind", kind.String()),
		slog.String("format", string(format)),
		slog.Int("total", report.Total),
		slog.Int("added", report.Added),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}

func (s *Service) store(ctx context.Context, rec Record) (domain.CreateOutcome, error) {
	var (
		outcome domain.CreateOutcome
		err     error
	)
	switch {
	case rec.Noun != nil:
		_, outcome, err = s.vocab.CreateNoun(ctx, *rec.Noun)
	case rec.Verb != nil:
		_, outcome, err = s.vocab.CreateVerb(ctx, *rec.Verb)
	case rec.Adjective != nil:
		_, outcome, err = s.vocab.CreateAdjective(ctx, *rec.Adjective)
	case rec.Phrase != nil:
		_, outcome, err = s.vocab.CreatePhrase(ctx, *rec.Phrase)
	default:
		err = domain.NewValidationError("record", "empty record")
	}
	return outcome, err
}

func validationMessage(err error) string {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

func sortErrors(errs []LineError) {
	slices.SortStableFunc(errs, func(a, b LineError) int { return a.Line - b.Line })
}
