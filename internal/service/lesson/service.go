// Package lesson serves the grammar notes shown next to the drills.
package lesson

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

const (
	MaxTitleLen   = 200
	MaxContentLen = 50000
	MaxTagsLen    = 500
	MaxLevelLen   = 10
)

//go:generate moq -out lesson_repo_mock_test.go -pkg lesson . lessonRepo

type lessonRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.GrammarLesson, error)
	List(ctx context.Context, f domain.Filter) ([]*domain.GrammarLesson, error)
	Create(ctx context.Context, l *domain.GrammarLesson) (*domain.GrammarLesson, error)
	Delete(ctx context.Context, id int64) error
}

// Service provides grammar lesson operations.
type Service struct {
	lessons lessonRepo
	log     *slog.Logger
}

// NewService creates a new lesson service.
func NewService(log *slog.Logger, lessons lessonRepo) *Service {
	return &Service{
		lessons: lessons,
		log:     log.With("service", "lesson"),
	}
}

// CreateInput holds the parameters for creating a lesson.
type CreateInput struct {
	Title   string
	Content string
	Tags    *string
	Level   *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	check := func(field, v string, limit int, required bool) {
		v = strings.TrimSpace(v)
		if required && v == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
			return
		}
		if utf8.RuneCountInString(v) > limit {
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", limit)})
		}
	}
	check("title", i.Title, MaxTitleLen, true)
	check("content", i.Content, MaxContentLen, true)
	if i.Tags != nil {
		check("tags", *i.Tags, MaxTagsLen, false)
	}
	if i.Level != nil {
		check("level", *i.Level, MaxLevelLen, false)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// List returns lessons filtered by tag and level.
func (s *Service) List(ctx context.Context, f domain.Filter) ([]*domain.GrammarLesson, error) {
	f = f.Normalized()
	f.Category = ""
	return s.lessons.List(ctx, f)
}

// Get returns one lesson.
func (s *Service) Get(ctx context.Context, id int64) (*domain.GrammarLesson, error) {
	return s.lessons.GetByID(ctx, id)
}

// Create stores a lesson. Lessons have no natural key, so repeats are allowed.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.GrammarLesson, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	l, err := s.lessons.Create(ctx, &domain.GrammarLesson{
		Title:   strings.TrimSpace(input.Title),
		Content: strings.TrimSpace(input.Content),
		Tags:    trimOrNil(input.Tags),
		Level:   trimOrNil(input.Level),
	})
	if err != nil {
		return nil, fmt.Errorf("create lesson: %w", err)
	}

	s.log.InfoContext(ctx, "lesson created",
		slog.Int64("lesson_id", l.ID),
		slog.String("title", l.Title),
	)
	return l, nil
}

// Delete removes a lesson.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.lessons.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "lesson deleted", slog.Int64("lesson_id", id))
	return nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
