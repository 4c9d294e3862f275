// Package lesson implements the grammar lesson repository using PostgreSQL.
package lesson

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/norsk-drill/internal/adapter/postgres"
	"github.com/heartmarshall/norsk-drill/internal/domain"
)

const table = "grammar_lessons"

var columns = []string{"id", "title", "content", "tags", "level", "created_at", "updated_at"}

type row struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Tags      *string   `db:"tags"`
	Level     *string   `db:"level"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.GrammarLesson {
	return &domain.GrammarLesson{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		Tags:      r.Tags,
		Level:     r.Level,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repo provides grammar lesson persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new lesson repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// GetByID returns a lesson by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.GrammarLesson, error) {
	var out row
	query := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if err := postgres.Get(ctx, r.q(ctx), &out, query); err != nil {
		return nil, postgres.MapError(err, "lesson", id)
	}
	return out.toDomain(), nil
}

// List returns lessons matching the tag and level of f, oldest first.
func (r *Repo) List(ctx context.Context, f domain.Filter) ([]*domain.GrammarLesson, error) {
	query := postgres.ApplyFilter(
		postgres.Builder.Select(columns...).From(table).OrderBy("id"),
		f, false,
	)
	var rows []row
	if err := postgres.Select(ctx, r.q(ctx), &rows, query); err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	out := make([]*domain.GrammarLesson, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// Create inserts l and returns the stored row.
func (r *Repo) Create(ctx context.Context, l *domain.GrammarLesson) (*domain.GrammarLesson, error) {
	var out row
	query := postgres.Builder.Insert(table).
		Columns("title", "content", "tags", "level").
		Values(l.Title, l.Content, l.Tags, l.Level).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	if err := postgres.Get(ctx, r.q(ctx), &out, query); err != nil {
		return nil, postgres.MapError(err, "lesson", l.Title)
	}
	return out.toDomain(), nil
}

// Delete removes a lesson.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	n, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "lesson", id)
	}
	if n == 0 {
		return fmt.Errorf("lesson %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the number of stored lessons.
func (r *Repo) Count(ctx context.Context) (int, error) {
	return postgres.Count(ctx, r.q(ctx), table)
}
