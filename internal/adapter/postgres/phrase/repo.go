// Package phrase implements the phrase repository using PostgreSQL.
package phrase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/norsk-drill/internal/adapter/postgres"
	"github.com/heartmarshall/norsk-drill/internal/domain"
)

const table = "phrases"

var columns = []string{
	"id", "norwegian", "category", "notes", "translations", "tags", "level",
	"created_at", "updated_at",
}

type row struct {
	ID           int64     `db:"id"`
	Norwegian    string    `db:"norwegian"`
	Category     *string   `db:"category"`
	Notes        *string   `db:"notes"`
	Translations []string  `db:"translations"`
	Tags         *string   `db:"tags"`
	Level        *string   `db:"level"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Phrase {
	return &domain.Phrase{
		ID:           r.ID,
		Norwegian:    r.Norwegian,
		Category:     r.Category,
		Notes:        r.Notes,
		Translations: r.Translations,
		Tags:         r.Tags,
		Level:        r.Level,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Repo provides phrase persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new phrase repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// GetByID returns a phrase by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Phrase, error) {
	var out row
	query := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if err := postgres.Get(ctx, r.q(ctx), &out, query); err != nil {
		return nil, postgres.MapError(err, "phrase", id)
	}
	return out.toDomain(), nil
}

// FindByNaturalKey returns the phrase with the given Norwegian text.
func (r *Repo) FindByNaturalKey(ctx context.Context, norwegian string) (*domain.Phrase, error) {
	var out row
	query := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"norwegian": norwegian})
	if err := postgres.Get(ctx, r.q(ctx), &out, query); err != nil {
		return nil, postgres.MapError(err, "phrase", norwegian)
	}
	return out.toDomain(), nil
}

// List returns phrases matching f, including the category filter.
func (r *Repo) List(ctx context.Context, f domain.Filter) ([]*domain.Phrase, error) {
	query := postgres.ApplyFilter(
		postgres.Builder.Select(columns...).From(table).OrderBy("norwegian", "id"),
		f, true,
	)
	return r.selectRows(ctx, query, "list phrases")
}

// Search returns phrases whose text, notes or translations contain q.
func (r *Repo) Search(ctx context.Context, q string, limit int) ([]*domain.Phrase, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(postgres.MatchAny(q, "norwegian", "notes")).
		OrderBy("norwegian", "id")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	return r.selectRows(ctx, query, "search phrases")
}

// Categories returns the distinct non-empty phrase categories.
func (r *Repo) Categories(ctx context.Context) ([]string, error) {
	var out []string
	query := postgres.Builder.Select("DISTINCT category").From(table).
		Where("category IS NOT NULL AND category <> ''").
		OrderBy("category")
	if err := postgres.Select(ctx, r.q(ctx), &out, query); err != nil {
		return nil, fmt.Errorf("list phrase categories: %w", err)
	}
	return out, nil
}

func (r *Repo) selectRows(ctx context.Context, query squirrel.SelectBuilder, op string) ([]*domain.Phrase, error) {
	var rows []row
	if err := postgres.Select(ctx, r.q(ctx), &rows, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out := make([]*domain.Phrase, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// Create inserts p and returns the stored row.
func (r *Repo) Create(ctx context.Context, p *domain.Phrase) (*domain.Phrase, error) {
	var out row
	query := postgres.Builder.Insert(table).
		Columns("norwegian", "category", "notes", "translations", "tags", "level").
		Values(p.Norwegian, p.Category, p.Notes, p.Translations, p.Tags, p.Level).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	if err := postgres.Get(ctx, r.q(ctx), &out, query); err != nil {
		return nil, postgres.MapError(err, "phrase", p.Norwegian)
	}
	return out.toDomain(), nil
}

// Update applies params to the phrase with the given id.
func (r *Repo) Update(ctx context.Context, id int64, p domain.PhraseUpdateParams) (*domain.Phrase, error) {
	b := postgres.Builder.Update(table).Set("updated_at", squirrel.Expr("now()"))
	b = postgres.SetRequired(b, "norwegian", p.Norwegian)
	b = postgres.SetOptional(b, "category", p.Category)
	b = postgres.SetOptional(b, "notes", p.Notes)
	b = postgres.SetOptional(b, "tags", p.Tags)
	b = postgres.SetOptional(b, "level", p.Level)
	if p.Translations != nil {
		b = b.Set("translations", p.Translations)
	}
	b = b.Where(squirrel.Eq{"id": id}).Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, r.q(ctx), &out, b); err != nil {
		return nil, postgres.MapError(err, "phrase", id)
	}
	return out.toDomain(), nil
}

// Delete removes a phrase.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	n, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "phrase", id)
	}
	if n == 0 {
		return fmt.Errorf("phrase %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the number of stored phrases.
func (r *Repo) Count(ctx context.Context) (int, error) {
	return postgres.Count(ctx, r.q(ctx), table)
}
