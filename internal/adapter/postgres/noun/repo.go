// Package noun implements the noun repository using PostgreSQL.
package noun

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/norsk-drill/internal/adapter/postgres"
	"github.com/heartmarshall/norsk-drill/internal/domain"
)

const table = "nouns"

var columns = []string{
	"id", "article", "word", "definite", "plural",
	"translations", "tags", "level", "created_at", "updated_at",
}

type row struct {
	ID           int64     `db:"id"`
	Article      string    `db:"article"`
	Word         string    `db:"word"`
	Definite     *string   `db:"definite"`
	Plural       *string   `db:"plural"`
	Translations []string  `db:"translations"`
	Tags         *string   `db:"tags"`
	Level        *string   `db:"level"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Noun {
	return &domain.Noun{
		ID:           r.ID,
		Article:      r.Article,
		Word:         r.Word,
		Definite:     r.Definite,
		Plural:       r.Plural,
		Translations: r.Translations,
		Tags:         r.Tags,
		Level:        r.Level,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Repo provides noun persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new noun repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// GetByID returns a noun by primary key.
// Returns domain.ErrNotFound if the noun does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Noun, error) {
	var out row
	query := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if err := postgres.Get(ctx, r.q(ctx), &out, query); err != nil {
		return nil, postgres.MapError(err, "noun", id)
	}
	return out.toDomain(), nil
}

// FindByNaturalKey returns the noun with the given article and word.
func (r *Repo) FindByNaturalKey(ctx context.Context, article, word string) (*domain.Noun, error) {
	var out row
	query := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"article": article, "word": word})
	if err := postgres.Get(ctx, r.q(ctx), &out, query); err != nil {
		return nil, postgres.MapError(err, "noun", article+" "+word)
	}
	return out.toDomain(), nil
}

// List returns nouns matching f ordered by word.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.Filter) ([]*domain.Noun, error) {
	query := postgres.ApplyFilter(
		postgres.Builder.Select(columns...).From(table).OrderBy("word", "id"),
		f, false,
	)
	return r.selectRows(ctx, query, "list nouns")
}

// Search returns nouns whose headword, forms or translations contain q.
func (r *Repo) Search(ctx context.Context, q string, limit int) ([]*domain.Noun, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(postgres.MatchAny(q, "word", "definite", "plural")).
		OrderBy("word", "id")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	return r.selectRows(ctx, query, "search nouns")
}

func (r *Repo) selectRows(ctx context.Context, query squirrel.SelectBuilder, op string) ([]*domain.Noun, error) {
	var rows []row
	if err := postgres.Select(ctx, r.q(ctx), &rows, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out := make([]*domain.Noun, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// Create inserts n and returns the stored row.
// Returns domain.ErrAlreadyExists when (article, word) is taken.
func (r *Repo) Create(ctx context.Context, n *domain.Noun) (*domain.Noun, error) {
	var out row
	query := postgres.Builder.Insert(table).
		Columns("article", "word", "definite", "plural", "translations", "tags", "level").
		Values(n.Article, n.Word, n.Definite, n.Plural, n.Translations, n.Tags, n.Level).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	if err := postgres.Get(ctx, r.q(ctx), &out, query); err != nil {
		return nil, postgres.MapError(err, "noun", n.Article+" "+n.Word)
	}
	return out.toDomain(), nil
}

// Update applies params to the noun with the given id.
func (r *Repo) Update(ctx context.Context, id int64, p domain.NounUpdateParams) (*domain.Noun, error) {
	b := postgres.Builder.Update(table).Set("updated_at", squirrel.Expr("now()"))
	b = postgres.SetRequired(b, "article", p.Article)
	b = postgres.SetRequired(b, "word", p.Word)
	b = postgres.SetOptional(b, "definite", p.Definite)
	b = postgres.SetOptional(b, "plural", p.Plural)
	b = postgres.SetOptional(b, "tags", p.Tags)
	b = postgres.SetOptional(b, "level", p.Level)
	if p.Translations != nil {
		b = b.Set("translations", p.Translations)
	}
	b = b.Where(squirrel.Eq{"id": id}).Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, r.q(ctx), &out, b); err != nil {
		return nil, postgres.MapError(err, "noun", id)
	}
	return out.toDomain(), nil
}

// Delete removes a noun. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	n, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "noun", id)
	}
	if n == 0 {
		return fmt.Errorf("noun %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the number of stored nouns.
func (r *Repo) Count(ctx context.Context) (int, error) {
	return postgres.Count(ctx, r.q(ctx), table)
}
