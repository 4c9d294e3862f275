// Package adjective implements the adjective repository using PostgreSQL.
package adjective

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/norsk-drill/internal/adapter/postgres"
	"github.com/heartmarshall/norsk-drill/internal/domain"
)

const table = "adjectives"

var columns = []string{
	"id", "base", "neuter", "plural", "comparative", "superlative",
	"adjective_group", "group_description", "translations", "tags", "level",
	"created_at", "updated_at",
}

type row struct {
	ID               int64     `db:"id"`
	Base             string    `db:"base"`
	Neuter           *string   `db:"neuter"`
	Plural           *string   `db:"plural"`
	Comparative      *string   `db:"comparative"`
	Superlative      *string   `db:"superlative"`
	Group            *string   `db:"adjective_group"`
	GroupDescription *string   `db:"group_description"`
	Translations     []string  `db:"translations"`
	Tags             *string   `db:"tags"`
	Level            *string   `db:"level"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Adjective {
	return &domain.Adjective{
		ID:               r.ID,
		Base:             r.Base,
		Neuter:           r.Neuter,
		Plural:           r.Plural,
		Comparative:      r.Comparative,
		Superlative:      r.Superlative,
		Group:            r.Group,
		GroupDescription: r.GroupDescription,
		Translations:     r.Translations,
		Tags:             r.Tags,
		Level:            r.Level,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// Repo provides adjective persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new adjective repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// GetByID returns an adjective by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Adjective, error) {
	var out row
	query := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if err := postgres.Get(ctx, r.q(ctx), &out, query); err != nil {
		return nil, postgres.MapError(err, "adjective", id)
	}
	return out.toDomain(), nil
}

// FindByNaturalKey returns the adjective with the given base form.
func (r *Repo) FindByNaturalKey(ctx context.Context, base string) (*domain.Adjective, error) {
	var out row
	query := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"base": base})
	if err := postgres.Get(ctx, r.q(ctx), &out, query); err != nil {
		return nil, postgres.MapError(err, "adjective", base)
	}
	return out.toDomain(), nil
}

// List returns adjectives matching f ordered by base form.
func (r *Repo) List(ctx context.Context, f domain.Filter) ([]*domain.Adjective, error) {
	query := postgres.ApplyFilter(
		postgres.Builder.Select(columns...).From(table).OrderBy("base", "id"),
		f, false,
	)
	return r.selectRows(ctx, query, "list adjectives")
}

// Search returns adjectives whose forms or translations contain q.
func (r *Repo) Search(ctx context.Context, q string, limit int) ([]*domain.Adjective, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(postgres.MatchAny(q, "base", "neuter", "plural", "comparative", "superlative")).
		OrderBy("base", "id")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	return r.selectRows(ctx, query, "search adjectives")
}

func (r *Repo) selectRows(ctx context.Context, query squirrel.SelectBuilder, op string) ([]*domain.Adjective, error) {
	var rows []row
	if err := postgres.Select(ctx, r.q(ctx), &rows, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out := make([]*domain.Adjective, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// Create inserts a and returns the stored row.
func (r *Repo) Create(ctx context.Context, a *domain.Adjective) (*domain.Adjective, error) {
	var out row
	query := postgres.Builder.Insert(table).
		Columns("base", "neuter", "plural", "comparative", "superlative",
			"adjective_group", "group_description", "translations", "tags", "level").
		Values(a.Base, a.Neuter, a.Plural, a.Comparative, a.Superlative,
			a.Group, a.GroupDescription, a.Translations, a.Tags, a.Level).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	if err := postgres.Get(ctx, r.q(ctx), &out, query); err != nil {
		return nil, postgres.MapError(err, "adjective", a.Base)
	}
	return out.toDomain(), nil
}

// Update applies params to the adjective with the given id.
func (r *Repo) Update(ctx context.Context, id int64, p domain.AdjectiveUpdateParams) (*domain.Adjective, error) {
	b := postgres.Builder.Update(table).Set("updated_at", squirrel.Expr("now()"))
	b = postgres.SetRequired(b, "base", p.Base)
	b = postgres.SetOptional(b, "neuter", p.Neuter)
	b = postgres.SetOptional(b, "plural", p.Plural)
	b = postgres.SetOptional(b, "comparative", p.Comparative)
	b = postgres.SetOptional(b, "superlative", p.Superlative)
	b = postgres.SetOptional(b, "adjective_group", p.Group)
	b = postgres.SetOptional(b, "group_description", p.GroupDescription)
	b = postgres.SetOptional(b, "tags", p.Tags)
	b = postgres.SetOptional(b, "level", p.Level)
	if p.Translations != nil {
		b = b.Set("translations", p.Translations)
	}
	b = b.Where(squirrel.Eq{"id": id}).Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, r.q(ctx), &out, b); err != nil {
		return nil, postgres.MapError(err, "adjective", id)
	}
	return out.toDomain(), nil
}

// Delete removes an adjective.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	n, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "adjective", id)
	}
	if n == 0 {
		return fmt.Errorf("adjective %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the number of stored adjectives.
func (r *Repo) Count(ctx context.Context) (int, error) {
	return postgres.Count(ctx, r.q(ctx), table)
}
