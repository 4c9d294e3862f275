// Package verb implements the verb repository using PostgreSQL.
package verb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/norsk-drill/internal/adapter/postgres"
	"github.com/heartmarshall/norsk-drill/internal/domain"
)

const table = "verbs"

// "group" is a reserved word, so the column is verb_group.
var columns = []string{
	"id", "infinitive", "presens", "preteritum", "perfect_participle",
	"verb_group", "group_description", "translations", "tags", "level",
	"created_at", "updated_at",
}

type row struct {
	ID                int64     `db:"id"`
	Infinitive        string    `db:"infinitive"`
	Presens           *string   `db:"presens"`
	Preteritum        *string   `db:"preteritum"`
	PerfectParticiple *string   `db:"perfect_participle"`
	Group             *string   `db:"verb_group"`
	GroupDescription  *string   `db:"group_description"`
	Translations      []string  `db:"translations"`
	Tags              *string   `db:"tags"`
	Level             *string   `db:"level"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Verb {
	return &domain.Verb{
		ID:                r.ID,
		Infinitive:        r.Infinitive,
		Presens:           r.Presens,
		Preteritum:        r.Preteritum,
		PerfectParticiple: r.PerfectParticiple,
		Group:             r.Group,
		GroupDescription:  r.GroupDescription,
		Translations:      r.Translations,
		Tags:              r.Tags,
		Level:             r.Level,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// Repo provides verb persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new verb repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// GetByID returns a verb by primary key.
// Returns domain.ErrNotFound if the verb does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Verb, error) {
	var out row
	query := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if err := postgres.Get(ctx, r.q(ctx), &out, query); err != nil {
		return nil, postgres.MapError(err, "verb", id)
	}
	return out.toDomain(), nil
}

// FindByNaturalKey returns the verb with the given infinitive.
func (r *Repo) FindByNaturalKey(ctx context.Context, infinitive string) (*domain.Verb, error) {
	var out row
	query := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"infinitive": infinitive})
	if err := postgres.Get(ctx, r.q(ctx), &out, query); err != nil {
		return nil, postgres.MapError(err, "verb", infinitive)
	}
	return out.toDomain(), nil
}

// List returns verbs matching f ordered by infinitive.
func (r *Repo) List(ctx context.Context, f domain.Filter) ([]*domain.Verb, error) {
	query := postgres.ApplyFilter(
		postgres.Builder.Select(columns...).From(table).OrderBy("infinitive", "id"),
		f, false,
	)
	return r.selectRows(ctx, query, "list verbs")
}

// Search returns verbs whose infinitive, forms or translations contain q.
func (r *Repo) Search(ctx context.Context, q string, limit int) ([]*domain.Verb, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(postgres.MatchAny(q, "infinitive", "presens", "preteritum", "perfect_participle")).
		OrderBy("infinitive", "id")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	return r.selectRows(ctx, query, "search verbs")
}

func (r *Repo) selectRows(ctx context.Context, query squirrel.SelectBuilder, op string) ([]*domain.Verb, error) {
	var rows []row
	if err := postgres.Select(ctx, r.q(ctx), &rows, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out := make([]*domain.Verb, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// Create inserts v and returns the stored row.
// Returns domain.ErrAlreadyExists when the infinitive is taken.
func (r *Repo) Create(ctx context.Context, v *domain.Verb) (*domain.Verb, error) {
	var out row
	query := postgres.Builder.Insert(table).
		Columns("infinitive", "presens", "preteritum", "perfect_participle",
			"verb_group", "group_description", "translations", "tags", "level").
		Values(v.Infinitive, v.Presens, v.Preteritum, v.PerfectParticiple,
			v.Group, v.GroupDescription, v.Translations, v.Tags, v.Level).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	if err := postgres.Get(ctx, r.q(ctx), &out, query); err != nil {
		return nil, postgres.MapError(err, "verb", v.Infinitive)
	}
	return out.toDomain(), nil
}

// Update applies params to the verb with the given id.
func (r *Repo) Update(ctx context.Context, id int64, p domain.VerbUpdateParams) (*domain.Verb, error) {
	b := postgres.Builder.Update(table).Set("updated_at", squirrel.Expr("now()"))
	b = postgres.SetRequired(b, "infinitive", p.Infinitive)
	b = postgres.SetOptional(b, "presens", p.Presens)
	b = postgres.SetOptional(b, "preteritum", p.Preteritum)
	b = postgres.SetOptional(b, "perfect_participle", p.PerfectParticiple)
	b = postgres.SetOptional(b, "verb_group", p.Group)
	b = postgres.SetOptional(b, "group_description", p.GroupDescription)
	b = postgres.SetOptional(b, "tags", p.Tags)
	b = postgres.SetOptional(b, "level", p.Level)
	if p.Translations != nil {
		b = b.Set("translations", p.Translations)
	}
	b = b.Where(squirrel.Eq{"id": id}).Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, r.q(ctx), &out, b); err != nil {
		return nil, postgres.MapError(err, "verb", id)
	}
	return out.toDomain(), nil
}

// Delete removes a verb. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	n, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "verb", id)
	}
	if n == 0 {
		return fmt.Errorf("verb %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the number of stored verbs.
func (r *Repo) Count(ctx context.Context) (int, error) {
	return postgres.Count(ctx, r.q(ctx), table)
}
