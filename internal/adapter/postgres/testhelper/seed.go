package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting natural keys.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedNoun inserts an "et" noun with a unique word and returns it.
func SeedNoun(t *testing.T, pool *pgxpool.Pool, tags *string) domain.Noun {
	t.Helper()

	n := domain.Noun{
		Article:      domain.ArticleEt,
		Word:         "hus-" + UniqueSuffix(),
		Translations: []string{"дом", "къща"},
		Tags:         tags,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO nouns (article, word, translations, tags)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		n.Article, n.Word, n.Translations, n.Tags,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedNoun: %v", err)
	}
	return n
}

// SeedVerb inserts a verb with a unique infinitive and full principal parts.
func SeedVerb(t *testing.T, pool *pgxpool.Pool) domain.Verb {
	t.Helper()

	presens, preteritum, perfect := "skriver", "skrev", "har skrevet"
	v := domain.Verb{
		Infinitive:        "å skrive-" + UniqueSuffix(),
		Presens:           &presens,
		Preteritum:        &preteritum,
		PerfectParticiple: &perfect,
		Translations:      []string{"пиша"},
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO verbs (infinitive, presens, preteritum, perfect_participle, translations)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		v.Infinitive, v.Presens, v.Preteritum, v.PerfectParticiple, v.Translations,
	).Scan(&v.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedVerb: %v", err)
	}
	return v
}

// SeedPhrase inserts a phrase with a unique text in the given category.
func SeedPhrase(t *testing.T, pool *pgxpool.Pool, category string) domain.Phrase {
	t.Helper()

	p := domain.Phrase{
		Norwegian:    "god morgen " + UniqueSuffix(),
		Category:     &category,
		Translations: []string{"добро утро"},
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO phrases (norwegian, category, translations)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		p.Norwegian, p.Category, p.Translations,
	).Scan(&p.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedPhrase: %v", err)
	}
	return p
}
