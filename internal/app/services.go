package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/norsk-drill/internal/adapter/postgres"
	"github.com/heartmarshall/norsk-drill/internal/adapter/postgres/adjective"
	"github.com/heartmarshall/norsk-drill/internal/adapter/postgres/lesson"
	"github.com/heartmarshall/norsk-drill/internal/adapter/postgres/noun"
	"github.com/heartmarshall/norsk-drill/internal/adapter/postgres/phrase"
	"github.com/heartmarshall/norsk-drill/internal/adapter/postgres/verb"
	"github.com/heartmarshall/norsk-drill/internal/auth"
	"github.com/heartmarshall/norsk-drill/internal/config"
	authsvc "github.com/heartmarshall/norsk-drill/internal/service/auth"
	"github.com/heartmarshall/norsk-drill/internal/service/importer"
	lessonsvc "github.com/heartmarshall/norsk-drill/internal/service/lesson"
	"github.com/heartmarshall/norsk-drill/internal/service/practice"
	"github.com/heartmarshall/norsk-drill/internal/service/search"
	"github.com/heartmarshall/norsk-drill/internal/service/vocabulary"
)

// Services holds every domain service built on one connection pool.
type Services struct {
	Vocabulary *vocabulary.Service
	Lessons    *lessonsvc.Service
	Importer   *importer.Service
	Search     *search.Service
	Practice   *practice.Service
	Auth       *authsvc.Service

	// Tokens is nil when password login is disabled.
	Tokens *auth.JWTManager
}

// NewServices wires repositories and services.
func NewServices(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *Services {
	txm := postgres.NewTxManager(pool)

	nouns := noun.New(pool)
	verbs := verb.New(pool)
	adjectives := adjective.New(pool)
	phrases := phrase.New(pool)
	lessons := lesson.New(pool)

	vocab := vocabulary.NewService(logger, txm, nouns, verbs, adjectives, phrases, lessons)

	s := &Services{
		Vocabulary: vocab,
		Lessons:    lessonsvc.NewService(logger, lessons),
		Importer:   importer.NewService(logger, vocab, cfg.Import.MaxLines),
		Search:     search.NewService(logger, nouns, verbs, adjectives, phrases, cfg.Search.MaxResultsPerKind),
		Practice: practice.NewService(
			logger,
			practice.NewSampler(nil),
			cfg.Practice.MaxExcludeIDs,
			practice.Adapt(nouns),
			practice.Adapt(verbs),
			practice.Adapt(adjectives),
			practice.Adapt(phrases),
		),
	}

	if cfg.Admin.LoginEnabled() {
		s.Tokens = auth.NewJWTManager(cfg.Admin.JWTSecret, cfg.Admin.JWTIssuer, cfg.Admin.TokenTTL)
		s.Auth = authsvc.NewService(logger, cfg.Admin.PasswordHash, s.Tokens)
	} else {
		s.Auth = authsvc.NewService(logger, "", nil)
	}

	return s
}
