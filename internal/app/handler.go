package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/norsk-drill/internal/config"
	"github.com/heartmarshall/norsk-drill/internal/transport/middleware"
	"github.com/heartmarshall/norsk-drill/internal/transport/rest"
)

const rateLimitSweep = time.Minute

// NewHandler builds the HTTP handler: the REST router wrapped in the global
// middleware chain. The caller must Stop the returned limiter.
func NewHandler(cfg *config.Config, svc *Services, db *pgxpool.Pool, logger *slog.Logger) (http.Handler, *middleware.RateLimiter) {
	limiter := middleware.NewRateLimiter(rateLimitSweep)

	policy := middleware.AdminPolicy{
		PersonalMode:  cfg.Admin.PersonalMode,
		LocalhostOnly: cfg.Admin.LocalhostOnly,
	}
	// A nil *JWTManager must not reach AdminAccess as a non-nil interface.
	var access middleware.Middleware
	if svc.Tokens != nil {
		access = middleware.AdminAccess(policy, svc.Tokens, logger)
	} else {
		access = middleware.AdminAccess(policy, nil, logger)
	}

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(db, BuildVersion()),
		Practice: rest.NewPracticeHandler(svc.Practice, logger),
		Search:   rest.NewSearchHandler(svc.Search, logger),
		Lessons:  rest.NewLessonHandler(svc.Lessons, logger),
		Admin:    rest.NewAdminHandler(svc.Vocabulary, svc.Importer, cfg.Import.MaxUploadBytes, logger),
		Auth:     rest.NewAuthHandler(svc.Auth, logger),
	}, access, limiter.Limit("login", cfg.Admin.LoginRatePerMin, cfg.Admin.LoginRateBurst))

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)
	return chain(router), limiter
}
