package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
	"github.com/samber/lo"

	"github.com/heartmarshall/norsk-drill/internal/config"
)

// CORS answers preflight requests and sets Access-Control-* headers for the
// configured origins. Config values are comma separated lists.
func CORS(cfg config.CORSConfig) Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins:   splitList(cfg.AllowedOrigins),
		AllowedMethods:   splitList(cfg.AllowedMethods),
		AllowedHeaders:   splitList(cfg.AllowedHeaders),
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}

func splitList(s string) []string {
	return lo.FilterMap(strings.Split(s, ","), func(v string, _ int) (string, bool) {
		v = strings.TrimSpace(v)
		return v, v != ""
	})
}
