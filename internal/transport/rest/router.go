package rest

import (
	"net/http"

	"github.com/heartmarshall/norsk-drill/internal/domain"
	"github.com/heartmarshall/norsk-drill/internal/transport/middleware"
)

//go:generate moq -out service_mock_test.go -pkg rest . practiceService vocabularyService importService lessonService searcher authService

// Handlers bundles the endpoint groups mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Practice *PracticeHandler
	Search   *SearchHandler
	Lessons  *LessonHandler
	Admin    *AdminHandler
	Auth     *AuthHandler
}

// NewRouter registers every route. adminAccess resolves admin rights and runs
// only on /admin routes, followed by RequireAdmin. loginLimit guards
// POST /admin/login.
func NewRouter(h Handlers, adminAccess, loginLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()
	admin := middleware.Chain(adminAccess, middleware.RequireAdmin)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/search", h.Search.Search)
	mux.HandleFunc("GET /api/lessons", h.Lessons.List)
	mux.HandleFunc("GET /api/lessons/{id}", h.Lessons.Get)
	mux.HandleFunc("GET /api/phrases/categories", h.Admin.Categories)

	// Word class routes use literal prefixes so they do not overlap with
	// /api/lessons/{id}; withKind fills the {kind} value for the handlers.
	for _, kind := range domain.Kinds() {
		api := "/api/" + kind.Plural()
		mux.Handle("GET "+api+"/random", withKind(kind, h.Practice.Random))
		mux.Handle("POST "+api+"/{id}/check", withKind(kind, h.Practice.Check))

		base := "/admin/" + kind.Plural()
		mux.Handle("GET "+base, admin(withKind(kind, h.Admin.List)))
		mux.Handle("POST "+base, admin(withKind(kind, h.Admin.Create)))
		mux.Handle("GET "+base+"/{id}", admin(withKind(kind, h.Admin.Get)))
		mux.Handle("PATCH "+base+"/{id}", admin(withKind(kind, h.Admin.Update)))
		mux.Handle("DELETE "+base+"/{id}", admin(withKind(kind, h.Admin.Delete)))
		mux.Handle("POST "+base+"/import-text", admin(withKind(kind, h.Admin.ImportText)))
		mux.Handle("POST "+base+"/import-csv", admin(withKind(kind, h.Admin.ImportCSV)))
	}

	mux.Handle("GET /admin/stats", admin(http.HandlerFunc(h.Admin.Stats)))
	mux.Handle("GET /admin/lessons", admin(http.HandlerFunc(h.Lessons.List)))
	mux.Handle("POST /admin/lessons", admin(http.HandlerFunc(h.Lessons.Create)))
	mux.Handle("DELETE /admin/lessons/{id}", admin(http.HandlerFunc(h.Lessons.Delete)))
	mux.Handle("POST /admin/login", loginLimit(http.HandlerFunc(h.Auth.Login)))

	return mux
}

func withKind(kind domain.Kind, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.SetPathValue("kind", kind.Plural())
		next(w, r)
	})
}
