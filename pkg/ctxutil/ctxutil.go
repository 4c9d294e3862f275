package ctxutil

import "context"

type ctxKey string

const (
	adminKey     ctxKey = "admin"
	requestIDKey ctxKey = "request_id"
)

// AdminVia names how a request was granted admin access.
type AdminVia string

const (
	AdminViaToken    AdminVia = "token"
	AdminViaPersonal AdminVia = "personal"
)

// WithAdmin marks the context as carrying admin access.
func WithAdmin(ctx context.Context, via AdminVia) context.Context {
	return context.WithValue(ctx, adminKey, via)
}

// AdminFromCtx reports whether the context carries admin access and how it
// was granted.
func AdminFromCtx(ctx context.Context) (AdminVia, bool) {
	via, ok := ctx.Value(adminKey).(AdminVia)
	if !ok || via == "" {
		return "", false
	}
	return via, true
}

// IsAdmin reports whether the context carries admin access.
func IsAdmin(ctx context.Context) bool {
	_, ok := AdminFromCtx(ctx)
	return ok
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
