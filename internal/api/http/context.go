package http

import (
	"context"
	"net/http"
	"strconv"

	"fleetdesk-backend/internal/domain"

	"github.com/gorilla/mux"
)

type contextKey string

const scopeKey contextKey = "scope"

func withScope(ctx context.Context, scope domain.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, scope)
}

// scopeFrom returns the authenticated request scope. The auth middleware
// guarantees it is set on every protected route.
func scopeFrom(ctx context.Context) domain.Scope {
	scope, _ := ctx.Value(scopeKey).(domain.Scope)
	return scope
}

// pathID reads a numeric {id}-style path variable.
func pathID(r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

// pagination reads ?page= and ?page_size= with sane bounds.
func pagination(r *http.Request) (page, pageSize int32) {
	page = 1
	pageSize = 20
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil && v > 0 {
			page = int32(v)
		}
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil && v > 0 && v <= 100 {
			pageSize = int32(v)
		}
	}
	return page, pageSize
}
