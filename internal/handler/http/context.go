package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/account"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/auth"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/leave"
)

// actorFromContext rebuilds the authenticated principal from the verified
// token claims.
func actorFromContext(ctx context.Context) (leave.Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return leave.Actor{}, auth.ErrInvalidToken
	}

	id, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if id == "" || role == "" {
		return leave.Actor{}, auth.ErrInvalidToken
	}

	return leave.Actor{ID: id, Role: account.Role(role)}, nil
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// parsePagination reads page and limit query params with sane fallbacks.
func parsePagination(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}
