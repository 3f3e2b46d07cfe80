package middleware

import (
	"context"
	"net/http"
)

// The identity context is supplied by the authenticating front door; the
// service treats the company and user ids as opaque required inputs and
// fails fast when either is absent.
const (
	CompanyIDHeader = "X-Company-Id"
	UserIDHeader    = "X-User-Id"
)

type contextKey string

const (
	companyIDKey contextKey = "companyID"
	userIDKey    contextKey = "userID"
)

// RequireIdentity extracts the acting company and user from the request
// headers and rejects the request when either is missing.
func RequireIdentity(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		companyID := r.Header.Get(CompanyIDHeader)
		userID := r.Header.Get(UserIDHeader)

		if companyID == "" || userID == "" {
			http.Error(w, "Missing company or user identity", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), companyIDKey, companyID)
		ctx = context.WithValue(ctx, userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(fn)
}

// CompanyID returns the acting company id from the request context, or "".
func CompanyID(ctx context.Context) string {
	id, _ := ctx.Value(companyIDKey).(string)
	return id
}

// UserID returns the acting user id from the request context, or "".
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
