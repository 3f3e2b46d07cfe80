package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chris/petty-cash-float/pkg/middleware"
	"github.com/stretchr/testify/assert"
)

func TestRequireIdentity(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "company-a", middleware.CompanyID(r.Context()))
		assert.Equal(t, "user-1", middleware.UserID(r.Context()))
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/config", nil)
		req.Header.Set(middleware.CompanyIDHeader, "company-a")
		req.Header.Set(middleware.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		middleware.RequireIdentity(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing Company", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/config", nil)
		req.Header.Set(middleware.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		middleware.RequireIdentity(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Missing User", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/config", nil)
		req.Header.Set(middleware.CompanyIDHeader, "company-a")
		rr := httptest.NewRecorder()

		middleware.RequireIdentity(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestIdentityAccessorsOnBareContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Empty(t, middleware.CompanyID(req.Context()))
	assert.Empty(t, middleware.UserID(req.Context()))
}
