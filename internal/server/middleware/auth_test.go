package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hireflow/internal/pipeline"
)

type fakeValidator struct {
	principal pipeline.Principal
	err       error
	lastToken string
}

func (f *fakeValidator) ValidateAccessToken(tokenString string) (pipeline.Principal, error) {
	f.lastToken = tokenString
	return f.principal, f.err
}

func TestAuth(t *testing.T) {
	principal := pipeline.Principal{ID: uuid.New(), Email: "jane@example.com"}

	newHandler := func(v TokenValidator) (http.Handler, *pipeline.Principal) {
		var seen pipeline.Principal
		handler := Auth(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, err := GetPrincipal(r)
			require.NoError(t, err)
			seen = got
			w.WriteHeader(http.StatusOK)
		}))
		return handler, &seen
	}

	t.Run("valid bearer token", func(t *testing.T) {
		v := &fakeValidator{principal: principal}
		handler, seen := newHandler(v)

		req := httptest.NewRequest("GET", "/candidates", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "good-token", v.lastToken)
		assert.Equal(t, principal, *seen)
	})

	t.Run("case-insensitive scheme", func(t *testing.T) {
		v := &fakeValidator{principal: principal}
		handler, _ := newHandler(v)

		req := httptest.NewRequest("GET", "/candidates", nil)
		req.Header.Set("Authorization", "bearer good-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		handler, _ := newHandler(&fakeValidator{principal: principal})

		req := httptest.NewRequest("GET", "/candidates", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		handler, _ := newHandler(&fakeValidator{principal: principal})

		req := httptest.NewRequest("GET", "/candidates", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		handler, _ := newHandler(&fakeValidator{err: errors.New("expired")})

		req := httptest.NewRequest("GET", "/candidates", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetPrincipal_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	_, err := GetPrincipal(req)
	assert.Error(t, err)
}

func TestWithPrincipal(t *testing.T) {
	principal := pipeline.Principal{ID: uuid.New(), Email: "jane@example.com"}
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(WithPrincipal(req.Context(), principal))

	got, err := GetPrincipal(req)
	require.NoError(t, err)
	assert.Equal(t, principal, got)
}
