package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"pijat_jogja/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	token string
	user  *model.CurrentUser
	calls atomic.Int32
	panic bool
}

func (f *fakeResolver) CurrentUser(ctx context.Context, token string) *model.CurrentUser {
	f.calls.Add(1)
	if f.panic {
		panic("resolver exploded")
	}
	if token == f.token {
		return f.user
	}
	return nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newResolver() *fakeResolver {
	return &fakeResolver{token: "good", user: &model.CurrentUser{ID: "u-1", Email: "admin@pijat.id", Role: model.RoleAdmin}}
}

func TestGate_ResolvesOnce(t *testing.T) {
	var calls int
	gate := NewGate(func(ctx context.Context) bool {
		calls++
		return true
	})
	assert.Equal(t, GateChecking, gate.State())

	assert.Equal(t, GateAuthenticated, gate.Resolve(context.Background()))
	assert.Equal(t, GateAuthenticated, gate.Resolve(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestGate_FalseAndPanicAreUnauthenticated(t *testing.T) {
	denied := NewGate(func(ctx context.Context) bool { return false })
	assert.Equal(t, GateUnauthenticated, denied.Resolve(context.Background()))

	exploding := NewGate(func(ctx context.Context) bool { panic("boom") })
	assert.NotPanics(t, func() {
		assert.Equal(t, GateUnauthenticated, exploding.Resolve(context.Background()))
	})
	assert.Equal(t, "unauthenticated", exploding.State().String())
}

func TestSessionAuthMiddleware(t *testing.T) {
	resolver := newResolver()
	router := gin.New()
	router.GET("/me", SessionAuthMiddleware(resolver), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": GetCurrentUser(c).ID})
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"unknown session", "Bearer bad", http.StatusUnauthorized},
		{"valid session", "Bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRoleMiddleware_RejectsOtherRoles(t *testing.T) {
	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		c.Set(AuthRoleKey, "user")
		c.Next()
	}, AdminMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPageAuthMiddleware(t *testing.T) {
	resolver := newResolver()
	router := gin.New()
	router.GET("/admin", PageAuthMiddleware(resolver), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard for "+GetCurrentUser(c).Email)
	})

	t.Run("no cookie redirects without a lookup", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, LoginPath, w.Header().Get("Location"))
		assert.EqualValues(t, 0, resolver.calls.Load())
	})

	t.Run("valid cookie renders", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin@pijat.id")
	})

	t.Run("resolver panic redirects", func(t *testing.T) {
		resolver.panic = true
		defer func() { resolver.panic = false }()

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusFound, w.Code)
	})
}
