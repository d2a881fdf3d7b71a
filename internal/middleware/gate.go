package middleware

import (
	"context"
	"net/http"
	"sync"

	"pijat_jogja/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	SessionCookieName = "admin_session"
	LoginPath         = "/admin/login"
)

// GateState is the state of a route guard
type GateState int

const (
	GateChecking GateState = iota
	GateAuthenticated
	GateUnauthenticated
)

func (s GateState) String() string {
	switch s {
	case GateAuthenticated:
		return "authenticated"
	case GateUnauthenticated:
		return "unauthenticated"
	default:
		return "checking"
	}
}

// Gate guards one page load. It starts in checking, runs the check once and
// settles in authenticated or unauthenticated; it never goes back to checking.
type Gate struct {
	check func(ctx context.Context) bool
	once  sync.Once
	mu    sync.RWMutex
	state GateState
}

func NewGate(check func(ctx context.Context) bool) *Gate {
	return &Gate{check: check, state: GateChecking}
}

func (g *Gate) State() GateState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Resolve runs the check on first call. A check that panics counts as unauthenticated.
func (g *Gate) Resolve(ctx context.Context) GateState {
	g.once.Do(func() {
		next := GateUnauthenticated
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Error().Interface("panic", r).Msg("Session check panicked")
				}
			}()
			if g.check(ctx) {
				next = GateAuthenticated
			}
		}()

		g.mu.Lock()
		g.state = next
		g.mu.Unlock()
	})
	return g.State()
}

// PageAuthMiddleware guards HTML pages with the session cookie and redirects to the login page
func PageAuthMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(SessionCookieName)

		var user *model.CurrentUser
		gate := NewGate(func(ctx context.Context) bool {
			if token == "" {
				return false
			}
			user = resolver.CurrentUser(ctx, token)
			return user != nil
		})

		if gate.Resolve(c.Request.Context()) != GateAuthenticated {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		setCurrentUser(c, user, token)
		c.Next()
	}
}
