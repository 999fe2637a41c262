package middleware

import (
	"net/http"

	"loantrack/internal/adapter/session"
	"loantrack/internal/domain/user"

	"github.com/labstack/echo/v4"
)

const sessionContextKey = "session"

// RequireRole gates a route: a missing session or one carrying the wrong role
// is bounced to the login page.
func RequireRole(store session.Store, role user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := lookup(c, store)
			if err != nil || sess.Role != role {
				return c.Redirect(http.StatusFound, "/")
			}
			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// RequireSession admits any logged-in user regardless of role.
func RequireSession(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := lookup(c, store)
			if err != nil {
				return c.Redirect(http.StatusFound, "/")
			}
			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// SessionFromContext returns the session placed by RequireRole/RequireSession,
// or nil on an unguarded route.
func SessionFromContext(c echo.Context) *session.Session {
	sess, _ := c.Get(sessionContextKey).(*session.Session)
	return sess
}

func lookup(c echo.Context, store session.Store) (*session.Session, error) {
	cookie, err := c.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, session.ErrNotFound
	}
	return store.Get(c.Request().Context(), cookie.Value)
}
