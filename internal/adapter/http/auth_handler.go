package http

import (
	"errors"
	"net/http"

	"loantrack/internal/adapter/session"
	"loantrack/internal/domain/user"
	"loantrack/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	uc       *auth.Usecase
	sessions session.Store
}

func NewAuthHandler(uc *auth.Usecase, sessions session.Store) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions}
}

type loginPage struct {
	Error string
}

func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", loginPage{})
}

// Login checks credentials and opens a session. Bad credentials re-render the
// form with an inline message instead of redirecting.
func (h *AuthHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	data, err := h.uc.Login(c.Request().Context(), username, password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return c.Render(http.StatusUnauthorized, "login.html", loginPage{Error: "Invalid credentials"})
		}
		return err
	}

	sess, err := h.sessions.Create(c.Request().Context(), data.Username, data.Role)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    sess.Token,
		Path:     "/",
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, homeFor(data.Role))
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, "/")
}

func homeFor(role user.Role) string {
	if role == user.RoleAdmin {
		return "/admin"
	}
	return "/collector"
}
