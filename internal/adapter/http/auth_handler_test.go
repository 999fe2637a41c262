package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"loantrack/internal/adapter/session"
	domain "loantrack/internal/domain/user"
	"loantrack/internal/testutil/sessmock"
	"loantrack/internal/testutil/usermock"
	"loantrack/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

// -------- helpers --------

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	r, err := NewRenderer("../../../web/templates/*.html")
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = r
	return e
}

func formRequest(t *testing.T, path string, form url.Values) *stdhttp.Request {
	t.Helper()
	req := httptest.NewRequest(stdhttp.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func userRepoWith(t *testing.T, username, password string, role domain.Role) *usermock.Repo {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	stored := &domain.User{Username: username, PasswordHash: hash, Role: role}
	return &usermock.Repo{
		GetByUsernameFn: func(ctx context.Context, name string) (*domain.User, error) {
			if name != username {
				return nil, domain.ErrNotFound
			}
			return stored, nil
		},
	}
}

// -------- tests --------

func TestLoginForm_RendersForm(t *testing.T) {
	e := newEcho(t)
	h := NewAuthHandler(auth.NewUsecase(&usermock.Repo{}), sessmock.New())

	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := h.LoginForm(e.NewContext(req, rec)); err != nil {
		t.Fatalf("LoginForm error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `name="username"`) {
		t.Fatalf("login form missing username field: %s", rec.Body.String())
	}
}

func TestLogin_InvalidCredentials_InlineError(t *testing.T) {
	e := newEcho(t)
	store := sessmock.New()
	h := NewAuthHandler(auth.NewUsecase(userRepoWith(t, "admin", "1234", domain.RoleAdmin)), store)

	req := formRequest(t, "/", url.Values{"username": {"admin"}, "password": {"wrong"}})
	rec := httptest.NewRecorder()
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid credentials") {
		t.Fatalf("missing inline error: %s", rec.Body.String())
	}
	if store.Len() != 0 {
		t.Fatalf("sessions created = %d, want 0", store.Len())
	}
	if strings.Contains(rec.Header().Get("Set-Cookie"), session.CookieName) {
		t.Fatal("session cookie must not be set on failed login")
	}
}

func TestLogin_AdminRedirect(t *testing.T) {
	e := newEcho(t)
	store := sessmock.New()
	h := NewAuthHandler(auth.NewUsecase(userRepoWith(t, "admin", "1234", domain.RoleAdmin)), store)

	req := formRequest(t, "/", url.Values{"username": {"admin"}, "password": {"1234"}})
	rec := httptest.NewRecorder()
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if rec.Code != stdhttp.StatusFound || rec.Header().Get("Location") != "/admin" {
		t.Fatalf("status = %d, location = %q", rec.Code, rec.Header().Get("Location"))
	}
	if store.Len() != 1 {
		t.Fatalf("sessions = %d, want 1", store.Len())
	}
	if !strings.Contains(rec.Header().Get("Set-Cookie"), session.CookieName) {
		t.Fatal("session cookie not set")
	}
}

func TestLogin_CollectorRedirect(t *testing.T) {
	e := newEcho(t)
	h := NewAuthHandler(auth.NewUsecase(userRepoWith(t, "alice", "alice123", domain.RoleCollector)), sessmock.New())

	req := formRequest(t, "/", url.Values{"username": {"alice"}, "password": {"alice123"}})
	rec := httptest.NewRecorder()
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if rec.Code != stdhttp.StatusFound || rec.Header().Get("Location") != "/collector" {
		t.Fatalf("status = %d, location = %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	e := newEcho(t)
	store := sessmock.New()
	sess, _ := store.Create(context.Background(), "admin", domain.RoleAdmin)
	h := NewAuthHandler(auth.NewUsecase(&usermock.Repo{}), store)

	req := httptest.NewRequest(stdhttp.MethodGet, "/logout", nil)
	req.AddCookie(&stdhttp.Cookie{Name: session.CookieName, Value: sess.Token})
	rec := httptest.NewRecorder()
	if err := h.Logout(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if rec.Code != stdhttp.StatusFound || rec.Header().Get("Location") != "/" {
		t.Fatalf("status = %d, location = %q", rec.Code, rec.Header().Get("Location"))
	}
	if store.Len() != 0 {
		t.Fatalf("sessions = %d, want 0 after logout", store.Len())
	}
}
