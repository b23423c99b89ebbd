package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/atelierhub/design-collab/internal/core/domain"
	"github.com/atelierhub/design-collab/internal/core/service"
)

type stubUserRepo struct {
	byID map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func authRequest(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpErrorCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestAuth_ValidToken(t *testing.T) {
	codec := service.NewTokenCodec("secret", time.Hour)
	alice := &domain.User{ID: "user_1", Username: "alice", Role: domain.RoleDesigner}
	repo := &stubUserRepo{byID: map[string]*domain.User{"user_1": alice}}

	token, err := codec.Issue("user_1", domain.RoleDesigner)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, rec := authRequest("Bearer " + token)

	called := false
	handler := Auth(codec, repo)(func(c echo.Context) error {
		called = true
		user, _ := c.Get(UserContextKey).(*domain.User)
		if user == nil || user.Username != "alice" {
			t.Fatalf("user not injected: %+v", user)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	codec := service.NewTokenCodec("secret", time.Hour)
	repo := &stubUserRepo{byID: map[string]*domain.User{}}

	c, _ := authRequest("")
	err := Auth(codec, repo)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(c)

	if code := httpErrorCode(t, err); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	codec := service.NewTokenCodec("secret", time.Hour)
	repo := &stubUserRepo{byID: map[string]*domain.User{}}

	c, _ := authRequest("Token abc")
	err := Auth(codec, repo)(func(c echo.Context) error { return nil })(c)

	if code := httpErrorCode(t, err); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	codec := service.NewTokenCodec("secret", time.Hour)
	repo := &stubUserRepo{byID: map[string]*domain.User{}}

	// Signed with the right secret, but exp is an hour in the past.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user_1",
		"role": "designer",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	c, _ := authRequest("Bearer " + signed)
	err = Auth(codec, repo)(func(c echo.Context) error { return nil })(c)

	if code := httpErrorCode(t, err); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

// A valid token whose user no longer resolves is rejected: the token alone is
// not identity.
func TestAuth_UnknownUser(t *testing.T) {
	codec := service.NewTokenCodec("secret", time.Hour)
	repo := &stubUserRepo{byID: map[string]*domain.User{}}

	token, err := codec.Issue("user_gone", domain.RoleClient)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, _ := authRequest("Bearer " + token)
	err = Auth(codec, repo)(func(c echo.Context) error { return nil })(c)

	if code := httpErrorCode(t, err); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}
