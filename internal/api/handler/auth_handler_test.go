package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/atelierhub/design-collab/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password, remoteAddr string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	return s.registerFn(ctx, username, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, username, password, remoteAddr string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password, remoteAddr)
}

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
			if username != "alice" || password != "pw1" || role != domain.RoleDesigner {
				t.Fatalf("unexpected args: %s %s %s", username, password, role)
			}
			return &domain.User{ID: "user_1", Username: username, Role: role}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/register", `{"username":"alice","password":"pw1","role":"designer"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["message"] != "User registered successfully" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/register", `{"username":"bob","password":"pw","role":"client"}`)
	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidRole(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
			return nil, domain.ErrInvalidRole
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/register", `{"username":"bob","password":"pw","role":"admin"}`)
	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/register", `{"username":"bob"}`)
	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password, remoteAddr string) (string, *domain.User, error) {
			if username != "alice" || password != "pw1" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "token123", &domain.User{ID: "user_1", Username: "alice", Role: domain.RoleDesigner}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/login", `{"username":"alice","password":"pw1"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["token"] != "token123" || resp["role"] != "designer" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if resp["message"] != "Login successful" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

// The caller address travels with the credentials so the throttle can be
// scoped per username and address.
func TestAuthHandler_Login_ForwardsCallerAddr(t *testing.T) {
	var gotAddr string
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password, remoteAddr string) (string, *domain.User, error) {
			gotAddr = remoteAddr
			return "token123", &domain.User{ID: "user_1", Username: "alice", Role: domain.RoleDesigner}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/login", `{"username":"alice","password":"pw1"}`)
	c.Request().Header.Set(echo.HeaderXRealIP, "198.51.100.7")
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if gotAddr != "198.51.100.7" {
		t.Fatalf("expected caller address to be forwarded, got %q", gotAddr)
	}
}

// Wrong password and unknown username yield identical responses.
func TestAuthHandler_Login_GenericFailure(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password, remoteAddr string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c1, rec1 := newTestContext(http.MethodPost, "/api/login", `{"username":"alice","password":"wrong"}`)
	_ = handler.Login(c1)
	c2, rec2 := newTestContext(http.MethodPost, "/api/login", `{"username":"ghost","password":"whatever"}`)
	_ = handler.Login(c2)

	if rec1.Code != http.StatusBadRequest || rec2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400/400, got %d/%d", rec1.Code, rec2.Code)
	}
	if rec1.Body.String() != rec2.Body.String() {
		t.Fatalf("failure responses differ: %s vs %s", rec1.Body.String(), rec2.Body.String())
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password, remoteAddr string) (string, *domain.User, error) {
			return "", nil, domain.ErrTooManyAttempts
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/login", `{"username":"alice","password":"pw"}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password, remoteAddr string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/login", "{")
	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
