package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coolbreeze/internal/domain"
	authsvc "coolbreeze/internal/service/auth"
)

func TestSignupHandler_Created(t *testing.T) {
	deps := testDeps()
	deps.AuthSvc = &stubAuthService{
		user: &domain.User{ID: "user-1", Email: "user@example.pk"},
	}
	router := newTestRouter(t, deps)

	body := `{"email":"user@example.pk","password":"Abcdefg1","firstName":"Ayesha"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"user@example.pk"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSignupHandler_DuplicateEmail(t *testing.T) {
	deps := testDeps()
	deps.AuthSvc = &stubAuthService{signupErr: domain.ErrAlreadyExists}
	router := newTestRouter(t, deps)

	body := `{"email":"user@example.pk","password":"Abcdefg1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), codeAlreadyExists) {
		t.Fatalf("expected already_exists code: %s", rec.Body.String())
	}
}

func TestLoginHandler_Success(t *testing.T) {
	deps := testDeps()
	deps.AuthSvc = &stubAuthService{
		user: &domain.User{ID: "user-1", Email: "user@example.pk"},
	}
	router := newTestRouter(t, deps)

	body := `{"email":"user@example.pk","password":"Abcdefg1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	for _, want := range []string{`"accessToken":"access"`, `"refreshToken":"refresh"`, `"expiresIn":3600`} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("body missing %s: %s", want, rec.Body.String())
		}
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	deps := testDeps()
	deps.AuthSvc = &stubAuthService{loginErr: authsvc.ErrInvalidCredentials}
	router := newTestRouter(t, deps)

	body := `{"email":"user@example.pk","password":"badpass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestMeHandler_UnauthorizedWithoutToken(t *testing.T) {
	router := newTestRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), codeAuthRequired) {
		t.Fatalf("expected auth_required code: %s", rec.Body.String())
	}
}

func TestMeHandler_Success(t *testing.T) {
	deps := testDeps()
	deps.AuthSvc = &stubAuthService{
		user: &domain.User{ID: "user-1", Email: "me@example.pk"},
	}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"me@example.pk"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLogoutHandler_RevokesPresentedToken(t *testing.T) {
	auth := &stubAuthService{user: &domain.User{ID: "user-1"}}
	deps := testDeps()
	deps.AuthSvc = auth
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer the-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rec.Code, rec.Body.String())
	}
	if auth.lastLogout != "the-token" {
		t.Fatalf("expected presented token to be revoked, got %q", auth.lastLogout)
	}
}
