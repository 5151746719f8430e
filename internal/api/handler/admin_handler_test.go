package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/photoclub/membership-system/internal/core/domain"
)

type stubDirectoryService struct {
	searchFn func(ctx context.Context, query *string, limit int64) ([]domain.UserSummary, error)
	granted  []domain.UserID
	revoked  []domain.UserID
	actors   []*domain.Session
}

func (s *stubDirectoryService) Search(ctx context.Context, query *string, limit int64) ([]domain.UserSummary, error) {
	if s.searchFn == nil {
		return nil, nil
	}
	return s.searchFn(ctx, query, limit)
}

func (s *stubDirectoryService) GrantAdmin(_ context.Context, id domain.UserID) error {
	s.granted = append(s.granted, id)
	return nil
}

func (s *stubDirectoryService) RevokeAdmin(_ context.Context, id domain.UserID, actor *domain.Session) error {
	s.revoked = append(s.revoked, id)
	s.actors = append(s.actors, actor)
	return nil
}

func newParamContext(e *echo.Echo, path, userID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues(userID)
	return c, rec
}

func TestAdminHandler_GrantAdmin(t *testing.T) {
	e := echo.New()
	stub := &stubDirectoryService{}
	handler := NewAdminHandler(stub)

	c, rec := newParamContext(e, "/api/admin/grantAdmin/u1", "u1")
	if err := handler.GrantAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertRedirect(t, rec, "/admin")

	if len(stub.granted) != 1 || stub.granted[0] != domain.UserID("u1") {
		t.Fatalf("expected grant of u1, got %v", stub.granted)
	}
}

func TestAdminHandler_GrantAdmin_MalformedTargetIsNoOp(t *testing.T) {
	e := echo.New()
	stub := &stubDirectoryService{}
	handler := NewAdminHandler(stub)

	c, rec := newParamContext(e, "/api/admin/grantAdmin/x", strings.Repeat("x", 65))
	if err := handler.GrantAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertRedirect(t, rec, "/admin")

	if len(stub.granted) != 0 {
		t.Fatalf("malformed id must fail closed, got %v", stub.granted)
	}
}

func TestAdminHandler_RevokeAdmin_OtherUser(t *testing.T) {
	e := echo.New()
	stub := &stubDirectoryService{}
	handler := NewAdminHandler(stub)

	c, rec := newParamContext(e, "/api/admin/revokeAdmin/u2", "u2")
	c.Set("session", &domain.Session{ID: "sess-1", Authenticated: true, UserID: "u1"})

	if err := handler.RevokeAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertRedirect(t, rec, "/admin")

	if len(stub.revoked) != 1 || stub.revoked[0] != domain.UserID("u2") {
		t.Fatalf("expected revoke of u2, got %v", stub.revoked)
	}
	if sessionCookie(rec) != nil {
		t.Fatalf("revoking someone else must not touch the actor's cookie")
	}
}

func TestAdminHandler_RevokeAdmin_SelfForcesLogout(t *testing.T) {
	e := echo.New()
	stub := &stubDirectoryService{}
	handler := NewAdminHandler(stub)

	c, rec := newParamContext(e, "/api/admin/revokeAdmin/u1", "u1")
	c.Set("session", &domain.Session{ID: "sess-1", Authenticated: true, UserID: "u1"})

	if err := handler.RevokeAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertRedirect(t, rec, "/login")

	cookie := sessionCookie(rec)
	if cookie == nil || cookie.MaxAge != -1 {
		t.Fatalf("self-revocation must clear the cookie, got %+v", cookie)
	}
	if len(stub.actors) != 1 || stub.actors[0] == nil || stub.actors[0].ID != "sess-1" {
		t.Fatalf("actor session must be passed through for destruction")
	}
}
