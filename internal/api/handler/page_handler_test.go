package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/photoclub/membership-system/internal/core/domain"
	"github.com/photoclub/membership-system/internal/web"
)

func newPageEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = web.NewRenderer()
	return e
}

func TestPageHandler_LoginPage_RedirectsAuthenticated(t *testing.T) {
	e := newPageEcho()
	handler := NewPageHandler(&stubDirectoryService{})

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session", memberSession())

	if err := handler.LoginPage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertRedirect(t, rec, "/members")
}

func TestPageHandler_LoginPage_RendersForAnonymous(t *testing.T) {
	e := newPageEcho()
	handler := NewPageHandler(&stubDirectoryService{})

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.LoginPage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/api/login") {
		t.Fatalf("login form missing from page")
	}
}

func TestPageHandler_MembersPage_ShowsUsername(t *testing.T) {
	e := newPageEcho()
	handler := NewPageHandler(&stubDirectoryService{})

	req := httptest.NewRequest(http.MethodGet, "/members", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session", memberSession())

	if err := handler.MembersPage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "alice") {
		t.Fatalf("members page must greet the cached username")
	}
}

func TestPageHandler_AdminPage_NotSearched(t *testing.T) {
	e := newPageEcho()
	stub := &stubDirectoryService{
		searchFn: func(_ context.Context, query *string, _ int64) ([]domain.UserSummary, error) {
			if query != nil {
				t.Fatalf("absent username param must search with a nil query")
			}
			return nil, nil
		},
	}
	handler := NewPageHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.AdminPage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Search the directory") {
		t.Fatalf("expected the not-searched marker, got: %s", rec.Body.String())
	}
}

func TestPageHandler_AdminPage_EmptySearchDistinctFromNotSearched(t *testing.T) {
	e := newPageEcho()
	stub := &stubDirectoryService{
		searchFn: func(_ context.Context, query *string, _ int64) ([]domain.UserSummary, error) {
			if query == nil || *query != "zzz" {
				t.Fatalf("expected query zzz, got %v", query)
			}
			return []domain.UserSummary{}, nil
		},
	}
	handler := NewPageHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/admin?username=zzz", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.AdminPage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "No users matched") {
		t.Fatalf("expected empty-result rendering, got: %s", rec.Body.String())
	}
}

func TestPageHandler_AdminPage_RendersResults(t *testing.T) {
	e := newPageEcho()
	stub := &stubDirectoryService{
		searchFn: func(_ context.Context, query *string, limit int64) ([]domain.UserSummary, error) {
			if query == nil || *query != "ali" {
				t.Fatalf("expected query ali, got %v", query)
			}
			if limit != 1 {
				t.Fatalf("expected limit 1, got %d", limit)
			}
			return []domain.UserSummary{{ID: "u1", Username: "alice", IsAdmin: false}}, nil
		},
	}
	handler := NewPageHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/admin?username=ali&limit=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.AdminPage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "alice") || !strings.Contains(body, "/api/admin/grantAdmin/u1") {
		t.Fatalf("expected result row with grant link, got: %s", body)
	}
}

func TestPageHandler_AdminPage_InvalidLimitIgnored(t *testing.T) {
	e := newPageEcho()
	for _, raw := range []string{"abc", "-3", "0"} {
		stub := &stubDirectoryService{
			searchFn: func(_ context.Context, _ *string, limit int64) ([]domain.UserSummary, error) {
				if limit != 0 {
					t.Fatalf("limit %q must be ignored, got %d", raw, limit)
				}
				return nil, nil
			},
		}
		handler := NewPageHandler(stub)

		req := httptest.NewRequest(http.MethodGet, "/admin?username=&limit="+raw, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler.AdminPage(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
	}
}

func TestPageHandler_NotFound(t *testing.T) {
	e := newPageEcho()
	handler := NewPageHandler(&stubDirectoryService{})

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.NotFound(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "404") {
		t.Fatalf("error page must show the status code")
	}
}
