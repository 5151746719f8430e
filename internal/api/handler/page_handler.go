package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/photoclub/membership-system/internal/api/middleware"
	"github.com/photoclub/membership-system/internal/core/ports"
)

// PageHandler renders the HTML pages.
type PageHandler struct {
	directory ports.DirectoryService
}

func NewPageHandler(directory ports.DirectoryService) *PageHandler {
	return &PageHandler{directory: directory}
}

func (h *PageHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}

// LoginPage renders the login form; already-authenticated browsers are sent
// to the members area instead.
func (h *PageHandler) LoginPage(c echo.Context) error {
	if s := middleware.SessionFromContext(c); s != nil && s.Authenticated {
		return c.Redirect(http.StatusSeeOther, "/members")
	}
	return c.Render(http.StatusOK, "login.html", nil)
}

func (h *PageHandler) RegisterPage(c echo.Context) error {
	if s := middleware.SessionFromContext(c); s != nil && s.Authenticated {
		return c.Redirect(http.StatusSeeOther, "/members")
	}
	return c.Render(http.StatusOK, "register.html", nil)
}

func (h *PageHandler) MembersPage(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	return c.Render(http.StatusOK, "members.html", membersPageData{Username: session.Username})
}

// AdminPage renders the directory with optional search results. An absent
// username parameter means no search was performed, which is rendered
// differently from a search with zero matches. An unparseable or
// non-positive limit is ignored.
func (h *PageHandler) AdminPage(c echo.Context) error {
	params := c.QueryParams()

	var query *string
	if params.Has("username") {
		v := params.Get("username")
		query = &v
	}

	var limit int64
	if raw := params.Get("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	results, err := h.directory.Search(c.Request().Context(), query, limit)
	if err != nil {
		return err
	}

	data := adminPageData{Searched: query != nil, Results: results}
	if query != nil {
		data.Query = *query
	}
	return c.Render(http.StatusOK, "admin.html", data)
}

// NotFound is the catch-all for unmatched routes.
func (h *PageHandler) NotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "error.html", errorPageData{
		Code:    http.StatusNotFound,
		Message: "Page not found",
	})
}
