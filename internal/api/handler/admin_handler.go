package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photoclub/membership-system/internal/api/metrics"
	"github.com/photoclub/membership-system/internal/api/middleware"
	"github.com/photoclub/membership-system/internal/core/domain"
	"github.com/photoclub/membership-system/internal/core/ports"
)

// AdminHandler mutates the admin flag through the directory service.
// Both endpoints run downstream of the RequireAdmin gate.
type AdminHandler struct {
	directory ports.DirectoryService
}

func NewAdminHandler(directory ports.DirectoryService) *AdminHandler {
	return &AdminHandler{directory: directory}
}

// GrantAdmin sets the target account's admin flag.
//
// @Summary      Grant admin
// @Tags         admin
// @Param        userId  path  string  true  "target account id"
// @Success      303
// @Router       /api/admin/grantAdmin/{userId} [get]
func (h *AdminHandler) GrantAdmin(c echo.Context) error {
	id, err := domain.ParseUserID(c.Param("userId"))
	if err != nil {
		// Malformed target fails closed as a no-op, same as a missing one.
		return c.Redirect(http.StatusSeeOther, "/admin")
	}

	if err := h.directory.GrantAdmin(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.AdminMutationsTotal.WithLabelValues("grant").Inc()
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// RevokeAdmin clears the target account's admin flag. Revoking yourself
// destroys your own session: the admin page would otherwise show a view
// the next request is no longer entitled to.
//
// @Summary      Revoke admin
// @Tags         admin
// @Param        userId  path  string  true  "target account id"
// @Success      303
// @Router       /api/admin/revokeAdmin/{userId} [get]
func (h *AdminHandler) RevokeAdmin(c echo.Context) error {
	id, err := domain.ParseUserID(c.Param("userId"))
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}

	actor := middleware.SessionFromContext(c)
	if err := h.directory.RevokeAdmin(c.Request().Context(), id, actor); err != nil {
		return err
	}
	metrics.AdminMutationsTotal.WithLabelValues("revoke").Inc()

	if actor != nil && actor.UserID == id {
		metrics.SessionsDestroyedTotal.WithLabelValues("self_revoke").Inc()
		clearSessionCookie(c)
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	return c.Redirect(http.StatusSeeOther, "/admin")
}
