package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photoclub/membership-system/internal/api/metrics"
	"github.com/photoclub/membership-system/internal/api/middleware"
	"github.com/photoclub/membership-system/internal/core/domain"
	"github.com/photoclub/membership-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new member account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "1-24 alphanumeric characters"
// @Param        password  formData  string  true  "1-24 characters"
// @Success      303
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.Redirect(http.StatusSeeOther, "/register")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	_, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	switch {
	case err == nil:
		metrics.RegistrationsTotal.WithLabelValues("created").Inc()
		return c.Redirect(http.StatusSeeOther, "/login")
	case errors.Is(err, domain.ErrValidation):
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.Redirect(http.StatusSeeOther, "/register")
	case errors.Is(err, domain.ErrUsernameTaken):
		metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		return c.Redirect(http.StatusSeeOther, "/register")
	default:
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}
}

// Login verifies credentials, establishes a session and redirects by role.
//
// @Summary      Log in
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "1-24 alphanumeric characters"
// @Param        password  formData  string  true  "password"
// @Success      303
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	user, session, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrValidation):
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return c.Redirect(http.StatusSeeOther, "/login")
	case errors.Is(err, domain.ErrInvalidCredentials):
		metrics.LoginsTotal.WithLabelValues("denied").Inc()
		return c.Redirect(http.StatusSeeOther, "/login")
	default:
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	setSessionCookie(c, session)

	// Role hint from the fresh account read decides the landing page;
	// the role itself is re-checked on every admin request.
	if user.IsAdmin {
		metrics.LoginsTotal.WithLabelValues("admin").Inc()
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	metrics.LoginsTotal.WithLabelValues("member").Inc()
	return c.Redirect(http.StatusSeeOther, "/members")
}

// Logout destroys the session and clears the cookie. Always redirects to
// the login page, whether or not a session existed.
//
// @Summary      Log out
// @Tags         auth
// @Success      303
// @Router       /api/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if session := middleware.SessionFromContext(c); session != nil {
		h.authService.Logout(c.Request().Context(), session.ID)
		metrics.SessionsDestroyedTotal.WithLabelValues("logout").Inc()
	}
	clearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}

func setSessionCookie(c echo.Context, session *domain.Session) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
