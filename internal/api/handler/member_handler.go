package handler

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/photoclub/membership-system/internal/api/middleware"
)

// MemberHandler serves the gated member endpoints. These check the session
// themselves because their failure mode is a plain status response, not the
// login redirect the page gate produces.
type MemberHandler struct {
	photosDir string
}

func NewMemberHandler(photosDir string) *MemberHandler {
	return &MemberHandler{photosDir: photosDir}
}

// GetUsername returns the session's cached username as plain text.
//
// @Summary      Current username
// @Tags         members
// @Produce      plain
// @Success      200  {string}  string
// @Failure      404  {string}  string
// @Router       /api/members/getUsername [get]
func (h *MemberHandler) GetUsername(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil || !session.Authenticated {
		return c.String(http.StatusNotFound, "You're not logged in!")
	}
	return c.String(http.StatusOK, session.Username)
}

// RandomPhoto streams a randomly chosen image from the photos directory.
// The optional :id path segment is accepted as a cache buster and ignored.
//
// @Summary      Random member photo
// @Tags         members
// @Produce      image/jpeg
// @Success      200
// @Failure      400  {string}  string
// @Router       /api/members/randomPhoto [get]
func (h *MemberHandler) RandomPhoto(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil || !session.Authenticated {
		return c.String(http.StatusBadRequest, "You don't have access!")
	}

	photos, err := h.listPhotos()
	if err != nil {
		return fmt.Errorf("list photos: %w", err)
	}
	if len(photos) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no photos available")
	}

	pick := photos[rand.IntN(len(photos))]
	return c.File(filepath.Join(h.photosDir, pick))
}

func (h *MemberHandler) listPhotos() ([]string, error) {
	entries, err := os.ReadDir(h.photosDir)
	if err != nil {
		return nil, err
	}

	var photos []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".jpg", ".jpeg", ".png", ".gif":
			photos = append(photos, entry.Name())
		}
	}
	return photos, nil
}
