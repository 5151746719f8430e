package handler

import "github.com/photoclub/membership-system/internal/core/domain"

// --- Request types ---
// Bound from the urlencoded login/register forms; JSON tags keep the API
// usable from non-browser clients.

type loginRequest struct {
	Username string `form:"username" json:"username" validate:"required,alphanum,max=24"`
	// No format rule on login: the stored password already satisfied the
	// registration rule, and a malformed guess just fails verification.
	Password string `form:"password" json:"password"`
}

type registerRequest struct {
	Username string `form:"username" json:"username" validate:"required,alphanum,max=24"`
	Password string `form:"password" json:"password" validate:"required,max=24"`
}

// --- Page view models ---

type membersPageData struct {
	Username string
}

type adminPageData struct {
	Searched bool
	Query    string
	Results  []domain.UserSummary
}

type errorPageData struct {
	Code    int
	Message string
}
