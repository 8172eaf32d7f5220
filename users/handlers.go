package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/purpleshorts-go/apperror"
	"github.com/user/purpleshorts-go/auth"
	"github.com/user/purpleshorts-go/pagination"
)

// Handlers exposes the user endpoints over HTTP.
type Handlers struct {
	service Service
}

// NewHandlers creates new user Handlers.
func NewHandlers(service Service) *Handlers {
	return &Handlers{service: service}
}

// HandleGetMe godoc
// @Summary Get the authenticated user's profile
// @Description Returns the profile with nested posts, comments and likes.
// @Tags users
// @Produce json
// @Param token header string true "Bearer token"
// @Success 200 {object} users.MeResponse
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Failure 500 {object} apperror.ErrorResponse "Unknown error"
// @Router /users/me [get]
func (h *Handlers) HandleGetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Unauthorized", nil))
			return
		}

		resp, err := h.service.GetMe(r.Context(), userID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleListUsers godoc
// @Summary List users
// @Description Returns one page of users ordered by name.
// @Tags users
// @Produce json
// @Param token header string true "Bearer token"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 2)"
// @Success 200 {object} users.UsersResponse
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 404 {object} apperror.ErrorResponse "No users, or page beyond the last page"
// @Failure 500 {object} apperror.ErrorResponse "Unknown error"
// @Router /users [get]
func (h *Handlers) HandleListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pagination.FromRequest(r)
		resp, err := h.service.ListUsers(r.Context(), page, limit)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleGetUserByID godoc
// @Summary Get a user's public profile
// @Description Returns the profile with posts, comments and aggregate counts. No authentication required.
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} users.DetailResponse
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Failure 500 {object} apperror.ErrorResponse "Unknown error"
// @Router /users/{id} [get]
func (h *Handlers) HandleGetUserByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			auth.WriteError(w, r, apperror.NewBadRequestError("user id is required", nil))
			return
		}

		resp, err := h.service.GetUserByID(r.Context(), id)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, resp)
	}
}
