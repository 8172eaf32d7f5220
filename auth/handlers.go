package auth

import (
	"encoding/json"
	"net/http"

	"github.com/user/purpleshorts-go/apperror"
)

// Handlers exposes the authentication endpoints over HTTP.
type Handlers struct {
	service Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service Service) *Handlers {
	return &Handlers{service: service}
}

// HandleSignUp godoc
// @Summary Sign up with username and password
// @Description Creates a new account and returns a bearer token plus the created user.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body auth.SignUpRequest true "Sign-up details"
// @Success 200 {object} auth.AuthResponse "Token and user"
// @Failure 400 {object} apperror.ErrorResponse "Invalid request body"
// @Failure 409 {object} apperror.ErrorResponse "Username already exists"
// @Failure 500 {object} apperror.ErrorResponse "Unknown error"
// @Router /auth/sign-in [post]
func (h *Handlers) HandleSignUp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Username == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("username and password are required", nil))
			return
		}

		payload, err := h.service.SignUp(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, AuthResponse{Data: payload})
	}
}

// HandleLogIn godoc
// @Summary Log in with username and password
// @Description Authenticates an existing account and returns a bearer token plus the user.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body auth.LogInRequest true "Log-in credentials"
// @Success 200 {object} auth.AuthResponse "Token and user"
// @Failure 400 {object} apperror.ErrorResponse "Invalid request body"
// @Failure 401 {object} apperror.ErrorResponse "Incorrect username or password"
// @Failure 500 {object} apperror.ErrorResponse "Unknown error"
// @Router /auth/log-in [post]
func (h *Handlers) HandleLogIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LogInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Username == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("username and password are required", nil))
			return
		}

		payload, err := h.service.LogIn(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, AuthResponse{Data: payload})
	}
}
