package posts

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/purpleshorts-go/apperror"
	"github.com/user/purpleshorts-go/auth"
	"github.com/user/purpleshorts-go/pagination"
)

// Handlers exposes the post endpoints over HTTP.
type Handlers struct {
	service Service
}

// NewHandlers creates new post Handlers.
func NewHandlers(service Service) *Handlers {
	return &Handlers{service: service}
}

// HandleCreatePost godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param token header string true "Bearer token"
// @Param body body posts.CreatePostRequest true "Post details"
// @Success 201 {object} posts.PostResponse
// @Failure 400 {object} apperror.ErrorResponse "Invalid request body"
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Failure 500 {object} apperror.ErrorResponse "Post creation failed"
// @Router /posts [post]
func (h *Handlers) HandleCreatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Title == "" || req.Content == "" {
			auth.WriteError(w, r, apperror.NewBadRequestError("title and content are required", nil))
			return
		}

		authorID, _ := auth.UserIDFromContext(r.Context())
		resp, err := h.service.CreatePost(r.Context(), authorID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusCreated, resp)
	}
}

// HandleListPosts godoc
// @Summary List posts
// @Description Returns one page of posts in reverse chronological order.
// @Tags posts
// @Produce json
// @Param token header string true "Bearer token"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 2)"
// @Success 200 {object} posts.PostsResponse
// @Failure 404 {object} apperror.ErrorResponse "No posts found"
// @Failure 500 {object} apperror.ErrorResponse "Unknown error"
// @Router /posts [get]
func (h *Handlers) HandleListPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pagination.FromRequest(r)
		resp, err := h.service.ListPosts(r.Context(), page, limit)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleListPostsByUser godoc
// @Summary List a user's posts
// @Tags posts
// @Produce json
// @Param token header string true "Bearer token"
// @Param userId path string true "Author user id"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 2)"
// @Success 200 {object} posts.PostsResponse
// @Failure 404 {object} apperror.ErrorResponse "No posts found"
// @Failure 500 {object} apperror.ErrorResponse "Unknown error"
// @Router /posts/user/{userId} [get]
func (h *Handlers) HandleListPostsByUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")
		page, limit := pagination.FromRequest(r)
		resp, err := h.service.ListPostsByUser(r.Context(), userID, page, limit)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleDeletePost godoc
// @Summary Delete a post
// @Description Deletes a post. Only the author may delete it.
// @Tags posts
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path string true "Post id"
// @Success 200 {object} auth.Message
// @Failure 403 {object} apperror.ErrorResponse "Not the author"
// @Failure 404 {object} apperror.ErrorResponse "Post not found"
// @Failure 500 {object} apperror.ErrorResponse "Unknown error"
// @Router /posts/{id} [delete]
func (h *Handlers) HandleDeletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := chi.URLParam(r, "id")
		requesterID, _ := auth.UserIDFromContext(r.Context())

		if err := h.service.DeletePost(r.Context(), postID, requesterID); err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, auth.Message{Message: "Post deleted successfully"})
	}
}
