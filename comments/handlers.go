package comments

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/purpleshorts-go/apperror"
	"github.com/user/purpleshorts-go/auth"
	"github.com/user/purpleshorts-go/pagination"
)

// Handlers exposes the comment endpoints over HTTP.
type Handlers struct {
	service Service
}

// NewHandlers creates new comment Handlers.
func NewHandlers(service Service) *Handlers {
	return &Handlers{service: service}
}

// HandleCreateComment godoc
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Param token header string true "Bearer token"
// @Param postId path string true "Post id"
// @Param body body comments.CommentRequest true "Comment content"
// @Success 201 {object} comments.CommentResponse
// @Failure 400 {object} apperror.ErrorResponse "Invalid request body"
// @Failure 404 {object} apperror.ErrorResponse "Post not found"
// @Failure 500 {object} apperror.ErrorResponse "Comment creation failed"
// @Router /comments/on/{postId} [post]
func (h *Handlers) HandleCreateComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Content == "" {
			auth.WriteError(w, r, apperror.NewBadRequestError("content is required", nil))
			return
		}

		postID := chi.URLParam(r, "postId")
		userID, _ := auth.UserIDFromContext(r.Context())
		resp, err := h.service.CreateComment(r.Context(), postID, userID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusCreated, resp)
	}
}

// HandleListComments godoc
// @Summary List comments on a post
// @Description Returns one page of comments, newest first. A page past the
// @Description end is an empty array, not an error.
// @Tags comments
// @Produce json
// @Param token header string true "Bearer token"
// @Param postId path string true "Post id"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 2)"
// @Success 200 {object} comments.CommentsResponse
// @Failure 404 {object} apperror.ErrorResponse "Post not found"
// @Failure 500 {object} apperror.ErrorResponse "Unknown error"
// @Router /comments/on/{postId} [get]
func (h *Handlers) HandleListComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := chi.URLParam(r, "postId")
		page, limit := pagination.FromRequest(r)
		resp, err := h.service.ListCommentsOnPost(r.Context(), postID, page, limit)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleUpdateComment godoc
// @Summary Update a comment
// @Description Replaces the comment's content. Only the author may update it.
// @Tags comments
// @Accept json
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path string true "Comment id"
// @Param body body comments.CommentRequest true "New content"
// @Success 200 {object} auth.Message
// @Failure 400 {object} apperror.ErrorResponse "Invalid request body"
// @Failure 403 {object} apperror.ErrorResponse "Not the author"
// @Failure 404 {object} apperror.ErrorResponse "Comment not found"
// @Failure 500 {object} apperror.ErrorResponse "Unknown error"
// @Router /comments/{id} [put]
func (h *Handlers) HandleUpdateComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Content == "" {
			auth.WriteError(w, r, apperror.NewBadRequestError("content is required", nil))
			return
		}

		commentID := chi.URLParam(r, "id")
		requesterID, _ := auth.UserIDFromContext(r.Context())
		if err := h.service.UpdateComment(r.Context(), commentID, requesterID, req.Content); err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, auth.Message{Message: "Comment updated successfully"})
	}
}

// HandleDeleteComment godoc
// @Summary Delete a comment
// @Description Deletes a comment. Only the author may delete it.
// @Tags comments
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path string true "Comment id"
// @Success 200 {object} auth.Message
// @Failure 403 {object} apperror.ErrorResponse "Not the author"
// @Failure 404 {object} apperror.ErrorResponse "Comment not found"
// @Failure 500 {object} apperror.ErrorResponse "Unknown error"
// @Router /comments/{id} [delete]
func (h *Handlers) HandleDeleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID := chi.URLParam(r, "id")
		requesterID, _ := auth.UserIDFromContext(r.Context())
		if err := h.service.DeleteComment(r.Context(), commentID, requesterID); err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, auth.Message{Message: "Comment deleted successfully"})
	}
}
