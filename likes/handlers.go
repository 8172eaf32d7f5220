package likes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/purpleshorts-go/apperror"
	"github.com/user/purpleshorts-go/auth"
	"github.com/user/purpleshorts-go/pagination"
)

// Handlers exposes the like endpoints over HTTP.
type Handlers struct {
	service Service
}

// NewHandlers creates new like Handlers.
func NewHandlers(service Service) *Handlers {
	return &Handlers{service: service}
}

// HandleLikePost godoc
// @Summary Like a post
// @Description Likes a post. Liking a post the user already liked returns 200
// @Description with an acknowledgement instead of creating a duplicate.
// @Tags likes
// @Produce json
// @Param token header string true "Bearer token"
// @Param postId path string true "Post id"
// @Success 201 {object} auth.Message "Post liked"
// @Success 200 {object} auth.Message "Already liked"
// @Failure 404 {object} apperror.ErrorResponse "Post not found"
// @Failure 500 {object} apperror.ErrorResponse "Unknown error"
// @Router /likes/on/{postId} [post]
func (h *Handlers) HandleLikePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := chi.URLParam(r, "postId")
		userID, _ := auth.UserIDFromContext(r.Context())

		outcome, err := h.service.LikePost(r.Context(), postID, userID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		if outcome == AlreadyLiked {
			auth.WriteJSON(w, http.StatusOK, auth.Message{Message: "You have already liked this post"})
			return
		}
		auth.WriteJSON(w, http.StatusCreated, auth.Message{Message: "Post liked successfully"})
	}
}

// HandleListLikes godoc
// @Summary List likes on a post
// @Tags likes
// @Produce json
// @Param token header string true "Bearer token"
// @Param postId path string true "Post id"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 2)"
// @Success 200 {object} likes.LikesResponse
// @Failure 404 {object} apperror.ErrorResponse "Post or likes not found"
// @Failure 500 {object} apperror.ErrorResponse "Unknown error"
// @Router /likes/on/{postId} [get]
func (h *Handlers) HandleListLikes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := chi.URLParam(r, "postId")
		page, limit := pagination.FromRequest(r)
		resp, err := h.service.ListLikesOnPost(r.Context(), postID, page, limit)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleUnlikePost godoc
// @Summary Remove a like from a post
// @Description Deletes the requester's like on the post.
// @Tags likes
// @Produce json
// @Param token header string true "Bearer token"
// @Param postId path string true "Post id"
// @Success 200 {object} auth.Message
// @Failure 400 {object} apperror.ErrorResponse "Missing ids"
// @Failure 404 {object} apperror.ErrorResponse "Like not found"
// @Failure 500 {object} apperror.ErrorResponse "Unknown error"
// @Router /likes/on/{postId} [delete]
func (h *Handlers) HandleUnlikePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := chi.URLParam(r, "postId")
		userID, _ := auth.UserIDFromContext(r.Context())
		if postID == "" || userID == "" {
			auth.WriteError(w, r, apperror.NewBadRequestError("post id and user id are required", nil))
			return
		}

		if err := h.service.UnlikePost(r.Context(), postID, userID); err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, auth.Message{Message: "Like deleted successfully"})
	}
}
