package likes

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/user/purpleshorts-go/apperror"
	"github.com/user/purpleshorts-go/pagination"
)

// Closed error set for like operations.
const (
	CodePostNotFound = "POST_NOT_FOUND"
	CodeNoLikesFound = "NO_LIKES_FOUND"
	CodeLikeNotFound = "LIKE_NOT_FOUND"
	CodeUnknown      = "UNKNOWN"
)

const pgUniqueViolation = "23505"

// Outcome distinguishes the two success shapes of liking a post.
type Outcome int

const (
	// Liked means a new like row was created.
	Liked Outcome = iota
	// AlreadyLiked means the user already held a like on the post.
	AlreadyLiked
)

// Service provides like operations.
type Service interface {
	// LikePost records a like. Liking a post twice is not an error; the
	// outcome reports which case occurred.
	LikePost(ctx context.Context, postID, userID string) (Outcome, error)
	ListLikesOnPost(ctx context.Context, postID string, page, limit int) (*LikesResponse, error)
	// UnlikePost removes the requester's like from a post.
	UnlikePost(ctx context.Context, postID, userID string) error
}

type likeService struct {
	store  Store
	logger *zap.Logger
}

// NewService creates the like service.
func NewService(store Store, logger *zap.Logger) Service {
	return &likeService{store: store, logger: logger}
}

// LikePost checks for an existing like before inserting. Two concurrent
// first-likes both pass the check; the unique constraint on (post_id, user_id)
// rejects the loser and that rejection is folded into AlreadyLiked.
func (s *likeService) LikePost(ctx context.Context, postID, userID string) (Outcome, error) {
	exists, err := s.store.PostExists(ctx, postID)
	if err != nil {
		s.logger.Error("like post: post check failed", zap.Error(err))
		return 0, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	if !exists {
		return 0, apperror.NewNotFoundError("Post not found", nil).WithCode(CodePostNotFound)
	}

	if _, err := s.store.FindByPostAndUser(ctx, postID, userID); err == nil {
		return AlreadyLiked, nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("like post: lookup failed", zap.Error(err))
		return 0, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}

	like := &Like{ID: uuid.NewString(), PostID: postID, UserID: userID}
	if err := s.store.CreateLike(ctx, like); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return AlreadyLiked, nil
		}
		s.logger.Error("like post: insert failed", zap.Error(err))
		return 0, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	return Liked, nil
}

// ListLikesOnPost returns one page of likes, newest first. A post with no
// likes is reported as NO_LIKES_FOUND.
func (s *likeService) ListLikesOnPost(ctx context.Context, postID string, page, limit int) (*LikesResponse, error) {
	exists, err := s.store.PostExists(ctx, postID)
	if err != nil {
		s.logger.Error("list likes: post check failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	if !exists {
		return nil, apperror.NewNotFoundError("Post not found", nil).WithCode(CodePostNotFound)
	}

	window := pagination.Paginate(page, limit)
	likes, err := s.store.ListLikesByPost(ctx, postID, window.Skip, window.Take)
	if err != nil {
		s.logger.Error("list likes: query failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	if len(likes) == 0 {
		return nil, apperror.NewNotFoundError("No likes found", nil).WithCode(CodeNoLikesFound)
	}
	return &LikesResponse{Likes: likes}, nil
}

// UnlikePost resolves the like by (post, user) and deletes it by id.
func (s *likeService) UnlikePost(ctx context.Context, postID, userID string) error {
	like, err := s.store.FindByPostAndUser(ctx, postID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NewNotFoundError("Like not found", nil).WithCode(CodeLikeNotFound)
		}
		s.logger.Error("unlike post: lookup failed", zap.Error(err))
		return apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	if err := s.store.DeleteLike(ctx, like.ID); err != nil {
		s.logger.Error("unlike post: delete failed", zap.Error(err))
		return apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	return nil
}
