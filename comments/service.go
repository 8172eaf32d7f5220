package comments

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/user/purpleshorts-go/apperror"
	"github.com/user/purpleshorts-go/pagination"
)

// Closed error set for comment operations.
const (
	CodePostNotFound          = "POST_NOT_FOUND"
	CodeCommentCreationFailed = "COMMENT_CREATION_FAILED"
	CodeCommentNotFound       = "COMMENT_NOT_FOUND"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeUnknown               = "UNKNOWN"
)

// Service provides comment operations. Update and delete verify that the
// requester authored the comment before mutating, matching the ownership rule
// posts already enforce.
type Service interface {
	CreateComment(ctx context.Context, postID, userID string, req CommentRequest) (*CommentResponse, error)
	ListCommentsOnPost(ctx context.Context, postID string, page, limit int) (*CommentsResponse, error)
	UpdateComment(ctx context.Context, commentID, requesterID, content string) error
	DeleteComment(ctx context.Context, commentID, requesterID string) error
}

type commentService struct {
	store  Store
	logger *zap.Logger
}

// NewService creates the comment service.
func NewService(store Store, logger *zap.Logger) Service {
	return &commentService{store: store, logger: logger}
}

// CreateComment validates that the target post exists before writing.
// The check-then-insert pair is not transactional; a post deleted in between
// is caught by the foreign key constraint and reported as POST_NOT_FOUND.
func (s *commentService) CreateComment(ctx context.Context, postID, userID string, req CommentRequest) (*CommentResponse, error) {
	exists, err := s.store.PostExists(ctx, postID)
	if err != nil {
		s.logger.Error("create comment: post check failed", zap.Error(err))
		return nil, apperror.NewInternalError("Comment creation failed", err).WithCode(CodeCommentCreationFailed)
	}
	if !exists {
		return nil, apperror.NewNotFoundError("Post not found", nil).WithCode(CodePostNotFound)
	}

	comment := &Comment{
		ID:      uuid.NewString(),
		Content: req.Content,
		PostID:  &postID,
		UserID:  userID,
	}
	if err := s.store.CreateComment(ctx, comment); err != nil {
		s.logger.Error("create comment: insert failed", zap.Error(err))
		return nil, apperror.NewInternalError("Comment creation failed", err).WithCode(CodeCommentCreationFailed)
	}
	return &CommentResponse{Comment: comment}, nil
}

// ListCommentsOnPost returns one page of comments in reverse chronological
// order. An empty page is a successful empty array, not an error.
func (s *commentService) ListCommentsOnPost(ctx context.Context, postID string, page, limit int) (*CommentsResponse, error) {
	exists, err := s.store.PostExists(ctx, postID)
	if err != nil {
		s.logger.Error("list comments: post check failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	if !exists {
		return nil, apperror.NewNotFoundError("Post not found", nil).WithCode(CodePostNotFound)
	}

	window := pagination.Paginate(page, limit)
	comments, err := s.store.ListCommentsByPost(ctx, postID, window.Skip, window.Take)
	if err != nil {
		s.logger.Error("list comments: query failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	if comments == nil {
		comments = []Comment{}
	}
	return &CommentsResponse{Comments: comments}, nil
}

func (s *commentService) UpdateComment(ctx context.Context, commentID, requesterID, content string) error {
	comment, err := s.getOwnedComment(ctx, commentID, requesterID, "update")
	if err != nil {
		return err
	}
	if err := s.store.UpdateCommentContent(ctx, comment.ID, content); err != nil {
		s.logger.Error("update comment: update failed", zap.Error(err))
		return apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	return nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, requesterID string) error {
	comment, err := s.getOwnedComment(ctx, commentID, requesterID, "delete")
	if err != nil {
		return err
	}
	if err := s.store.DeleteComment(ctx, comment.ID); err != nil {
		s.logger.Error("delete comment: delete failed", zap.Error(err))
		return apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	return nil
}

// getOwnedComment fetches a comment and verifies the requester authored it.
func (s *commentService) getOwnedComment(ctx context.Context, commentID, requesterID, op string) (*Comment, error) {
	comment, err := s.store.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Comment not found", nil).WithCode(CodeCommentNotFound)
		}
		s.logger.Error(op+" comment: lookup failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	if comment.UserID != requesterID {
		return nil, apperror.NewForbiddenError("You are not allowed to "+op+" this comment", nil).WithCode(CodeUnauthorized)
	}
	return comment, nil
}
