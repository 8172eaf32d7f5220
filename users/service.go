package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/user/purpleshorts-go/apperror"
	"github.com/user/purpleshorts-go/pagination"
)

// Closed error set for user operations.
const (
	CodeUserNotFound    = "USER_NOT_FOUND"
	CodeUsersNotFound   = "USERS_NOT_FOUND"
	CodePageBeyondLimit = "PAGE_BEYOND_LIMIT"
	CodeUnknown         = "UNKNOWN"
)

// Service provides user profile reads.
type Service interface {
	GetMe(ctx context.Context, userID string) (*MeResponse, error)
	ListUsers(ctx context.Context, page, limit int) (*UsersResponse, error)
	GetUserByID(ctx context.Context, id string) (*DetailResponse, error)
}

type userService struct {
	store  Store
	logger *zap.Logger
}

// NewService creates the user service.
func NewService(store Store, logger *zap.Logger) Service {
	return &userService{store: store, logger: logger}
}

// GetMe returns the authenticated user's profile with nested posts, comments
// (carrying their parent post title) and likes.
func (s *userService) GetMe(ctx context.Context, userID string) (*MeResponse, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("User not found", nil).WithCode(CodeUserNotFound)
		}
		s.logger.Error("get me: user lookup failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}

	posts, err := s.store.PostsByUser(ctx, userID)
	if err != nil {
		s.logger.Error("get me: posts lookup failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	comments, err := s.store.CommentsByUser(ctx, userID, false)
	if err != nil {
		s.logger.Error("get me: comments lookup failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	likes, err := s.store.LikesByUser(ctx, userID)
	if err != nil {
		s.logger.Error("get me: likes lookup failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}

	return &MeResponse{User: &Profile{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		About:     user.About,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Posts:     emptyIfNil(posts),
		Comments:  emptyIfNil(comments),
		Likes:     emptyIfNil(likes),
	}}, nil
}

// ListUsers returns one page of users ordered by name. An empty table is
// USERS_NOT_FOUND; asking for a page past ceil(total/limit) is
// PAGE_BEYOND_LIMIT, so clients can tell "no users" from "no more pages".
func (s *userService) ListUsers(ctx context.Context, page, limit int) (*UsersResponse, error) {
	total, err := s.store.CountUsers(ctx)
	if err != nil {
		s.logger.Error("list users: count failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	if total == 0 {
		return nil, apperror.NewNotFoundError("Users not found", nil).WithCode(CodeUsersNotFound)
	}
	if page > pagination.TotalPages(total, limit) {
		return nil, apperror.NewNotFoundError("Page beyond limit", nil).WithCode(CodePageBeyondLimit)
	}

	window := pagination.Paginate(page, limit)
	users, err := s.store.ListUsers(ctx, window.Skip, window.Take)
	if err != nil {
		s.logger.Error("list users: query failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	return &UsersResponse{Users: users}, nil
}

// GetUserByID returns a public profile with posts, comments and aggregate
// counts. Comments orphaned by a post deletion are filtered out and excluded
// from commentsCount.
func (s *userService) GetUserByID(ctx context.Context, id string) (*DetailResponse, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("User not found", nil).WithCode(CodeUserNotFound)
		}
		s.logger.Error("get user: lookup failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}

	posts, err := s.store.PostsByUser(ctx, id)
	if err != nil {
		s.logger.Error("get user: posts lookup failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	comments, err := s.store.CommentsByUser(ctx, id, true)
	if err != nil {
		s.logger.Error("get user: comments lookup failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}

	return &DetailResponse{User: &Detail{
		ID:            user.ID,
		Username:      user.Username,
		Name:          user.Name,
		About:         user.About,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
		PostsCount:    len(posts),
		CommentsCount: len(comments),
		Posts:         emptyIfNil(posts),
		Comments:      emptyIfNil(comments),
	}}, nil
}

// emptyIfNil keeps nested collections serializing as [] rather than null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
