package posts

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/user/purpleshorts-go/apperror"
	"github.com/user/purpleshorts-go/pagination"
)

// Closed error set for post operations.
const (
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodePostCreationFailed = "POST_CREATION_FAILED"
	CodeNoPostsFound       = "NO_POSTS_FOUND"
	CodePostNotFound       = "POST_NOT_FOUND"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeUnknown            = "UNKNOWN"
)

// Service provides post operations.
type Service interface {
	CreatePost(ctx context.Context, authorID string, req CreatePostRequest) (*PostResponse, error)
	ListPosts(ctx context.Context, page, limit int) (*PostsResponse, error)
	ListPostsByUser(ctx context.Context, userID string, page, limit int) (*PostsResponse, error)
	// DeletePost removes a post after verifying the requester authored it.
	DeletePost(ctx context.Context, postID, requesterID string) error
}

type postService struct {
	store  Store
	logger *zap.Logger
}

// NewService creates the post service.
func NewService(store Store, logger *zap.Logger) Service {
	return &postService{store: store, logger: logger}
}

func (s *postService) CreatePost(ctx context.Context, authorID string, req CreatePostRequest) (*PostResponse, error) {
	if authorID == "" {
		return nil, apperror.NewNotFoundError("User not found", nil).WithCode(CodeUserNotFound)
	}

	post := &Post{
		ID:      uuid.NewString(),
		Title:   req.Title,
		Content: req.Content,
		UserID:  authorID,
	}
	if err := s.store.CreatePost(ctx, post); err != nil {
		s.logger.Error("create post: insert failed", zap.Error(err))
		return nil, apperror.NewInternalError("Post creation failed", err).WithCode(CodePostCreationFailed)
	}
	return &PostResponse{Post: post}, nil
}

// ListPosts returns one page of posts in reverse chronological order.
// An empty page is NO_POSTS_FOUND rather than an empty success payload;
// clients rely on the 404 to stop paginating.
func (s *postService) ListPosts(ctx context.Context, page, limit int) (*PostsResponse, error) {
	window := pagination.Paginate(page, limit)
	posts, err := s.store.ListPosts(ctx, window.Skip, window.Take)
	if err != nil {
		s.logger.Error("list posts: query failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	if len(posts) == 0 {
		return nil, apperror.NewNotFoundError("No posts found", nil).WithCode(CodeNoPostsFound)
	}
	return &PostsResponse{Posts: posts}, nil
}

// ListPostsByUser behaves like ListPosts restricted to one author.
func (s *postService) ListPostsByUser(ctx context.Context, userID string, page, limit int) (*PostsResponse, error) {
	window := pagination.Paginate(page, limit)
	posts, err := s.store.ListPostsByUser(ctx, userID, window.Skip, window.Take)
	if err != nil {
		s.logger.Error("list posts by user: query failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	if len(posts) == 0 {
		return nil, apperror.NewNotFoundError("No posts found", nil).WithCode(CodeNoPostsFound)
	}
	return &PostsResponse{Posts: posts}, nil
}

func (s *postService) DeletePost(ctx context.Context, postID, requesterID string) error {
	post, err := s.store.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NewNotFoundError("Post not found", nil).WithCode(CodePostNotFound)
		}
		s.logger.Error("delete post: lookup failed", zap.Error(err))
		return apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	if post.UserID != requesterID {
		return apperror.NewForbiddenError("You are not allowed to delete this post", nil).WithCode(CodeUnauthorized)
	}
	if err := s.store.DeletePost(ctx, postID); err != nil {
		s.logger.Error("delete post: delete failed", zap.Error(err))
		return apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	return nil
}
