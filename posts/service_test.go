package posts

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/user/purpleshorts-go/apperror"
)

// fakeStore keeps posts in memory, keyed by id.
type fakeStore struct {
	posts map[string]*Post
	order []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{posts: map[string]*Post{}}
}

func (f *fakeStore) CreatePost(_ context.Context, post *Post) error {
	f.posts[post.ID] = post
	f.order = append(f.order, post.ID)
	return nil
}

func (f *fakeStore) GetPostByID(_ context.Context, id string) (*Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return p, nil
}

func (f *fakeStore) DeletePost(_ context.Context, id string) error {
	delete(f.posts, id)
	return nil
}

func (f *fakeStore) ListPosts(_ context.Context, skip, take int) ([]Post, error) {
	var out []Post
	for i := skip; i < len(f.order) && len(out) < take; i++ {
		out = append(out, *f.posts[f.order[i]])
	}
	return out, nil
}

func (f *fakeStore) ListPostsByUser(_ context.Context, userID string, skip, take int) ([]Post, error) {
	var all []Post
	for _, id := range f.order {
		if f.posts[id].UserID == userID {
			all = append(all, *f.posts[id])
		}
	}
	if skip >= len(all) {
		return nil, nil
	}
	end := skip + take
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], nil
}

func TestCreatePost(t *testing.T) {
	svc := NewService(newFakeStore(), zap.NewNop())

	resp, err := svc.CreatePost(context.Background(), "user-1", CreatePostRequest{
		Title: "hello", Content: "world",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Post)
	assert.NotEmpty(t, resp.Post.ID)
	assert.Equal(t, "user-1", resp.Post.UserID)
}

func TestCreatePostWithoutAuthor(t *testing.T) {
	svc := NewService(newFakeStore(), zap.NewNop())

	_, err := svc.CreatePost(context.Background(), "", CreatePostRequest{Title: "t", Content: "c"})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, CodeUserNotFound, apperror.CodeOf(err))
}

func TestListPostsEmpty(t *testing.T) {
	svc := NewService(newFakeStore(), zap.NewNop())

	_, err := svc.ListPosts(context.Background(), 1, 2)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, CodeNoPostsFound, apperror.CodeOf(err))
}

func TestListPostsByUserPaged(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, zap.NewNop())

	for i := 0; i < 3; i++ {
		_, err := svc.CreatePost(context.Background(), "user-1", CreatePostRequest{Title: "t", Content: "c"})
		require.NoError(t, err)
	}

	resp, err := svc.ListPostsByUser(context.Background(), "user-1", 1, 2)
	require.NoError(t, err)
	assert.Len(t, resp.Posts, 2)

	resp, err = svc.ListPostsByUser(context.Background(), "user-1", 2, 2)
	require.NoError(t, err)
	assert.Len(t, resp.Posts, 1)

	_, err = svc.ListPostsByUser(context.Background(), "user-1", 3, 2)
	require.Error(t, err)
	assert.Equal(t, CodeNoPostsFound, apperror.CodeOf(err))
}

func TestDeletePost(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, zap.NewNop())

	resp, err := svc.CreatePost(context.Background(), "owner", CreatePostRequest{Title: "t", Content: "c"})
	require.NoError(t, err)
	postID := resp.Post.ID

	// Someone else cannot delete it.
	err = svc.DeletePost(context.Background(), postID, "intruder")
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
	assert.Equal(t, CodeUnauthorized, apperror.CodeOf(err))

	// The author can.
	require.NoError(t, svc.DeletePost(context.Background(), postID, "owner"))

	// A second delete reports the post gone.
	err = svc.DeletePost(context.Background(), postID, "owner")
	require.Error(t, err)
	assert.Equal(t, CodePostNotFound, apperror.CodeOf(err))
}
