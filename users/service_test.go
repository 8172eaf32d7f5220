package users

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/user/purpleshorts-go/apperror"
	"github.com/user/purpleshorts-go/auth"
)

// fakeStore serves canned profile data. Comments with a nil PostID stand in
// for comments orphaned by a post deletion.
type fakeStore struct {
	users    map[string]*auth.User
	posts    map[string][]UserPost
	comments map[string][]UserComment
	likes    map[string][]UserLike
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[string]*auth.User{},
		posts:    map[string][]UserPost{},
		comments: map[string][]UserComment{},
		likes:    map[string][]UserLike{},
	}
}

func (f *fakeStore) GetUserByID(_ context.Context, id string) (*auth.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeStore) CountUsers(context.Context) (int, error) {
	return len(f.users), nil
}

func (f *fakeStore) ListUsers(_ context.Context, skip, take int) ([]auth.User, error) {
	var all []auth.User
	for _, u := range f.users {
		all = append(all, *u)
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

func (f *fakeStore) PostsByUser(_ context.Context, userID string) ([]UserPost, error) {
	return f.posts[userID], nil
}

func (f *fakeStore) CommentsByUser(_ context.Context, userID string, excludeOrphans bool) ([]UserComment, error) {
	var out []UserComment
	for _, c := range f.comments[userID] {
		if excludeOrphans && c.PostID == nil {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeStore) LikesByUser(_ context.Context, userID string) ([]UserLike, error) {
	return f.likes[userID], nil
}

func seedProfile(store *fakeStore) {
	postID := "p1"
	store.users["u1"] = &auth.User{ID: "u1", Username: "alice"}
	store.posts["u1"] = []UserPost{{ID: postID, Title: "hello", UserID: "u1"}}
	store.comments["u1"] = []UserComment{
		{ID: "c1", Content: "live", PostID: &postID, UserID: "u1", Post: &PostRef{Title: "hello"}},
		{ID: "c2", Content: "orphan", PostID: nil, UserID: "u1"},
	}
	store.likes["u1"] = []UserLike{{ID: "l1", PostID: postID, UserID: "u1", Post: &PostRef{Title: "hello"}}}
}

func TestGetMeIncludesOrphanedComments(t *testing.T) {
	store := newFakeStore()
	seedProfile(store)
	svc := NewService(store, zap.NewNop())

	resp, err := svc.GetMe(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Len(t, resp.User.Posts, 1)
	assert.Len(t, resp.User.Comments, 2)
	assert.Len(t, resp.User.Likes, 1)
}

func TestGetMeUnknownUser(t *testing.T) {
	svc := NewService(newFakeStore(), zap.NewNop())

	_, err := svc.GetMe(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, CodeUserNotFound, apperror.CodeOf(err))
}

func TestGetUserByIDFiltersOrphans(t *testing.T) {
	store := newFakeStore()
	seedProfile(store)
	svc := NewService(store, zap.NewNop())

	resp, err := svc.GetUserByID(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	// The orphaned comment is dropped from both the list and the count.
	assert.Len(t, resp.User.Comments, 1)
	assert.Equal(t, 1, resp.User.CommentsCount)
	assert.Equal(t, 1, resp.User.PostsCount)
}

func TestGetUserByIDEmptyCollections(t *testing.T) {
	store := newFakeStore()
	store.users["u2"] = &auth.User{ID: "u2", Username: "bob"}
	svc := NewService(store, zap.NewNop())

	resp, err := svc.GetUserByID(context.Background(), "u2")
	require.NoError(t, err)
	// Empty, not nil, so the payload serializes as [].
	assert.NotNil(t, resp.User.Posts)
	assert.NotNil(t, resp.User.Comments)
	assert.Empty(t, resp.User.Posts)
}

func TestListUsers(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, zap.NewNop())

	// Empty table.
	_, err := svc.ListUsers(context.Background(), 1, 2)
	require.Error(t, err)
	assert.Equal(t, CodeUsersNotFound, apperror.CodeOf(err))

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		store.users[id] = &auth.User{ID: id, Username: id}
	}

	// 5 users at limit 2: page 3 holds the last user, page 4 is beyond.
	resp, err := svc.ListUsers(context.Background(), 3, 2)
	require.NoError(t, err)
	assert.Len(t, resp.Users, 1)

	_, err = svc.ListUsers(context.Background(), 4, 2)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, CodePageBeyondLimit, apperror.CodeOf(err))
}
