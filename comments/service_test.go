package comments

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/user/purpleshorts-go/apperror"
)

// fakeStore keeps comments in memory and a set of known post ids.
type fakeStore struct {
	postIDs  map[string]bool
	comments map[string]*Comment
	order    []string
}

func newFakeStore(postIDs ...string) *fakeStore {
	f := &fakeStore{postIDs: map[string]bool{}, comments: map[string]*Comment{}}
	for _, id := range postIDs {
		f.postIDs[id] = true
	}
	return f
}

func (f *fakeStore) PostExists(_ context.Context, postID string) (bool, error) {
	return f.postIDs[postID], nil
}

func (f *fakeStore) CreateComment(_ context.Context, comment *Comment) error {
	f.comments[comment.ID] = comment
	f.order = append(f.order, comment.ID)
	return nil
}

func (f *fakeStore) GetCommentByID(_ context.Context, id string) (*Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return c, nil
}

func (f *fakeStore) UpdateCommentContent(_ context.Context, id, content string) error {
	f.comments[id].Content = content
	return nil
}

func (f *fakeStore) DeleteComment(_ context.Context, id string) error {
	delete(f.comments, id)
	return nil
}

func (f *fakeStore) ListCommentsByPost(_ context.Context, postID string, skip, take int) ([]Comment, error) {
	var all []Comment
	for _, id := range f.order {
		c, ok := f.comments[id]
		if ok && c.PostID != nil && *c.PostID == postID {
			all = append(all, *c)
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

func TestCreateComment(t *testing.T) {
	svc := NewService(newFakeStore("p1"), zap.NewNop())

	resp, err := svc.CreateComment(context.Background(), "p1", "u1", CommentRequest{Content: "nice"})
	require.NoError(t, err)
	require.NotNil(t, resp.Comment)
	assert.NotEmpty(t, resp.Comment.ID)
	assert.Equal(t, "u1", resp.Comment.UserID)
}

func TestCreateCommentOnMissingPost(t *testing.T) {
	svc := NewService(newFakeStore(), zap.NewNop())

	_, err := svc.CreateComment(context.Background(), "ghost", "u1", CommentRequest{Content: "nice"})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, CodePostNotFound, apperror.CodeOf(err))
}

func TestListCommentsEmptyPageSucceeds(t *testing.T) {
	svc := NewService(newFakeStore("p1"), zap.NewNop())

	// A post with no comments is an empty success, not an error.
	resp, err := svc.ListCommentsOnPost(context.Background(), "p1", 1, 2)
	require.NoError(t, err)
	require.NotNil(t, resp.Comments)
	assert.Empty(t, resp.Comments)

	// The post itself must still exist.
	_, err = svc.ListCommentsOnPost(context.Background(), "ghost", 1, 2)
	require.Error(t, err)
	assert.Equal(t, CodePostNotFound, apperror.CodeOf(err))
}

func TestUpdateCommentOwnership(t *testing.T) {
	store := newFakeStore("p1")
	svc := NewService(store, zap.NewNop())

	resp, err := svc.CreateComment(context.Background(), "p1", "author", CommentRequest{Content: "v1"})
	require.NoError(t, err)
	id := resp.Comment.ID

	err = svc.UpdateComment(context.Background(), id, "intruder", "hacked")
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
	assert.Equal(t, CodeUnauthorized, apperror.CodeOf(err))

	require.NoError(t, svc.UpdateComment(context.Background(), id, "author", "v2"))
	assert.Equal(t, "v2", store.comments[id].Content)
}

func TestDeleteComment(t *testing.T) {
	store := newFakeStore("p1")
	svc := NewService(store, zap.NewNop())

	resp, err := svc.CreateComment(context.Background(), "p1", "author", CommentRequest{Content: "bye"})
	require.NoError(t, err)
	id := resp.Comment.ID

	err = svc.DeleteComment(context.Background(), id, "intruder")
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))

	require.NoError(t, svc.DeleteComment(context.Background(), id, "author"))

	err = svc.DeleteComment(context.Background(), id, "author")
	require.Error(t, err)
	assert.Equal(t, CodeCommentNotFound, apperror.CodeOf(err))
}
