package comments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/purpleshorts-go/apperror"
	"github.com/user/purpleshorts-go/auth"
)

type fakeService struct {
	createResp *CommentResponse
	createErr  error
	listResp   *CommentsResponse
	listErr    error
	updateErr  error
	deleteErr  error
}

func (f *fakeService) CreateComment(context.Context, string, string, CommentRequest) (*CommentResponse, error) {
	return f.createResp, f.createErr
}

func (f *fakeService) ListCommentsOnPost(context.Context, string, int, int) (*CommentsResponse, error) {
	return f.listResp, f.listErr
}

func (f *fakeService) UpdateComment(context.Context, string, string, string) error {
	return f.updateErr
}

func (f *fakeService) DeleteComment(context.Context, string, string) error {
	return f.deleteErr
}

func newRouter(svc Service) chi.Router {
	h := NewHandlers(svc)
	r := chi.NewRouter()
	r.Post("/comments/on/{postId}", h.HandleCreateComment())
	r.Get("/comments/on/{postId}", h.HandleListComments())
	r.Put("/comments/{id}", h.HandleUpdateComment())
	r.Delete("/comments/{id}", h.HandleDeleteComment())
	return r
}

func doRequest(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	req = req.WithContext(auth.WithUserID(req.Context(), "user-1"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleCreateComment(t *testing.T) {
	svc := &fakeService{createResp: &CommentResponse{Comment: &Comment{ID: "c1", Content: "hi"}}}
	router := newRouter(svc)

	rec := doRequest(t, router, http.MethodPost, "/comments/on/p1", `{"content":"hi"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"comment"`)

	rec = doRequest(t, router, http.MethodPost, "/comments/on/p1", `{"content":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateCommentOnMissingPost(t *testing.T) {
	notFound := apperror.NewNotFoundError("Post not found", nil).WithCode(CodePostNotFound)
	router := newRouter(&fakeService{createErr: notFound})

	rec := doRequest(t, router, http.MethodPost, "/comments/on/ghost", `{"content":"hi"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post not found")
}

func TestHandleListCommentsEmpty(t *testing.T) {
	router := newRouter(&fakeService{listResp: &CommentsResponse{Comments: []Comment{}}})

	rec := doRequest(t, router, http.MethodGet, "/comments/on/p1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"comments":[]`)
}

func TestHandleUpdateComment(t *testing.T) {
	router := newRouter(&fakeService{})
	rec := doRequest(t, router, http.MethodPut, "/comments/c1", `{"content":"edited"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Comment updated successfully")

	forbidden := apperror.NewForbiddenError("nope", nil).WithCode(CodeUnauthorized)
	router = newRouter(&fakeService{updateErr: forbidden})
	rec = doRequest(t, router, http.MethodPut, "/comments/c1", `{"content":"edited"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleDeleteComment(t *testing.T) {
	router := newRouter(&fakeService{})
	rec := doRequest(t, router, http.MethodDelete, "/comments/c1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Comment deleted successfully")

	missing := apperror.NewNotFoundError("Comment not found", nil).WithCode(CodeCommentNotFound)
	router = newRouter(&fakeService{deleteErr: missing})
	rec = doRequest(t, router, http.MethodDelete, "/comments/c1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
