// Package comments owns comment creation, listing, update and deletion.
// A comment is always created against an existing post; if that post is later
// deleted the comment's post reference becomes null and the comment is
// treated as orphaned by profile reads.
package comments

import "time"

// Author is the embedded author reference on listed comments.
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Comment represents a comment on a post.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	PostID    *string   `json:"postId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      *Author   `json:"user,omitempty"`
}

// CommentRequest is the payload for creating or updating a comment.
type CommentRequest struct {
	Content string `json:"content" example:"Great write-up!"`
}

// CommentResponse is the body returned after creating a comment.
type CommentResponse struct {
	Comment *Comment `json:"comment"`
}

// CommentsResponse is the body of the paged comment listing. Unlike the other
// list endpoints, an empty page is a successful response with an empty array.
type CommentsResponse struct {
	Comments []Comment `json:"comments"`
}
