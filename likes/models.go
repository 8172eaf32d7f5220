// Package likes owns liking and unliking posts. A user can hold at most one
// like per post; liking twice is acknowledged, not duplicated.
package likes

import "time"

// Author is the embedded user reference on listed likes.
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Like represents a user's like on a post.
type Like struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      *Author   `json:"user,omitempty"`
}

// LikesResponse is the body of the paged like listing.
type LikesResponse struct {
	Likes []Like `json:"likes"`
}
