// Package posts owns post creation, listing and deletion. The author
// reference on a post is set at creation from the authenticated user and is
// immutable afterwards; there is no update operation.
package posts

import "time"

// Author is the embedded author reference on listed posts.
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Post represents a post.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Author    *Author   `json:"author,omitempty"`
}

// CreatePostRequest is the payload for POST /posts.
type CreatePostRequest struct {
	Title   string `json:"title" example:"Show PS: my weekend project"`
	Content string `json:"content" example:"I built a thing."`
}

// PostResponse is the body returned after creating a post.
type PostResponse struct {
	Post *Post `json:"post"`
}

// PostsResponse is the body of the paged post listings.
type PostsResponse struct {
	Posts []Post `json:"posts"`
}
