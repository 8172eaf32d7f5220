// Package users encapsulates user profile reads: the authenticated profile
// with its nested posts, comments and likes, the paged user listing, and the
// public by-id profile with aggregate counts.
package users

import (
	"time"

	"github.com/user/purpleshorts-go/auth"
)

// PostRef carries the parent post context embedded in comment and like items.
type PostRef struct {
	Title string `json:"title"`
}

// UserPost is a post as it appears nested under a profile.
type UserPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserComment is a comment nested under a profile, with its parent post title
// when the post still exists.
type UserComment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	PostID    *string   `json:"postId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Post      *PostRef  `json:"post,omitempty"`
}

// UserLike is a like nested under a profile, with its parent post title.
type UserLike struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Post      *PostRef  `json:"post,omitempty"`
}

// Profile is the authenticated user's profile with nested resources.
// Optional name/about are always presented as strings, never null.
type Profile struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Name      string        `json:"name"`
	About     string        `json:"about"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Posts     []UserPost    `json:"posts"`
	Comments  []UserComment `json:"comments"`
	Likes     []UserLike    `json:"likes"`
}

// MeResponse is the body of GET /users/me.
type MeResponse struct {
	User *Profile `json:"user"`
}

// UsersResponse is the body of the paged user listing.
type UsersResponse struct {
	Users []auth.User `json:"users"`
}

// Detail is the public by-id profile: profile data plus aggregate counts.
// Comments whose post no longer exists are excluded from both the list and
// the count.
type Detail struct {
	ID            string        `json:"id"`
	Username      string        `json:"username"`
	Name          string        `json:"name"`
	About         string        `json:"about"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	PostsCount    int           `json:"postsCount"`
	CommentsCount int           `json:"commentsCount"`
	Posts         []UserPost    `json:"posts"`
	Comments      []UserComment `json:"comments"`
}

// DetailResponse is the body of GET /users/{id}.
type DetailResponse struct {
	User *Detail `json:"user"`
}
