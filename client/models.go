package client

import "time"

// Author is the post or comment author as embedded in feed responses.
type Author struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// User is a full user record; only admin listings return it.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post is a mood post, optionally linked to a song.
type Post struct {
	ID                 int64     `json:"id"`
	Content            string    `json:"content"`
	SongURL            *string   `json:"songUrl"`
	Author             Author    `json:"author"`
	LikeCount          int       `json:"likeCount"`
	CommentCount       int       `json:"commentCount"`
	LikedByCurrentUser bool      `json:"likedByCurrentUser"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Comment is a single comment on a post.
type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// Page is one slice of a paged listing as the backend shapes it:
// zero-based page number, total page count and a last-page flag.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Number        int   `json:"number"`
	Last          bool  `json:"last"`
}

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PostRequest is the JSON body for creating or updating a post. A nil
// SongURL clears the link; trimming blank input to nil is the caller's
// concern, not this layer's.
type PostRequest struct {
	Content string  `json:"content"`
	SongURL *string `json:"songUrl"`
}

// CommentRequest is the JSON body for POST /posts/{id}/comments.
type CommentRequest struct {
	Content string `json:"content"`
}

// LikeCount is returned from like and unlike calls.
type LikeCount struct {
	LikeCount int `json:"likeCount"`
}
