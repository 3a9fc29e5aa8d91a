package client

import (
	"context"
	"fmt"
	"net/http"
)

// ListPosts fetches one page of the feed. Public: the backend ignores
// the bearer token here except for computing likedByCurrentUser.
func (c *Client) ListPosts(ctx context.Context, page, size int) (Page[Post], error) {
	var p Page[Post]
	if err := c.get(ctx, "/posts", pageQuery(page, size), &p); err != nil {
		return Page[Post]{}, err
	}
	return p, nil
}

// GetPost fetches a single post by id.
func (c *Client) GetPost(ctx context.Context, id int64) (Post, error) {
	var p Post
	if err := c.get(ctx, fmt.Sprintf("/posts/%d", id), nil, &p); err != nil {
		return Post{}, err
	}
	return p, nil
}

// CreatePost creates a post for the current user.
func (c *Client) CreatePost(ctx context.Context, req PostRequest) (Post, error) {
	var p Post
	if err := c.post(ctx, "/posts", req, &p); err != nil {
		return Post{}, err
	}
	return p, nil
}

// UpdatePost replaces the content and song link of an existing post.
func (c *Client) UpdatePost(ctx context.Context, id int64, req PostRequest) (Post, error) {
	var p Post
	if err := c.put(ctx, fmt.Sprintf("/posts/%d", id), req, &p); err != nil {
		return Post{}, err
	}
	return p, nil
}

// DeletePost deletes a post. The backend decides whether the current
// user may (author or admin).
func (c *Client) DeletePost(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/posts/%d", id))
}

// LikePost likes a post and returns the updated like count.
func (c *Client) LikePost(ctx context.Context, id int64) (LikeCount, error) {
	var lc LikeCount
	if err := c.post(ctx, fmt.Sprintf("/posts/%d/likes", id), nil, &lc); err != nil {
		return LikeCount{}, err
	}
	return lc, nil
}

// UnlikePost removes the current user's like and returns the updated
// like count.
func (c *Client) UnlikePost(ctx context.Context, id int64) (LikeCount, error) {
	var lc LikeCount
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d/likes", id), nil, nil, &lc); err != nil {
		return LikeCount{}, err
	}
	return lc, nil
}

// ListComments fetches one page of a post's comments.
func (c *Client) ListComments(ctx context.Context, postID int64, page, size int) (Page[Comment], error) {
	var p Page[Comment]
	if err := c.get(ctx, fmt.Sprintf("/posts/%d/comments", postID), pageQuery(page, size), &p); err != nil {
		return Page[Comment]{}, err
	}
	return p, nil
}

// CreateComment adds a comment to a post.
func (c *Client) CreateComment(ctx context.Context, postID int64, req CommentRequest) (Comment, error) {
	var cm Comment
	if err := c.post(ctx, fmt.Sprintf("/posts/%d/comments", postID), req, &cm); err != nil {
		return Comment{}, err
	}
	return cm, nil
}

// DeleteComment deletes a comment by its own id.
func (c *Client) DeleteComment(ctx context.Context, commentID int64) error {
	return c.del(ctx, fmt.Sprintf("/comments/%d", commentID))
}
