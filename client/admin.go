package client

import (
	"context"
	"fmt"
)

// ListUsers fetches one page of all users. Requires the admin role
// server-side.
func (c *Client) ListUsers(ctx context.Context, page, size int) (Page[User], error) {
	var p Page[User]
	if err := c.get(ctx, "/admin/users", pageQuery(page, size), &p); err != nil {
		return Page[User]{}, err
	}
	return p, nil
}

// DeleteUser removes a user account. The self-delete check lives in the
// admin flow, not here; this layer only shapes the request.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/admin/users/%d", id))
}

// DeletePostAsAdmin removes any post through the admin endpoint.
func (c *Client) DeletePostAsAdmin(ctx context.Context, postID int64) error {
	return c.del(ctx, fmt.Sprintf("/admin/posts/%d", postID))
}

// DeleteCommentAsAdmin removes any comment through the admin endpoint.
func (c *Client) DeleteCommentAsAdmin(ctx context.Context, commentID int64) error {
	return c.del(ctx, fmt.Sprintf("/admin/comments/%d", commentID))
}
