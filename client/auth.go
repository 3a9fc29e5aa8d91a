package client

import (
	"context"

	"github.com/moodify/moodctl/session"
)

// Register creates a new account. No session is involved; the backend
// rejects duplicate usernames with a 4xx message body.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (User, error) {
	var u User
	if err := c.post(ctx, "/auth/register", req, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login exchanges credentials for a session. It returns the decoded
// session without persisting it; the login flow is the single writer of
// the session store.
func (c *Client) Login(ctx context.Context, req LoginRequest) (session.Session, error) {
	var s session.Session
	if err := c.post(ctx, "/auth/login", req, &s); err != nil {
		return session.Session{}, err
	}
	return s, nil
}
