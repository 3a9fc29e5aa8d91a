// Package session holds the client-side authenticated identity and the
// stores that persist it across process restarts.
package session

// RoleAdmin is the only privileged role the client recognises. All
// authorization decisions are plain membership tests; there is no role
// hierarchy.
const RoleAdmin = "ROLE_ADMIN"

// Session is the authenticated identity as returned by POST /auth/login.
// It is persisted verbatim: one record, overwritten whole on login and
// removed on logout.
type Session struct {
	Token    string   `json:"token"`
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// Valid reports whether the session can back authorization decisions.
// A session is all-or-nothing: without a token it counts as absent.
func (s Session) Valid() bool {
	return s.Token != ""
}

// HasRole reports whether the session carries the given role.
func (s Session) HasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the session carries RoleAdmin.
func (s Session) IsAdmin() bool {
	return s.HasRole(RoleAdmin)
}
