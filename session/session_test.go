package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionValid(t *testing.T) {
	assert.False(t, Session{}.Valid())
	assert.False(t, Session{ID: 5, Username: "alice"}.Valid())
	assert.True(t, Session{Token: "t1"}.Valid())
}

func TestSessionHasRole(t *testing.T) {
	s := Session{Token: "t1", Roles: []string{"ROLE_USER", RoleAdmin}}
	assert.True(t, s.HasRole("ROLE_USER"))
	assert.True(t, s.IsAdmin())
	assert.False(t, Session{Token: "t1"}.IsAdmin())
	assert.False(t, Session{Token: "t1", Roles: []string{"ROLE_USER"}}.HasRole(RoleAdmin))
}
