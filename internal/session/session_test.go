package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleCustomer, ParseRole("customer"))
	assert.Equal(t, RoleSeller, ParseRole("seller"))
	assert.Equal(t, RoleAdmin, ParseRole("admin"))

	t.Run("UnknownFallsBackToCustomer", func(t *testing.T) {
		assert.Equal(t, RoleCustomer, ParseRole(""))
		assert.Equal(t, RoleCustomer, ParseRole("superuser"))
	})
}

func TestLandingPath(t *testing.T) {
	assert.Equal(t, "/", LandingPath(RoleCustomer))
	assert.Equal(t, "/seller/dashboard", LandingPath(RoleSeller))
	assert.Equal(t, "/admin/dashboard", LandingPath(RoleAdmin))
}

func TestAuthenticated(t *testing.T) {
	assert.False(t, Session{}.Authenticated())
	assert.False(t, Session{UserID: "u1"}.Authenticated())
	assert.True(t, Session{UserID: "u1", Token: "tok"}.Authenticated())
}
