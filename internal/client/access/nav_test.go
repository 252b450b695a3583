package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvpwelfare/portal/internal/client/models"
)

func paths(items []NavItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Path
	}
	return out
}

func TestNavigation(t *testing.T) {
	anon := paths(Navigation(nil))
	assert.Contains(t, anon, PathLogin)
	assert.Contains(t, anon, PathRegister)
	assert.NotContains(t, anon, PathMemberDashboard)

	pending := paths(Navigation(principal(models.RoleMember, false)))
	assert.Contains(t, pending, PathPending)
	assert.NotContains(t, pending, PathMemberDashboard)
	assert.NotContains(t, pending, PathLogin)

	member := paths(Navigation(principal(models.RoleMember, true)))
	assert.Contains(t, member, PathMemberDashboard)
	assert.NotContains(t, member, PathAdminDashboard)

	admin := paths(Navigation(principal(models.RoleAdmin, true)))
	assert.Contains(t, admin, PathAdminDashboard)

	for _, items := range [][]string{anon, pending, member, admin} {
		assert.Equal(t, PathHome, items[0])
		assert.Equal(t, PathDonate, items[len(items)-1])
	}
}
