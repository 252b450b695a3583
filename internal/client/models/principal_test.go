package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipal_IsPending(t *testing.T) {
	tests := []struct {
		name string
		p    Principal
		want bool
	}{
		{"inactive member", Principal{Role: RoleMember, IsActive: false}, true},
		{"active member", Principal{Role: RoleMember, IsActive: true}, false},
		{"inactive admin", Principal{Role: RoleAdmin, IsActive: false}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.IsPending())
		})
	}
}

func TestPrincipal_IsAdmin(t *testing.T) {
	assert.True(t, Principal{Role: RoleAdmin}.IsAdmin())
	assert.False(t, Principal{Role: RoleMember, IsActive: true}.IsAdmin())
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, NormalizeRole("admin"))
	assert.Equal(t, RoleMember, NormalizeRole("member"))
	assert.Equal(t, RoleMember, NormalizeRole("public"))
	assert.Equal(t, RoleMember, NormalizeRole(""))
}
