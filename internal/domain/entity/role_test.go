package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleStoreOwner.IsValid())
	assert.True(t, RoleAdmin.IsValid())

	assert.False(t, Role("").IsValid())
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("Admin").IsValid())
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		wantRole Role
		wantOK   bool
	}{
		{"user", RoleUser, true},
		{"store_owner", RoleStoreOwner, true},
		{"admin", RoleAdmin, true},
		{"", RoleUser, true},
		{"owner", "owner", false},
		{"ADMIN", "ADMIN", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, ok := ParseRole(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantRole, role)
			}
		})
	}
}
