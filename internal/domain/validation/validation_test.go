package validation

import (
	"strings"
	"testing"

	domainerrors "storerate/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidUserName(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		want     bool
	}{
		{"too short", "Short Name", false},
		{"exactly 20", strings.Repeat("a", 20), true},
		{"exactly 60", strings.Repeat("a", 60), true},
		{"too long", strings.Repeat("a", 61), false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidUserName(tt.userName))
		})
	}
}

func TestValidStoreName(t *testing.T) {
	// Store names only need a single character.
	assert.True(t, ValidStoreName("J"))
	assert.True(t, ValidStoreName("Joe's"))
	assert.True(t, ValidStoreName(strings.Repeat("a", 60)))

	assert.False(t, ValidStoreName(""))
	assert.False(t, ValidStoreName(strings.Repeat("a", 61)))
}

func TestValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Password1!", true},
		{"exactly 8 chars", "Abcde!gh", true},
		{"exactly 16 chars", "Abcdefghijklmn!p", true},
		{"too short", "Abc!efg", false},
		{"too long", "Abcdefghijklmno!q", false},
		{"no uppercase", "password1!", false},
		{"no special", "Password123", false},
		{"every special char accepted", "Aaaaaaa*", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPassword(tt.password))
		})
	}
}

func TestValidAddress(t *testing.T) {
	assert.True(t, ValidAddress("123 Main Street, Springfield"))
	assert.True(t, ValidAddress(strings.Repeat("a", 400)))

	assert.False(t, ValidAddress(strings.Repeat("a", 401)))

	// Empty address is rejected even though it trivially fits the cap.
	assert.False(t, ValidAddress(""))
}

func TestValidateRating(t *testing.T) {
	for rating := MinRating; rating <= MaxRating; rating++ {
		assert.NoError(t, ValidateRating(rating))
	}

	for _, rating := range []int{0, -1, 6, 100} {
		err := ValidateRating(rating)
		require.Error(t, err)

		var validationErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"Rating must be between 1 and 5"}, validationErr.Messages())
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"a@b.c", true},
		{"user@sub.example.com", true},
		{"", false},
		{"plainstring", false},
		{"missing@domain", false},
		{"spaces in@example.com", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}
