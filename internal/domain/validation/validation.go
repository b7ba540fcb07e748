// Package validation contains the field-level rules for user, store and
// rating input. The HTTP layer applies the per-field predicates through
// struct tags on the request DTOs; the rating flow calls ValidateRating
// directly before touching persistence.
package validation

import (
	"regexp"
	"strings"

	domainerrors "storerate/internal/domain/errors"
)

const (
	userNameMinLen  = 20
	userNameMaxLen  = 60
	storeNameMinLen = 1
	storeNameMaxLen = 60
	passwordMinLen  = 8
	passwordMaxLen  = 16
	addressMaxLen   = 400

	// MinRating and MaxRating bound the accepted rating domain.
	MinRating = 1
	MaxRating = 5

	passwordSpecialSet = "!@#$%^&*"
)

// Messages reported to the client when a rule fails.
const (
	MsgUserName  = "Name must be between 20 and 60 characters"
	MsgStoreName = "Store name must be between 1 and 60 characters"
	MsgEmail     = "Must be a valid email"
	MsgPassword  = "Password must be 8-16 characters with at least one uppercase letter and one special character"
	MsgAddress   = "Address must not exceed 400 characters"
	MsgRating    = "Rating must be between 1 and 5"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidUserName reports whether a user's full name fits the length rule.
func ValidUserName(name string) bool {
	return len(name) >= userNameMinLen && len(name) <= userNameMaxLen
}

// ValidStoreName reports whether a store name fits the length rule.
// Store names are looser than user names.
func ValidStoreName(name string) bool {
	return len(name) >= storeNameMinLen && len(name) <= storeNameMaxLen
}

// ValidEmail reports whether the address has a basic local@domain shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPassword reports whether the password satisfies the composite
// rule: 8-16 characters with an uppercase letter and a special character.
func ValidPassword(password string) bool {
	if len(password) < passwordMinLen || len(password) > passwordMaxLen {
		return false
	}

	hasUpper := strings.ContainsFunc(password, func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	})
	hasSpecial := strings.ContainsAny(password, passwordSpecialSet)

	return hasUpper && hasSpecial
}

// ValidAddress reports whether the address is present and within the cap.
func ValidAddress(address string) bool {
	return address != "" && len(address) <= addressMaxLen
}

// ValidateRating checks a submitted rating value.
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return domainerrors.NewValidationError([]string{MsgRating})
	}

	return nil
}
