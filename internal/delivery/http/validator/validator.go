// Package validator bridges go-playground/validator into echo's binding
// pipeline. Request DTOs carry the rule tags; failures are translated
// into the shared validation error so every violation of a submission
// reaches the client together.
package validator

import (
	domainerrors "storerate/internal/domain/errors"
	"storerate/internal/domain/validation"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// rules maps each DTO tag to its predicate. The tags are custom because
// the product rules are composite (password policy, bounded address)
// rather than single built-in constraints.
var rules = map[string]func(string) bool{
	"user_name":       validation.ValidUserName,
	"store_name":      validation.ValidStoreName,
	"email_format":    validation.ValidEmail,
	"password_policy": validation.ValidPassword,
	"postal_address":  validation.ValidAddress,
}

// ruleMessages maps each tag to the message the client receives.
var ruleMessages = map[string]string{
	"user_name":       validation.MsgUserName,
	"store_name":      validation.MsgStoreName,
	"email_format":    validation.MsgEmail,
	"password_policy": validation.MsgPassword,
	"postal_address":  validation.MsgAddress,
}

// CustomValidator wraps a validator.Validate instance for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the echo validator with the domain rules registered.
func New() *CustomValidator {
	v := validator.New()
	for tag, valid := range rules {
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		})
	}

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator. Field errors come back in struct
// declaration order, so the client sees messages in field order.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		messages := make([]string, 0, len(fieldErrs))
		for _, fieldErr := range fieldErrs {
			if msg, ok := ruleMessages[fieldErr.Tag()]; ok {
				messages = append(messages, msg)
				continue
			}
			messages = append(messages, fieldErr.Error())
		}

		return domainerrors.NewValidationError(messages)
	}

	return errors.WithStack(err)
}
