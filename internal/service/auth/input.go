package auth

import "github.com/heartmarshall/norsk-drill/internal/domain"

// MaxPasswordLen is the bcrypt input limit.
const MaxPasswordLen = 72

// LoginInput holds the parameters for admin login.
type LoginInput struct {
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if len(i.Password) > MaxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 bytes"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
