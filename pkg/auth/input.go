package auth

import (
	"github.com/dmitrymomot/countrykit/pkg/validator"
)

// LoginInput carries the login form fields. Remember is accepted for
// compatibility with existing forms but currently has no effect.
type LoginInput struct {
	Email    string
	Password string
	Remember bool
}

// Validate checks the login fields locally; failures block the remote call.
func (in LoginInput) Validate() error {
	return validator.Apply(
		validator.Required("email", in.Email),
		validator.ValidEmail("email", in.Email),
		validator.Required("password", in.Password),
	)
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
	ProfilePicture  string
}

// Validate checks the registration fields locally; failures block the
// remote call.
func (in RegisterInput) Validate() error {
	return validator.Apply(
		validator.Required("name", in.Name),
		validator.Required("email", in.Email),
		validator.ValidEmail("email", in.Email),
		validator.Required("password", in.Password),
		validator.MinLen("password", in.Password, 8),
		validator.Match("password_confirm", in.PasswordConfirm, in.Password),
		validator.Required("profile_picture", in.ProfilePicture),
		validator.ValidImageURL("profile_picture", in.ProfilePicture),
	)
}
