// Package auth holds the view models for the authentication pages.
package auth

// LoginData pre-fills the login form after a failed attempt.
type LoginData struct {
	Email          string
	SessionExpired bool
}

// RegisterData pre-fills the registration form after a failed attempt.
type RegisterData struct {
	Email  string
	Name   string
	Handle string
}

// ForgotPasswordData is the view model for the forgot-password page.
type ForgotPasswordData struct {
	Email string
}

// ResetPasswordData carries the reset token into the hidden form field.
type ResetPasswordData struct {
	Token string
}

// LoginForm is the bound login submission.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// RegisterForm is the bound registration submission.
type RegisterForm struct {
	Name            string `form:"name"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=8"`
	PasswordConfirm string `form:"password_confirm" validate:"required,eqfield=Password"`
}

// ResetPasswordForm is the bound new-password submission.
type ResetPasswordForm struct {
	Token           string `form:"token" validate:"required"`
	Password        string `form:"password" validate:"required,min=8"`
	PasswordConfirm string `form:"password_confirm" validate:"required,eqfield=Password"`
}
