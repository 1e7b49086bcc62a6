package apiclient

import (
	"context"
	"net/http"

	"github.com/openpersona/console/internal/domain"
)

// AuthService covers /api/auth.
type AuthService struct {
	client *Client
}

// Credentials is the login/register request body.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name,omitempty"`
}

// Register creates a new account and returns its session.
func (s *AuthService) Register(ctx context.Context, creds Credentials) (*domain.Session, error) {
	var session domain.Session
	if err := s.client.do(ctx, http.MethodPost, "/api/auth/register", creds, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// RegisterAdmin creates a new admin account.
func (s *AuthService) RegisterAdmin(ctx context.Context, creds Credentials) (*domain.Session, error) {
	var session domain.Session
	if err := s.client.do(ctx, http.MethodPost, "/api/auth/register/admin", creds, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Login exchanges credentials for a session.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*domain.Session, error) {
	var session domain.Session
	if err := s.client.do(ctx, http.MethodPost, "/api/auth/login", creds, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Me returns the current session snapshot.
func (s *AuthService) Me(ctx context.Context) (*domain.Session, error) {
	var session domain.Session
	if err := s.client.get(ctx, "/api/auth/me", &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Logout invalidates the session server-side.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// ForgotPassword requests a password reset email.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return s.client.do(ctx, http.MethodPost, "/api/auth/forgot-password", body, nil)
}

// ResetPassword completes a password reset with the emailed token.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "newPassword": newPassword}
	return s.client.do(ctx, http.MethodPost, "/api/auth/reset-password", body, nil)
}

// ChangePassword rotates the password for the authenticated user.
func (s *AuthService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{"currentPassword": currentPassword, "newPassword": newPassword}
	return s.client.do(ctx, http.MethodPost, "/api/auth/change-password", body, nil)
}

// RequestVerification asks the backend to re-send the verification email.
func (s *AuthService) RequestVerification(ctx context.Context) error {
	return s.client.do(ctx, http.MethodPost, "/api/auth/request-verification", nil, nil)
}

// VerifyEmail confirms an email address with the emailed token.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	body := map[string]string{"token": token}
	return s.client.do(ctx, http.MethodPost, "/api/auth/verify-email", body, nil)
}
