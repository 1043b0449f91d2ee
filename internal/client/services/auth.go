// Package services contains the application services sitting between the
// CLI and the gateway: authentication, posting, and community data access.
package services

import (
	"context"
	"fmt"

	"github.com/greenvalley/community/internal/client/models"
	"github.com/greenvalley/community/internal/client/session"
	"github.com/greenvalley/community/internal/logging"
)

// AuthService drives the login, registration, and logout flows.
//
// Contract:
//   - Login: validate locally, match credentials against the store's user
//     list, and settle the session on success. Every remote failure mode
//     (no match, wrong password, unreachable store) collapses to the same
//     user-visible message; logs keep the distinction.
//   - Register: validate locally, create the account, settle the session.
//   - Logout: clear the session; idempotent.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Logout(ctx context.Context) error
}

// RegisterInput is the registration form payload.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Address         string
}

type authService struct {
	api     Gateway
	session *session.Store
	log     logging.Logger
}

// NewAuthService binds the auth flows to a gateway and the session store.
func NewAuthService(api Gateway, sess *session.Store, log logging.Logger) AuthService {
	return &authService{api: api, session: sess, log: log}
}

// Login implements the credential check as the backing store allows it:
// fetch users matching the email (exact, case-sensitive) and compare the
// stored plaintext password. The plaintext scheme is an inherited weakness
// of the store, flagged here rather than fixed.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrFillAllFields
	}

	res := a.api.FindUsersByEmail(ctx, email)
	if !res.Success {
		a.log.Warn(ctx, "login query failed", "reason", res.Message)
		return nil, ErrLoginFailed
	}
	if len(res.Data) == 0 {
		a.log.Info(ctx, "login rejected: no user for email")
		return nil, ErrLoginFailed
	}

	user := res.Data[0]
	if user.Password != password {
		a.log.Info(ctx, "login rejected: password mismatch", "user_id", user.ID)
		return nil, ErrLoginFailed
	}

	// the session copy never carries server-side fields the client
	// does not need
	user.Password = ""
	if err := a.session.Set(ctx, &user); err != nil {
		return nil, fmt.Errorf("failed to settle session: %w", err)
	}

	a.log.Info(ctx, "login successful", "user_id", user.ID)
	return &user, nil
}

func (a *authService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" ||
		input.ConfirmPassword == "" || input.Address == "" {
		return nil, ErrFillAllFields
	}
	if input.Password != input.ConfirmPassword {
		return nil, ErrPasswordsMismatch
	}
	if len(input.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	res := a.api.RegisterUser(ctx, models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Address:  input.Address,
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", input.Email),
	})
	if !res.Success {
		a.log.Warn(ctx, "registration failed", "reason", res.Message)
		return nil, ErrRegistrationFailed
	}

	user := res.Data
	user.Password = ""
	if err := a.session.Set(ctx, &user); err != nil {
		return nil, fmt.Errorf("failed to settle session: %w", err)
	}

	a.log.Info(ctx, "registration successful", "user_id", user.ID)
	return &user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}
