// Package services contains the application services for the TableKeeper
// client. They sit between the CLI screens and the API client, adding the
// session and cache side effects the screens should not care about.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tablekeeper/internal/client/api"
	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
	"github.com/dmitrijs2005/tablekeeper/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account; a returned token also signs the user in.
//   - Login: authenticate and persist the session.
//   - Logout: clear the session, in memory and on disk.
type AuthService interface {
	Register(ctx context.Context, email, password, nickname string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout() error
}

type authService struct {
	api     api.Service
	session *session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Service, sess *session.Store) AuthService {
	return &authService{api: client, session: sess}
}

func (a *authService) Register(ctx context.Context, email, password, nickname string) (*models.User, error) {
	payload, err := a.api.Register(ctx, api.RegisterRequest{
		Email:    email,
		Password: password,
		Nickname: nickname,
	})
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	if payload.Token != "" {
		if err := a.session.SetAuth(&payload.User, payload.Token); err != nil {
			return nil, fmt.Errorf("session saving error: %w", err)
		}
	}
	return &payload.User, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	payload, err := a.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	if err := a.session.SetAuth(&payload.User, payload.Token); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return &payload.User, nil
}

func (a *authService) Logout() error {
	return a.session.Logout()
}
