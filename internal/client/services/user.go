package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tablekeeper/internal/client/api"
	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
	"github.com/dmitrijs2005/tablekeeper/internal/client/session"
)

// UserService covers the profile endpoints. A successful profile update
// replaces the user snapshot held by the session so the prompt and the
// persisted state stay current.
type UserService interface {
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, nickname, avatar string) (*models.User, error)
	UpdatePassword(ctx context.Context, oldPassword, newPassword string) error
}

type userService struct {
	api     api.Service
	session *session.Store
}

func NewUserService(client api.Service, sess *session.Store) UserService {
	return &userService{api: client, session: sess}
}

func (u *userService) Profile(ctx context.Context) (*models.User, error) {
	return u.api.GetProfile(ctx)
}

func (u *userService) UpdateProfile(ctx context.Context, nickname, avatar string) (*models.User, error) {
	user, err := u.api.UpdateProfile(ctx, api.UpdateProfileRequest{Nickname: nickname, Avatar: avatar})
	if err != nil {
		return nil, fmt.Errorf("profile update error: %w", err)
	}
	if err := u.session.SetAuth(user, u.session.Token()); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return user, nil
}

func (u *userService) UpdatePassword(ctx context.Context, oldPassword, newPassword string) error {
	return u.api.UpdatePassword(ctx, api.UpdatePasswordRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
}
