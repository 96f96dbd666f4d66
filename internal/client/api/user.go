package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
)

type UpdateProfileRequest struct {
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.send(ctx, http.MethodGet, "/user/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := c.send(ctx, http.MethodPut, "/user/profile", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdatePassword(ctx context.Context, req UpdatePasswordRequest) error {
	return c.send(ctx, http.MethodPut, "/user/password", req, nil)
}
