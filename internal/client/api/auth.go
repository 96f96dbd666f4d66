package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthPayload is returned by both register and login.
type AuthPayload struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthPayload, error) {
	var payload AuthPayload
	if err := c.send(ctx, http.MethodPost, "/auth/register", req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthPayload, error) {
	var payload AuthPayload
	if err := c.send(ctx, http.MethodPost, "/auth/login", req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
