package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
)

func (c *Client) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.send(ctx, http.MethodGet, "/rooms", nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *Client) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	if err := c.send(ctx, http.MethodGet, "/rooms/"+url.PathEscape(id), nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *Client) CreateRoom(ctx context.Context, input models.CreateRoomInput) (*models.Room, error) {
	var room models.Room
	if err := c.send(ctx, http.MethodPost, "/rooms", input, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *Client) DeleteRoom(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/rooms/"+url.PathEscape(id), nil, nil)
}

func (c *Client) JoinRoom(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodPost, "/rooms/"+url.PathEscape(id)+"/join", nil, nil)
}

func (c *Client) LeaveRoom(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodPost, "/rooms/"+url.PathEscape(id)+"/leave", nil, nil)
}

func (c *Client) ListMembers(ctx context.Context, roomID string) ([]models.RoomMember, error) {
	var members []models.RoomMember
	if err := c.send(ctx, http.MethodGet, "/rooms/"+url.PathEscape(roomID)+"/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) KickMember(ctx context.Context, roomID, userID string) error {
	path := "/rooms/" + url.PathEscape(roomID) + "/members/" + url.PathEscape(userID) + "/kick"
	return c.send(ctx, http.MethodPut, path, nil, nil)
}

type transferDMRequest struct {
	UserID string `json:"user_id"`
}

func (c *Client) TransferDM(ctx context.Context, roomID, toUserID string) error {
	path := "/rooms/" + url.PathEscape(roomID) + "/transfer-dm"
	return c.send(ctx, http.MethodPut, path, transferDMRequest{UserID: toUserID}, nil)
}
