package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
)

func charactersPath(roomID string) string {
	return "/rooms/" + url.PathEscape(roomID) + "/characters"
}

func (c *Client) ListCharacters(ctx context.Context, roomID string) ([]models.CharacterCard, error) {
	var cards []models.CharacterCard
	if err := c.send(ctx, http.MethodGet, charactersPath(roomID), nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *Client) GetCharacter(ctx context.Context, roomID, id string) (*models.CharacterCard, error) {
	var card models.CharacterCard
	if err := c.send(ctx, http.MethodGet, charactersPath(roomID)+"/"+url.PathEscape(id), nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) CreateCharacter(ctx context.Context, roomID string, card models.CharacterCard) (*models.CharacterCard, error) {
	var created models.CharacterCard
	if err := c.send(ctx, http.MethodPost, charactersPath(roomID), card, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCharacter(ctx context.Context, roomID, id string, card models.CharacterCard) error {
	return c.send(ctx, http.MethodPut, charactersPath(roomID)+"/"+url.PathEscape(id), card, nil)
}

func (c *Client) DeleteCharacter(ctx context.Context, roomID, id string) error {
	return c.send(ctx, http.MethodDelete, charactersPath(roomID)+"/"+url.PathEscape(id), nil, nil)
}
