// Package characters caches character sheets per room, mirroring the room
// cache: display-only data for offline viewing, replaced wholesale after each
// successful fetch.
package characters

import (
	"context"

	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
)

// Repository stores and serves cached character sheets.
type Repository interface {
	// ReplaceRoom swaps the cached sheets of one room, preserving order.
	// Other rooms' entries are untouched.
	ReplaceRoom(ctx context.Context, roomID string, list []models.CharacterCard) error

	// GetByRoom returns the room's cached sheets in stored order.
	GetByRoom(ctx context.Context, roomID string) ([]models.CharacterCard, error)
}
