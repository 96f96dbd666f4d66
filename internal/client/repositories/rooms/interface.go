// Package rooms caches the last successfully fetched room list in the local
// database, so the user still sees something useful while offline. The cache
// is display-only: mutations always go to the backend.
package rooms

import (
	"context"

	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
)

// Repository stores and serves the cached room list.
type Repository interface {
	// ReplaceAll swaps the cached list for the given one, preserving order.
	ReplaceAll(ctx context.Context, list []models.Room) error

	// GetAll returns the cached list in the order it was stored.
	GetAll(ctx context.Context) ([]models.Room, error)
}
