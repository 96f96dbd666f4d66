package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tablekeeper/internal/client/api"
	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
	"github.com/dmitrijs2005/tablekeeper/internal/client/repositories/characters"
	"github.com/dmitrijs2005/tablekeeper/internal/logging"
)

// CharacterService manages character cards, scoped per room. Like rooms, a
// successful List refreshes the room's slice of the cache.
type CharacterService interface {
	List(ctx context.Context, roomID string) ([]models.CharacterCard, error)
	CachedList(ctx context.Context, roomID string) ([]models.CharacterCard, error)
	Get(ctx context.Context, roomID, id string) (*models.CharacterCard, error)
	Create(ctx context.Context, roomID string, card models.CharacterCard) (*models.CharacterCard, error)
	Update(ctx context.Context, roomID, id string, card models.CharacterCard) error
	Delete(ctx context.Context, roomID, id string) error
}

type characterService struct {
	api   api.Service
	cache characters.Repository
	log   logging.Logger
}

func NewCharacterService(client api.Service, cache characters.Repository, log logging.Logger) CharacterService {
	return &characterService{api: client, cache: cache, log: log}
}

func (s *characterService) List(ctx context.Context, roomID string) ([]models.CharacterCard, error) {
	list, err := s.api.ListCharacters(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("character list error: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.ReplaceRoom(ctx, roomID, list); err != nil {
			s.log.Warn(ctx, "character cache refresh failed", "room_id", roomID, "error", err)
		}
	}
	return list, nil
}

func (s *characterService) CachedList(ctx context.Context, roomID string) ([]models.CharacterCard, error) {
	if s.cache == nil {
		return nil, nil
	}
	return s.cache.GetByRoom(ctx, roomID)
}

func (s *characterService) Get(ctx context.Context, roomID, id string) (*models.CharacterCard, error) {
	return s.api.GetCharacter(ctx, roomID, id)
}

func (s *characterService) Create(ctx context.Context, roomID string, card models.CharacterCard) (*models.CharacterCard, error) {
	return s.api.CreateCharacter(ctx, roomID, card)
}

func (s *characterService) Update(ctx context.Context, roomID, id string, card models.CharacterCard) error {
	return s.api.UpdateCharacter(ctx, roomID, id, card)
}

func (s *characterService) Delete(ctx context.Context, roomID, id string) error {
	return s.api.DeleteCharacter(ctx, roomID, id)
}
