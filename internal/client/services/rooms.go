package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tablekeeper/internal/client/api"
	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
	"github.com/dmitrijs2005/tablekeeper/internal/client/repositories/rooms"
	"github.com/dmitrijs2005/tablekeeper/internal/logging"
)

// RoomService manages game rooms. List refreshes the local cache with the
// server response; cache write failures are logged and do not fail the call,
// the network result is authoritative.
type RoomService interface {
	List(ctx context.Context) ([]models.Room, error)
	CachedList(ctx context.Context) ([]models.Room, error)
	Get(ctx context.Context, id string) (*models.Room, error)
	Create(ctx context.Context, input models.CreateRoomInput) (*models.Room, error)
	Delete(ctx context.Context, id string) error
	Join(ctx context.Context, id string) error
	Leave(ctx context.Context, id string) error
	Members(ctx context.Context, roomID string) ([]models.RoomMember, error)
	Kick(ctx context.Context, roomID, userID string) error
	TransferDM(ctx context.Context, roomID, toUserID string) error
}

type roomService struct {
	api   api.Service
	cache rooms.Repository
	log   logging.Logger
}

// NewRoomService constructs a RoomService. The cache may be nil when the
// local database is unavailable.
func NewRoomService(client api.Service, cache rooms.Repository, log logging.Logger) RoomService {
	return &roomService{api: client, cache: cache, log: log}
}

func (s *roomService) List(ctx context.Context) ([]models.Room, error) {
	list, err := s.api.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("room list error: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.ReplaceAll(ctx, list); err != nil {
			s.log.Warn(ctx, "room cache refresh failed", "error", err)
		}
	}
	return list, nil
}

func (s *roomService) CachedList(ctx context.Context) ([]models.Room, error) {
	if s.cache == nil {
		return nil, nil
	}
	return s.cache.GetAll(ctx)
}

func (s *roomService) Get(ctx context.Context, id string) (*models.Room, error) {
	return s.api.GetRoom(ctx, id)
}

func (s *roomService) Create(ctx context.Context, input models.CreateRoomInput) (*models.Room, error) {
	return s.api.CreateRoom(ctx, input)
}

func (s *roomService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteRoom(ctx, id)
}

func (s *roomService) Join(ctx context.Context, id string) error {
	return s.api.JoinRoom(ctx, id)
}

func (s *roomService) Leave(ctx context.Context, id string) error {
	return s.api.LeaveRoom(ctx, id)
}

func (s *roomService) Members(ctx context.Context, roomID string) ([]models.RoomMember, error) {
	return s.api.ListMembers(ctx, roomID)
}

func (s *roomService) Kick(ctx context.Context, roomID, userID string) error {
	return s.api.KickMember(ctx, roomID, userID)
}

func (s *roomService) TransferDM(ctx context.Context, roomID, toUserID string) error {
	return s.api.TransferDM(ctx, roomID, toUserID)
}
