package api

import (
	"context"

	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
)

// Service enumerates the backend operations, one method per endpoint. The
// concrete implementation is *Client; tests substitute fakes.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthPayload, error)
	Login(ctx context.Context, req LoginRequest) (*AuthPayload, error)

	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, req UpdatePasswordRequest) error

	ListRooms(ctx context.Context) ([]models.Room, error)
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	CreateRoom(ctx context.Context, input models.CreateRoomInput) (*models.Room, error)
	DeleteRoom(ctx context.Context, id string) error
	JoinRoom(ctx context.Context, id string) error
	LeaveRoom(ctx context.Context, id string) error
	ListMembers(ctx context.Context, roomID string) ([]models.RoomMember, error)
	KickMember(ctx context.Context, roomID, userID string) error
	TransferDM(ctx context.Context, roomID, toUserID string) error

	ListCharacters(ctx context.Context, roomID string) ([]models.CharacterCard, error)
	GetCharacter(ctx context.Context, roomID, id string) (*models.CharacterCard, error)
	CreateCharacter(ctx context.Context, roomID string, card models.CharacterCard) (*models.CharacterCard, error)
	UpdateCharacter(ctx context.Context, roomID, id string, card models.CharacterCard) error
	DeleteCharacter(ctx context.Context, roomID, id string) error
}

var _ Service = (*Client)(nil)
