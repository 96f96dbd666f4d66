package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/tablekeeper/internal/client/api"
	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
)

// fakeAPI is a scripted api.Service. Unset fields return errNotScripted so a
// test fails loudly if a service calls an endpoint it did not expect to.
var errNotScripted = errors.New("endpoint not scripted in this test")

type fakeAPI struct {
	registerResp *api.AuthPayload
	registerErr  error
	loginResp    *api.AuthPayload
	loginErr     error

	profile    *models.User
	updatedErr error

	rooms       []models.Room
	roomsErr    error
	listCalls   int
	created     []models.CreateRoomInput
	createErr   error
	deleted     []string
	deleteErr   error
	joined      []string
	left        []string
	members     []models.RoomMember
	kicked      [][2]string
	transferred [][2]string

	cards          []models.CharacterCard
	cardListCalls  int
	cardCreated    []models.CharacterCard
	cardCreateErr  error
	cardUpdated    []string
	cardDeleted    []string
	passwordCalls  int
	oldPasswordGot string
}

func (f *fakeAPI) Register(_ context.Context, _ api.RegisterRequest) (*api.AuthPayload, error) {
	if f.registerResp == nil && f.registerErr == nil {
		return nil, errNotScripted
	}
	return f.registerResp, f.registerErr
}

func (f *fakeAPI) Login(_ context.Context, _ api.LoginRequest) (*api.AuthPayload, error) {
	if f.loginResp == nil && f.loginErr == nil {
		return nil, errNotScripted
	}
	return f.loginResp, f.loginErr
}

func (f *fakeAPI) GetProfile(_ context.Context) (*models.User, error) {
	if f.profile == nil {
		return nil, errNotScripted
	}
	return f.profile, nil
}

func (f *fakeAPI) UpdateProfile(_ context.Context, req api.UpdateProfileRequest) (*models.User, error) {
	if f.updatedErr != nil {
		return nil, f.updatedErr
	}
	if f.profile == nil {
		return nil, errNotScripted
	}
	u := *f.profile
	u.Nickname = req.Nickname
	u.Avatar = req.Avatar
	return &u, nil
}

func (f *fakeAPI) UpdatePassword(_ context.Context, req api.UpdatePasswordRequest) error {
	f.passwordCalls++
	f.oldPasswordGot = req.OldPassword
	return f.updatedErr
}

func (f *fakeAPI) ListRooms(_ context.Context) ([]models.Room, error) {
	f.listCalls++
	return f.rooms, f.roomsErr
}

func (f *fakeAPI) GetRoom(_ context.Context, id string) (*models.Room, error) {
	for _, r := range f.rooms {
		if r.ID == id {
			room := r
			return &room, nil
		}
	}
	return nil, errNotScripted
}

func (f *fakeAPI) CreateRoom(_ context.Context, input models.CreateRoomInput) (*models.Room, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, input)
	return &models.Room{ID: "new", Name: input.Name}, nil
}

func (f *fakeAPI) DeleteRoom(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) JoinRoom(_ context.Context, id string) error {
	f.joined = append(f.joined, id)
	return nil
}

func (f *fakeAPI) LeaveRoom(_ context.Context, id string) error {
	f.left = append(f.left, id)
	return nil
}

func (f *fakeAPI) ListMembers(_ context.Context, _ string) ([]models.RoomMember, error) {
	return f.members, nil
}

func (f *fakeAPI) KickMember(_ context.Context, roomID, userID string) error {
	f.kicked = append(f.kicked, [2]string{roomID, userID})
	return nil
}

func (f *fakeAPI) TransferDM(_ context.Context, roomID, toUserID string) error {
	f.transferred = append(f.transferred, [2]string{roomID, toUserID})
	return nil
}

func (f *fakeAPI) ListCharacters(_ context.Context, _ string) ([]models.CharacterCard, error) {
	f.cardListCalls++
	return f.cards, nil
}

func (f *fakeAPI) GetCharacter(_ context.Context, _, id string) (*models.CharacterCard, error) {
	for _, c := range f.cards {
		if c.ID == id {
			card := c
			return &card, nil
		}
	}
	return nil, errNotScripted
}

func (f *fakeAPI) CreateCharacter(_ context.Context, _ string, card models.CharacterCard) (*models.CharacterCard, error) {
	if f.cardCreateErr != nil {
		return nil, f.cardCreateErr
	}
	f.cardCreated = append(f.cardCreated, card)
	created := card
	created.ID = "new"
	return &created, nil
}

func (f *fakeAPI) UpdateCharacter(_ context.Context, _, id string, _ models.CharacterCard) error {
	f.cardUpdated = append(f.cardUpdated, id)
	return nil
}

func (f *fakeAPI) DeleteCharacter(_ context.Context, _, id string) error {
	f.cardDeleted = append(f.cardDeleted, id)
	return nil
}

var _ api.Service = (*fakeAPI)(nil)

// fakeRoomCache records ReplaceAll calls and can be scripted to fail.
type fakeRoomCache struct {
	stored     []models.Room
	replaceErr error
}

func (f *fakeRoomCache) ReplaceAll(_ context.Context, list []models.Room) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.stored = list
	return nil
}

func (f *fakeRoomCache) GetAll(_ context.Context) ([]models.Room, error) {
	return f.stored, nil
}

type fakeCharacterCache struct {
	stored map[string][]models.CharacterCard
}

func (f *fakeCharacterCache) ReplaceRoom(_ context.Context, roomID string, list []models.CharacterCard) error {
	if f.stored == nil {
		f.stored = map[string][]models.CharacterCard{}
	}
	f.stored[roomID] = list
	return nil
}

func (f *fakeCharacterCache) GetByRoom(_ context.Context, roomID string) ([]models.CharacterCard, error) {
	return f.stored[roomID], nil
}
