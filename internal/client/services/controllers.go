package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/tablekeeper/internal/client/controller"
	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
)

// ErrRoomNameRequired blocks room creation before any network call is made.
var ErrRoomNameRequired = errors.New("room name is required")

// RoomController drives the room list screen.
type RoomController = controller.Controller[models.Room, models.CreateRoomInput]

// MemberController drives the read-only member list of a room.
type MemberController = controller.Controller[models.RoomMember, struct{}]

// CharacterController drives the character list of a room.
type CharacterController = controller.Controller[models.CharacterCard, models.CharacterCard]

// NewRoomController wires a controller to the room service. The filter matches
// the query against name and description.
func NewRoomController(svc RoomService) *RoomController {
	ops := controller.Ops[models.Room, models.CreateRoomInput]{
		List: svc.List,
		Create: func(ctx context.Context, input models.CreateRoomInput) error {
			_, err := svc.Create(ctx, input)
			return err
		},
		Delete: svc.Delete,
	}
	desc := controller.Desc[models.Room]{
		ID:   func(r models.Room) string { return r.ID },
		Name: func(r models.Room) string { return r.Name },
		Match: func(r models.Room, folded string) bool {
			return strings.Contains(strings.ToLower(r.Name), folded) ||
				strings.Contains(strings.ToLower(r.Description), folded)
		},
	}
	validate := func(input models.CreateRoomInput) error {
		if strings.TrimSpace(input.Name) == "" {
			return ErrRoomNameRequired
		}
		return nil
	}
	return controller.New(ops, desc, validate)
}

// NewMemberController wires a read-only controller to a room's member list.
// Members are keyed by user id and displayed by nickname.
func NewMemberController(svc RoomService, roomID string) *MemberController {
	ops := controller.Ops[models.RoomMember, struct{}]{
		List: func(ctx context.Context) ([]models.RoomMember, error) {
			return svc.Members(ctx, roomID)
		},
	}
	desc := controller.Desc[models.RoomMember]{
		ID:   func(m models.RoomMember) string { return m.UserID },
		Name: func(m models.RoomMember) string { return m.User.Nickname },
		Match: func(m models.RoomMember, folded string) bool {
			return strings.Contains(strings.ToLower(m.User.Nickname), folded)
		},
	}
	return controller.New(ops, desc, nil)
}

// NewCharacterController wires a controller to one room's character cards. The
// filter matches name, race, and class.
func NewCharacterController(svc CharacterService, roomID string) *CharacterController {
	ops := controller.Ops[models.CharacterCard, models.CharacterCard]{
		List: func(ctx context.Context) ([]models.CharacterCard, error) {
			return svc.List(ctx, roomID)
		},
		Create: func(ctx context.Context, card models.CharacterCard) error {
			_, err := svc.Create(ctx, roomID, card)
			return err
		},
		Delete: func(ctx context.Context, id string) error {
			return svc.Delete(ctx, roomID, id)
		},
	}
	desc := controller.Desc[models.CharacterCard]{
		ID:   func(c models.CharacterCard) string { return c.ID },
		Name: func(c models.CharacterCard) string { return c.Name },
		Match: func(c models.CharacterCard, folded string) bool {
			return strings.Contains(strings.ToLower(c.Name), folded) ||
				strings.Contains(strings.ToLower(c.Race), folded) ||
				strings.Contains(strings.ToLower(c.Class), folded)
		},
	}
	validate := func(card models.CharacterCard) error {
		if strings.TrimSpace(card.Name) == "" {
			return errors.New("character name is required")
		}
		return nil
	}
	return controller.New(ops, desc, validate)
}
