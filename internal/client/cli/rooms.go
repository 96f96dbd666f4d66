package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tablekeeper/internal/client/controller"
	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
	"github.com/dmitrijs2005/tablekeeper/internal/client/services"
)

// Rooms refreshes the room list from the server and prints it. Before the
// first fetch the cached copy is shown so a cold offline start is not empty;
// a failed refresh keeps the last known data on screen.
func (a *App) Rooms(ctx context.Context) error {
	if snap := a.roomCtrl.Snapshot(); snap.State == controller.StateIdle {
		if cached, err := a.rooms.CachedList(ctx); err == nil && len(cached) > 0 {
			a.roomCtrl.Seed(cached)
		}
	}
	if err := a.roomCtrl.Load(ctx); err != nil {
		fmt.Println("Could not refresh rooms:", err)
	}
	a.renderRooms()
	return nil
}

// Search filters the already loaded room list without a network call. An
// empty query clears the filter.
func (a *App) Search(ctx context.Context, query string) error {
	a.roomCtrl.Filter(query)
	a.renderRooms()
	return nil
}

func (a *App) renderRooms() {
	snap := a.roomCtrl.Snapshot()
	if snap.State == controller.StateFailed && len(snap.Visible) > 0 {
		fmt.Println("Showing last known data.")
	}
	if len(snap.Visible) == 0 {
		fmt.Println("No rooms to show.")
		return
	}
	for _, r := range snap.Visible {
		visibility := "private"
		if r.IsPublic {
			visibility = "public"
		}
		fmt.Printf("%s  %s [%s, %s, max %d players]\n", r.ID, r.Name, r.RuleSystem, visibility, r.MaxPlayers)
		if r.Description != "" {
			fmt.Printf("    %s\n", r.Description)
		}
	}
}

// CreateRoom prompts for the new room form and submits it. A blank name is
// rejected locally; the list is refreshed afterwards so server-assigned
// fields (id, invite code) show up.
func (a *App) CreateRoom(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter room name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	ruleSystem, err := getSimpleText(a.reader, "Enter rule system, e.g. dnd5e (optional)", os.Stdout)
	if err != nil {
		return err
	}
	maxPlayers, err := GetInt(a.reader, "Max players", 6, [2]int{1, 20}, os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	isPublic, err := GetYesNo(a.reader, "Public room?", false, os.Stdout)
	if err != nil {
		return err
	}

	input := models.CreateRoomInput{
		Name:        name,
		Description: description,
		RuleSystem:  ruleSystem,
		MaxPlayers:  maxPlayers,
		IsPublic:    isPublic,
	}
	if err := a.roomCtrl.Create(ctx, input); err != nil {
		if errors.Is(err, services.ErrRoomNameRequired) {
			fmt.Println("Room name is required.")
		} else {
			fmt.Println("Could not create room:", err)
		}
		return err
	}

	fmt.Println("Room created.")
	a.renderRooms()
	return nil
}

// JoinRoom adds the current user to a room as a player.
func (a *App) JoinRoom(ctx context.Context, id string) error {
	if err := a.rooms.Join(ctx, id); err != nil {
		fmt.Println("Could not join room:", err)
		return err
	}
	fmt.Println("Joined.")
	return nil
}

// OpenRoom fetches the room and switches to the room-scoped command loop.
// The id may also be the exact room name of a loaded room.
func (a *App) OpenRoom(ctx context.Context, id string) error {
	room, ok := a.roomCtrl.Find(id)
	if !ok {
		fetched, err := a.rooms.Get(ctx, id)
		if err != nil {
			fmt.Println("Could not open room:", err)
			return err
		}
		room = *fetched
	}

	screen := newRoomScreen(a, room)
	screen.run(ctx)
	return nil
}
