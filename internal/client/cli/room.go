package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tablekeeper/internal/client/controller"
	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
	"github.com/dmitrijs2005/tablekeeper/internal/client/services"
)

// roomScreen is the command surface of one opened room: its member list and
// its character sheets, each behind its own controller.
type roomScreen struct {
	app     *App
	room    models.Room
	members *services.MemberController
	chars   *services.CharacterController
}

func newRoomScreen(a *App, room models.Room) *roomScreen {
	return &roomScreen{
		app:     a,
		room:    room,
		members: services.NewMemberController(a.rooms, room.ID),
		chars:   services.NewCharacterController(a.chars, room.ID),
	}
}

func (r *roomScreen) run(ctx context.Context) {
	fmt.Printf("Opened room %q. Type 'help' for room commands, 'back' to return.\n", r.room.Name)
	if r.room.InviteCode != "" {
		fmt.Printf("Invite code: %s\n", r.room.InviteCode)
	}
	scanner := bufio.NewScanner(os.Stdin)
	runRoomREPL(ctx, r, r.status, scanner)
}

func (r *roomScreen) status() string {
	return "[" + r.room.Name + "]"
}

// Members lists the room members with their roles.
func (r *roomScreen) Members(ctx context.Context) error {
	if err := r.members.Load(ctx); err != nil {
		fmt.Println("Could not load members:", err)
		return err
	}
	snap := r.members.Snapshot()
	if len(snap.Visible) == 0 {
		fmt.Println("No members.")
		return nil
	}
	for _, m := range snap.Visible {
		marker := ""
		if m.Role == models.RoleDM {
			marker = " (DM)"
		}
		fmt.Printf("%s  %s%s\n", m.UserID, m.User.Nickname, marker)
	}
	return nil
}

// Kick removes a member from the room. Authorization is the server's call;
// the client just reports the outcome.
func (r *roomScreen) Kick(ctx context.Context, userID string) error {
	if err := r.app.rooms.Kick(ctx, r.room.ID, userID); err != nil {
		fmt.Println("Could not kick member:", err)
		return err
	}
	fmt.Println("Member removed.")
	return r.Members(ctx)
}

// TransferDM hands the DM role to another member.
func (r *roomScreen) TransferDM(ctx context.Context, userID string) error {
	if err := r.app.rooms.TransferDM(ctx, r.room.ID, userID); err != nil {
		fmt.Println("Could not transfer DM role:", err)
		return err
	}
	fmt.Println("DM role transferred.")
	return r.Members(ctx)
}

// Characters refreshes and prints the room's character sheets. Like the room
// list, the cached copy seeds a cold start and survives a failed refresh.
func (r *roomScreen) Characters(ctx context.Context) error {
	if snap := r.chars.Snapshot(); snap.State == controller.StateIdle {
		if cached, err := r.app.chars.CachedList(ctx, r.room.ID); err == nil && len(cached) > 0 {
			r.chars.Seed(cached)
		}
	}
	if err := r.chars.Load(ctx); err != nil {
		fmt.Println("Could not refresh characters:", err)
	}
	r.renderCharacters()
	return nil
}

// SearchCharacters filters the loaded character list by name, race, or class.
func (r *roomScreen) SearchCharacters(ctx context.Context, query string) error {
	r.chars.Filter(query)
	r.renderCharacters()
	return nil
}

func (r *roomScreen) renderCharacters() {
	snap := r.chars.Snapshot()
	if snap.State == controller.StateFailed && len(snap.Visible) > 0 {
		fmt.Println("Showing last known data.")
	}
	if len(snap.Visible) == 0 {
		fmt.Println("No characters to show.")
		return
	}
	for _, c := range snap.Visible {
		fmt.Printf("%s  %s, level %d %s %s (HP %d/%d, AC %d)\n",
			c.ID, c.Name, c.Level, c.Race, c.Class, c.HP, c.MaxHP, c.AC)
	}
}

// AddCharacter prompts for a new character sheet and submits it.
func (r *roomScreen) AddCharacter(ctx context.Context) error {
	card, err := promptCharacter(r.app.reader, models.CharacterCard{
		Level: 1, Strength: 10, Dexterity: 10, Constitution: 10,
		Intelligence: 10, Wisdom: 10, Charisma: 10,
		AC: 10, HP: 10, MaxHP: 10, Speed: 30, Proficiency: 2,
	})
	if err != nil {
		fmt.Println(err)
		return err
	}
	if err := r.chars.Create(ctx, card); err != nil {
		fmt.Println("Could not create character:", err)
		return err
	}
	fmt.Println("Character created.")
	r.renderCharacters()
	return nil
}

// ShowCharacter prints the full sheet of one character.
func (r *roomScreen) ShowCharacter(ctx context.Context, id string) error {
	card, err := r.app.chars.Get(ctx, r.room.ID, id)
	if err != nil {
		fmt.Println("Could not load character:", err)
		return err
	}
	renderCharacterSheet(card)
	return nil
}

// EditCharacter re-prompts every sheet field with the current values as
// defaults and submits the updated sheet.
func (r *roomScreen) EditCharacter(ctx context.Context, id string) error {
	current, err := r.app.chars.Get(ctx, r.room.ID, id)
	if err != nil {
		fmt.Println("Could not load character:", err)
		return err
	}
	card, err := promptCharacter(r.app.reader, *current)
	if err != nil {
		fmt.Println(err)
		return err
	}
	if err := r.app.chars.Update(ctx, r.room.ID, id, card); err != nil {
		fmt.Println("Could not update character:", err)
		return err
	}
	fmt.Println("Character updated.")
	return r.Characters(ctx)
}

// DeleteCharacter asks for the character's exact name before deleting. A
// mismatch cancels without touching the network.
func (r *roomScreen) DeleteCharacter(ctx context.Context, id string) error {
	typed, err := getSimpleText(r.app.reader, "Type the character name to confirm deletion", os.Stdout)
	if err != nil {
		return err
	}
	if err := r.chars.Delete(ctx, id, typed); err != nil {
		switch {
		case errors.Is(err, controller.ErrNameMismatch):
			fmt.Println("Names do not match, deletion cancelled.")
		case errors.Is(err, controller.ErrUnknownID):
			fmt.Println("No such character in the list.")
		default:
			fmt.Println("Could not delete character:", err)
		}
		return err
	}
	fmt.Println("Character deleted.")
	r.renderCharacters()
	return nil
}

// DeleteRoom asks for the room's exact name before deleting. It reports true
// when the room is gone and the screen should close.
func (r *roomScreen) DeleteRoom(ctx context.Context) (bool, error) {
	typed, err := getSimpleText(r.app.reader, "Type the room name to confirm deletion", os.Stdout)
	if err != nil {
		return false, err
	}
	if typed != r.room.Name {
		fmt.Println("Names do not match, deletion cancelled.")
		return false, controller.ErrNameMismatch
	}
	if err := r.app.rooms.Delete(ctx, r.room.ID); err != nil {
		fmt.Println("Could not delete room:", err)
		return false, err
	}
	fmt.Println("Room deleted.")
	return true, nil
}

// Leave removes the current user from the room and closes the screen.
func (r *roomScreen) Leave(ctx context.Context) (bool, error) {
	if err := r.app.rooms.Leave(ctx, r.room.ID); err != nil {
		fmt.Println("Could not leave room:", err)
		return false, err
	}
	fmt.Println("Left the room.")
	return true, nil
}
