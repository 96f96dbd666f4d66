package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// roomExecIface is the command surface of the room-scoped loop. The real
// roomScreen type satisfies it; tests can provide a stub.
type roomExecIface interface {
	Members(ctx context.Context) error
	Kick(ctx context.Context, userID string) error
	TransferDM(ctx context.Context, userID string) error
	Characters(ctx context.Context) error
	SearchCharacters(ctx context.Context, query string) error
	AddCharacter(ctx context.Context) error
	ShowCharacter(ctx context.Context, id string) error
	EditCharacter(ctx context.Context, id string) error
	DeleteCharacter(ctx context.Context, id string) error
	DeleteRoom(ctx context.Context) (bool, error)
	Leave(ctx context.Context) (bool, error)
}

// runRoomREPL runs the nested loop for one opened room. It returns when the
// user types "back", deletes or leaves the room, or the scanner hits EOF.
//
// Commands:
//
//	  - help             — show available commands
//	  - members          — list room members
//	  - kick <userId>    — remove a member (DM only)
//	  - transferdm <userId> — hand the DM role to another member
//	  - chars | list     — list character sheets
//	  - csearch <text>   — filter character sheets (empty text clears)
//	  - addchar          — create a character sheet
//	  - showchar <id>    — show a character sheet
//	  - editchar <id>    — edit a character sheet
//	  - delchar <id>     — delete a character sheet (typed-name confirmation)
//	  - delete           — delete the room (typed-name confirmation, DM only)
//	  - leave            — leave the room
//	  - back             — return to the main prompt
func runRoomREPL(ctx context.Context, r roomExecIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: members, kick <userId>, transferdm <userId>, chars, csearch <text>, addchar, showchar <id>, editchar <id>, delchar <id>, delete, leave, back")

		case "members":
			_ = r.Members(ctx)

		case "kick":
			if len(args) == 0 {
				printlnFn("Usage: kick <user id>")
				continue
			}
			_ = r.Kick(ctx, args[0])

		case "transferdm":
			if len(args) == 0 {
				printlnFn("Usage: transferdm <user id>")
				continue
			}
			_ = r.TransferDM(ctx, args[0])

		case "chars", "characters", "list", "l":
			_ = r.Characters(ctx)

		case "csearch":
			_ = r.SearchCharacters(ctx, strings.Join(args, " "))

		case "addchar":
			_ = r.AddCharacter(ctx)

		case "showchar":
			if len(args) == 0 {
				printlnFn("Usage: showchar <character id>")
				continue
			}
			_ = r.ShowCharacter(ctx, args[0])

		case "editchar":
			if len(args) == 0 {
				printlnFn("Usage: editchar <character id>")
				continue
			}
			_ = r.EditCharacter(ctx, args[0])

		case "delchar":
			if len(args) == 0 {
				printlnFn("Usage: delchar <character id>")
				continue
			}
			_ = r.DeleteCharacter(ctx, args[0])

		case "delete":
			if done, _ := r.DeleteRoom(ctx); done {
				return
			}

		case "leave":
			if done, _ := r.Leave(ctx); done {
				return
			}

		case "back":
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
