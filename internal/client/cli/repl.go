package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Rooms(ctx context.Context) error
	Search(ctx context.Context, query string) error
	CreateRoom(ctx context.Context) error
	OpenRoom(ctx context.Context, id string) error
	JoinRoom(ctx context.Context, id string) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the TableKeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - rooms | list   — list game rooms
//	  - search <text>  — filter the room list (empty text clears the filter)
//	  - create         — create a new room
//	  - open <id>      — open a room (members, character sheets)
//	  - join <id>      — join a room
//	  - profile        — show the current profile
//	  - editprofile    — change nickname/avatar
//	  - passwd         — change password
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
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
			if a.isLoggedIn() {
				printlnFn("Available commands: rooms, search <text>, create, open <id>, join <id>, profile, editprofile, passwd, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "rooms", "list", "l":
			_ = a.Rooms(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "create":
			_ = a.CreateRoom(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <room id>")
				continue
			}
			_ = a.OpenRoom(ctx, args[0])

		case "join":
			if len(args) == 0 {
				printlnFn("Usage: join <room id>")
				continue
			}
			_ = a.JoinRoom(ctx, args[0])

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
