package models

import "time"

// Room member roles. Exactly one member per room has RoleDM.
const (
	RoleDM     = "dm"
	RolePlayer = "player"
)

// Room is a game session instance owned by the backend. The client holds a
// read-mostly cached copy per list/detail view; id is unique within a fetched
// collection.
type Room struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	RuleSystem  string    `json:"rule_system"`
	InviteCode  string    `json:"invite_code"`
	DMID        string    `json:"dm_id"`
	MaxPlayers  int       `json:"max_players"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoomMember links a user to a room with a role.
type RoomMember struct {
	UserID string `json:"user_id"`
	RoomID string `json:"room_id"`
	Role   string `json:"role"`
	User   User   `json:"user"`
}

// CreateRoomInput is the client-side draft for a new room. Server-assigned
// fields (id, invite code, timestamps) come back via a follow-up list fetch.
type CreateRoomInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	RuleSystem  string `json:"rule_system,omitempty"`
	MaxPlayers  int    `json:"max_players,omitempty"`
	IsPublic    bool   `json:"is_public"`
}
