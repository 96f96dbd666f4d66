// Package models defines the typed records exchanged with the TableKeeper
// backend. Payloads are deserialized into these structs at the HTTP boundary;
// nothing downstream handles untyped data.
package models

// User is an immutable snapshot of a backend user. The client never mutates
// it in place; a profile update replaces the whole record.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar,omitempty"`
}
