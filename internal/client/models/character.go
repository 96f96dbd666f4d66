package models

import "time"

// CharacterCard is a player's in-game character sheet, scoped to one room.
// Skills, saves, equipment and spells are free-form serialized text; the
// client edits a local draft copy before submission.
//
// hp may legitimately exceed max_hp in data coming from the server; the
// client displays it as-is and does not enforce the relation.
type CharacterCard struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	RoomID     string `json:"room_id"`
	Name       string `json:"name"`
	Race       string `json:"race"`
	Class      string `json:"class"`
	Level      int    `json:"level"`
	Background string `json:"background"`
	Alignment  string `json:"alignment"`

	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`

	AC          int `json:"ac"`
	HP          int `json:"hp"`
	MaxHP       int `json:"max_hp"`
	Speed       int `json:"speed"`
	Proficiency int `json:"proficiency"`

	Skills    string `json:"skills"`
	Saves     string `json:"saves"`
	Equipment string `json:"equipment"`
	Spells    string `json:"spells"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
