package entity

import (
	"github.com/google/uuid"
)

// RoomUser is a provisioned display-client account bound to one room.
type RoomUser struct {
	ID           uuid.UUID `db:"id" json:"id"`
	LoginName    string    `db:"loginname" json:"loginname"`
	Room         string    `db:"room" json:"room"`
	PasswordHash string    `db:"password" json:"-"`
}

// RoomAssignment is the room bound to an authenticated principal.
// Produced by credential verification, consumed once per request.
type RoomAssignment struct {
	LoginName string `json:"loginname"`
	Room      string `json:"room"`
}
