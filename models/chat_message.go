package models

import "time"

// Chat roles. Exactly two variants exist; the check constraint below keeps
// the log from ever holding anything else.
const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatMessage is one side of a chatbot exchange. The log is append-only and
// ordered by timestamp; rows are never updated after insert.
type ChatMessage struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Role      string    `json:"role" db:"role" gorm:"type:text;not null;check:role IN ('user','model')" validate:"required,oneof=user model"`
	Text      string    `json:"text" db:"text" gorm:"type:text;not null" validate:"required"`
	Timestamp time.Time `json:"timestamp" db:"timestamp" gorm:"autoCreateTime;index"`
}
