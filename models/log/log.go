package log

import (
	"time"
)

// ActionLog represents one action applied to the application store.
type ActionLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Sequence  uint64    `gorm:"not null;index" json:"sequence"`
	Action    string    `gorm:"type:varchar(50);not null;index" json:"action"`
	Payload   string    `gorm:"type:text" json:"payload"`
	Outcome   string    `gorm:"type:varchar(20);not null" json:"outcome"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
