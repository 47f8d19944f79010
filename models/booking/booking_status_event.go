package booking

import (
	"time"
)

// BookingStatusEvent records a status change applied to a booking
type BookingStatusEvent struct {
	ID        uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID string        `gorm:"type:varchar(255);not null;index" json:"booking_id"`
	Status    BookingStatus `gorm:"size:20;not null" json:"status"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the BookingStatusEvent model
func (BookingStatusEvent) TableName() string {
	return "booking_status_events"
}
