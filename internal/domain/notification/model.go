package notification

import "time"

const (
	TypeFormAssigned  = "form_assigned"
	TypeFormSubmitted = "form_submitted"
	TypeFormCompleted = "form_completed"
)

// Notification is an append-only per-user event record. Only the read flag
// ever changes after insert.
type Notification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Type      string    `gorm:"size:50;not null" json:"type"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
