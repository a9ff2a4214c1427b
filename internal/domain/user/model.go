package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleCareWorker Role = "care_worker"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// User is the identity record. Care-worker attributes live on the
// one-to-one CareWorkerProfile, created lazily.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      Role      `gorm:"type:user_role;default:'care_worker'" json:"role"`
	Status    Status    `gorm:"type:user_status;default:'active'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type CareWorkerProfile struct {
	ID                    uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID                uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Name                  string    `gorm:"size:255;not null" json:"name"`
	Phone                 *string   `gorm:"size:50" json:"phone"`
	Address               *string   `gorm:"type:text" json:"address"`
	EmergencyContactName  *string   `gorm:"size:255" json:"emergency_contact_name"`
	EmergencyContactPhone *string   `gorm:"size:50" json:"emergency_contact_phone"`
	Progress              float64   `gorm:"default:0" json:"progress"`
	PendingSignOffs       int       `gorm:"default:0" json:"pending_sign_offs"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CareWorkerProfile) TableName() string {
	return "care_worker_profiles"
}
