package payroll

import "time"

// Payroll is one financial record per worker per period. Balance is derived
// and recomputed on every write: total_amount - paid.
type Payroll struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	CareWorkerID uint       `gorm:"not null;index" json:"care_worker_id"`
	Region       *string    `gorm:"size:100" json:"region"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	ClientNo     *string    `gorm:"size:100" json:"client_no"`
	Date         *time.Time `json:"date"`
	TotalHours   float64    `gorm:"default:0" json:"total_hours"`
	RatePerHour  float64    `gorm:"default:0" json:"rate_per_hour"`
	TotalAmount  float64    `gorm:"default:0" json:"total_amount"`
	Paid         float64    `gorm:"default:0" json:"paid"`
	Balance      float64    `gorm:"default:0" json:"balance"`
	Status       string     `gorm:"size:50;default:'Unpaid'" json:"status"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Payroll) TableName() string {
	return "payroll"
}
