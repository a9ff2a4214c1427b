package document

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// Document is file metadata owned by a care worker. Certificates reuse this
// table by convention: an expiry date or "Certificate" in the name.
type Document struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	CareWorkerID uint       `gorm:"not null;index" json:"care_worker_id"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Description  *string    `gorm:"type:text" json:"description"`
	FileURL      *string    `gorm:"size:512" json:"file_url"`
	FileType     *string    `gorm:"size:100" json:"file_type"`
	FileSize     *int64     `json:"file_size"`
	UploadedBy   uint       `json:"uploaded_by"`
	Status       Status     `gorm:"size:50;default:'Pending'" json:"status"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	SignedAt     *time.Time `json:"signed_at"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}

// IsCertificate reports whether the document matches the certificate
// convention.
func (d *Document) IsCertificate() bool {
	return d.ExpiryDate != nil || strings.Contains(strings.ToLower(d.Name), "certificate")
}
