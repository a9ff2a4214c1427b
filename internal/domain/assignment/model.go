package assignment

import (
	"time"

	"gorm.io/datatypes"
)

// Status is the assignment lifecycle state. All transitions go through the
// lifecycle service; the generic assignment patch endpoint cannot touch it.
type Status string

const (
	StatusAssigned         Status = "assigned"
	StatusInProgress       Status = "in_progress"
	StatusSubmitted        Status = "submitted"
	StatusSignaturePending Status = "signature_pending"
	StatusCompleted        Status = "completed"
)

// CanSign reports whether a signature may be captured in this state.
func (s Status) CanSign() bool {
	return s == StatusSignaturePending || s == StatusSubmitted
}

// Display maps a status to the label the admin views show.
func (s Status) Display() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusInProgress:
		return "In Progress"
	case StatusSubmitted, StatusSignaturePending:
		return "Sign Required"
	default:
		return "Not Started"
	}
}

// FormAssignment links one care worker to one form template and carries all
// mutable fill/signature state. Revision guards lifecycle writes against
// concurrent lost updates.
type FormAssignment struct {
	ID                   uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CareWorkerID         uint           `gorm:"not null;index:idx_worker_template,unique" json:"care_worker_id"`
	FormTemplateID       uint           `gorm:"not null;index:idx_worker_template,unique" json:"form_template_id"`
	AssignedBy           uint           `json:"assigned_by"`
	Status               Status         `gorm:"type:assignment_status;default:'assigned'" json:"status"`
	Progress             int            `gorm:"default:0" json:"progress"`
	FormData             datatypes.JSON `gorm:"column:form_data" json:"form_data"`
	CompletedFieldsCount int            `gorm:"default:0" json:"completed_fields_count"`
	TotalFieldsCount     int            `gorm:"default:0" json:"total_fields_count"`
	SignatureData        *string        `gorm:"type:text" json:"-"`
	Revision             uint           `gorm:"default:0" json:"-"`
	AssignedAt           time.Time      `gorm:"autoCreateTime" json:"assigned_at"`
	SubmittedAt          *time.Time     `json:"submitted_at"`
	CompletedAt          *time.Time     `json:"completed_at"`
	LastUpdatedAt        *time.Time     `json:"last_updated_at"`
	DueDate              *time.Time     `json:"due_date"`
}

func (FormAssignment) TableName() string {
	return "form_assignments"
}

func (a *FormAssignment) HasSignature() bool {
	return a.SignatureData != nil && *a.SignatureData != ""
}

// Signature is the append-only history of signing events. It is the source
// of truth; the assignment's embedded copy is a denormalized cache written
// in the same transaction.
type Signature struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FormAssignmentID uint      `gorm:"not null;index" json:"form_assignment_id"`
	SignatureData    string    `gorm:"type:text;not null" json:"signature_data"`
	SignatureType    string    `gorm:"size:50;default:'draw'" json:"signature_type"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Signature) TableName() string {
	return "signatures"
}
