package user

import "time"

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

type UpdateProfileInput struct {
	Email                 *string `json:"email" binding:"omitempty,email"`
	Name                  *string `json:"name"`
	Phone                 *string `json:"phone"`
	Address               *string `json:"address"`
	EmergencyContactName  *string `json:"emergencyContactName"`
	EmergencyContactPhone *string `json:"emergencyContactPhone"`
}

type CreateCareWorkerInput struct {
	Email                 string   `json:"email" binding:"required,email"`
	Password              string   `json:"password" binding:"required,min=6"`
	Name                  string   `json:"name" binding:"required"`
	Phone                 *string  `json:"phone"`
	Address               *string  `json:"address"`
	EmergencyContactName  *string  `json:"emergencyContactName"`
	EmergencyContactPhone *string  `json:"emergencyContactPhone"`
	Status                *string  `json:"status" binding:"omitempty,oneof=active inactive pending"`
	Progress              *float64 `json:"progress"`
	PendingSignOffs       *int     `json:"pendingSignOffs"`
}

type UpdateCareWorkerInput struct {
	Email                 *string  `json:"email" binding:"omitempty,email"`
	Password              *string  `json:"password" binding:"omitempty,min=6"`
	Name                  *string  `json:"name"`
	Phone                 *string  `json:"phone"`
	Address               *string  `json:"address"`
	EmergencyContactName  *string  `json:"emergencyContactName"`
	EmergencyContactPhone *string  `json:"emergencyContactPhone"`
	Status                *string  `json:"status" binding:"omitempty,oneof=active inactive pending"`
	Progress              *float64 `json:"progress"`
	PendingSignOffs       *int     `json:"pendingSignOffs"`
}

type ListCareWorkersQuery struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	Progress string `form:"progress"`
}

// CareWorkerRow is the joined users + profile + assignment-counts projection
// used by the admin list and export.
type CareWorkerRow struct {
	ID                       uint       `json:"id"`
	Email                    string     `json:"email"`
	Status                   Status     `json:"status"`
	CreatedAt                time.Time  `json:"created_at"`
	Name                     *string    `json:"name"`
	Phone                    *string    `json:"phone"`
	Address                  *string    `json:"address"`
	EmergencyContactName     *string    `json:"emergency_contact_name"`
	EmergencyContactPhone    *string    `json:"emergency_contact_phone"`
	Progress                 *float64   `json:"progress"`
	PendingSignOffs          *int       `json:"pending_sign_offs"`
	TotalForms               int        `json:"total_forms"`
	CompletedForms           int        `json:"completed_forms"`
	CalculatedPendingSignoff int        `json:"calculated_pending_signoffs"`
	LastAssignedAt           *time.Time `json:"-"`
}

// CareWorkerDTO is the API shape returned to admin views.
type CareWorkerDTO struct {
	ID                    uint        `json:"id"`
	Name                  string      `json:"name"`
	Email                 string      `json:"email"`
	Phone                 string      `json:"phone"`
	Address               string      `json:"address"`
	Status                string      `json:"status"`
	Progress              float64     `json:"progress"`
	PendingSignOffs       int         `json:"pendingSignOffs"`
	EmergencyContactName  string      `json:"emergencyContactName"`
	EmergencyContactPhone string      `json:"emergencyContactPhone"`
	AssignedForms         interface{} `json:"assignedForms"`
	CreatedAt             time.Time   `json:"createdAt"`
}

func displayStatus(s Status) string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Inactive"
	default:
		return "Pending"
	}
}

func (r CareWorkerRow) ToDTO() CareWorkerDTO {
	dto := CareWorkerDTO{
		ID:            r.ID,
		Name:          "N/A",
		Email:         r.Email,
		Phone:         "N/A",
		Status:        displayStatus(r.Status),
		AssignedForms: []uint{},
		CreatedAt:     r.CreatedAt,
	}
	if r.Name != nil && *r.Name != "" {
		dto.Name = *r.Name
	}
	if r.Phone != nil && *r.Phone != "" {
		dto.Phone = *r.Phone
	}
	if r.Address != nil {
		dto.Address = *r.Address
	}
	if r.EmergencyContactName != nil {
		dto.EmergencyContactName = *r.EmergencyContactName
	}
	if r.EmergencyContactPhone != nil {
		dto.EmergencyContactPhone = *r.EmergencyContactPhone
	}
	if r.Progress != nil {
		dto.Progress = *r.Progress
	}
	if r.PendingSignOffs != nil {
		dto.PendingSignOffs = *r.PendingSignOffs
	}
	return dto
}
