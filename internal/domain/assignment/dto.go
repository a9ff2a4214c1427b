package assignment

import (
	"time"
)

type AssignFormsInput struct {
	CareWorkerID    uint       `json:"careWorkerId" binding:"required"`
	FormTemplateIDs []uint     `json:"formTemplateIds" binding:"required,min=1"`
	DueDate         *time.Time `json:"dueDate"`
}

type UpdateProgressInput struct {
	AssignedFormID uint        `json:"assignedFormId" binding:"required"`
	FieldName      string      `json:"fieldName" binding:"required"`
	FieldValue     interface{} `json:"fieldValue"`
}

type SaveDraftInput struct {
	AssignedFormID uint     `json:"assignedFormId" binding:"required"`
	FilledFormData FieldMap `json:"filledFormData" binding:"required"`
}

type SubmitInput struct {
	AssignedFormID    uint     `json:"assignedFormId" binding:"required"`
	FilledFormData    FieldMap `json:"filledFormData" binding:"required"`
	RequiresSignature bool     `json:"requiresSignature"`
}

type SignInput struct {
	AssignedFormID uint   `json:"assignedFormId" binding:"required"`
	SignatureImage string `json:"signatureImage" binding:"required"`
}

type SubmitSignatureInput struct {
	AssignmentID  uint   `json:"assignmentId" binding:"required"`
	SignatureData string `json:"signatureData" binding:"required"`
	SignatureType string `json:"signatureType"`
}

// Patch is the only mutation the generic assignment update endpoint
// accepts. Status and progress move exclusively through the lifecycle
// operations.
type Patch struct {
	DueDate *time.Time `json:"dueDate"`
}

// ProgressResult reports the outcome of a field update or draft save.
type ProgressResult struct {
	AssignedFormID       uint   `json:"assignedFormId"`
	CompletedFieldsCount int    `json:"completedFieldsCount"`
	TotalFieldsCount     int    `json:"totalFieldsCount"`
	Progress             int    `json:"progress"`
	Status               Status `json:"status"`
}

// SubmitResult reports the outcome of a submit call.
type SubmitResult struct {
	AssignedFormID       uint   `json:"assignedFormId"`
	Status               Status `json:"status"`
	CompletedFieldsCount int    `json:"completedFieldsCount"`
	TotalFieldsCount     int    `json:"totalFieldsCount"`
	Progress             int    `json:"progress"`
	RequiresSignature    bool   `json:"requiresSignature"`
}

// WorkerAssignmentRow is the joined assignment + template projection for a
// single care worker.
type WorkerAssignmentRow struct {
	ID              uint       `json:"id"`
	Status          Status     `json:"status"`
	Progress        int        `json:"progress"`
	AssignedAt      time.Time  `json:"assigned_at"`
	SubmittedAt     *time.Time `json:"submitted_at"`
	CompletedAt     *time.Time `json:"completed_at"`
	DueDate         *time.Time `json:"due_date"`
	FormData        []byte     `json:"-"`
	SignatureData   *string    `json:"-"`
	FormTemplateID  uint       `json:"form_template_id"`
	FormName        string     `json:"form_name"`
	FormType        string     `json:"form_type"`
	FormVersion     string     `json:"form_version"`
	FormDescription *string    `json:"form_description"`
}

// StatusRow is the admin assigned-status projection row.
type StatusRow struct {
	AssignmentID         uint       `json:"assignedFormId"`
	Status               Status     `json:"-"`
	Progress             int        `json:"progress"`
	CompletedFieldsCount int        `json:"completedFieldsCount"`
	TotalFieldsCount     int        `json:"totalFieldsCount"`
	LastUpdatedAt        *time.Time `json:"lastUpdatedAt"`
	SubmittedAt          *time.Time `json:"submittedAt"`
	CompletedAt          *time.Time `json:"completedAt"`
	AssignedAt           time.Time  `json:"assignedAt"`
	DueDate              *time.Time `json:"dueDate"`
	CareWorkerID         uint       `json:"-"`
	CareWorkerName       *string    `json:"-"`
	CareWorkerEmail      string     `json:"-"`
	FormID               uint       `json:"-"`
	FormName             string     `json:"-"`
	FormType             string     `json:"-"`
}

// SubmissionRow is the admin submissions listing projection row.
type SubmissionRow struct {
	ID              uint       `json:"id"`
	Status          Status     `json:"status"`
	Progress        int        `json:"progress"`
	SubmittedAt     *time.Time `json:"submitted_at"`
	CompletedAt     *time.Time `json:"completed_at"`
	DueDate         *time.Time `json:"due_date"`
	FormData        []byte     `json:"-"`
	FormTemplateID  uint       `json:"form_template_id"`
	FormName        string     `json:"form_name"`
	FormType        string     `json:"form_type"`
	FormVersion     string     `json:"form_version"`
	FormDescription *string    `json:"form_description"`
	CareWorkerID    uint       `json:"care_worker_id"`
	CareWorkerEmail string     `json:"care_worker_email"`
	CareWorkerName  *string    `json:"care_worker_name"`
}
