package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/carebridge/careworker-go/internal/domain/assignment"
	"github.com/carebridge/careworker-go/internal/domain/notification"
	"github.com/carebridge/careworker-go/internal/domain/template"
	"github.com/carebridge/careworker-go/internal/domain/user"
	"github.com/carebridge/careworker-go/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrAssignmentNotFound = errors.New("form assignment not found")
	ErrNotYourAssignment  = errors.New("assignment belongs to another care worker")
	ErrAssignmentConflict = errors.New("assignment was updated by another request, please retry")
	ErrBadFormData        = errors.New("filled form data is not valid JSON")
)

// MissingFieldsError reports a submit rejected for unfilled required fields.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// SignStateError reports a signature attempt from a state that does not
// accept one.
type SignStateError struct {
	Current assignment.Status
}

func (e *SignStateError) Error() string {
	return fmt.Sprintf("cannot sign a form in status %q", e.Current)
}

// AssignResult reports the outcome of a bulk assign call.
type AssignResult struct {
	Created []assignment.FormAssignment `json:"created"`
	Skipped []uint                      `json:"skipped"`
}

// NotificationPublisher receives stored notifications for live delivery.
type NotificationPublisher interface {
	Publish(ns ...notification.Notification)
}

// LifecycleService owns every status/progress mutation of form assignments.
type LifecycleService struct {
	Repos  *repository.Repos
	Events NotificationPublisher
}

func NewLifecycleService(repos *repository.Repos, events NotificationPublisher) *LifecycleService {
	return &LifecycleService{Repos: repos, Events: events}
}

func (s *LifecycleService) publish(ns ...notification.Notification) {
	if s.Events != nil {
		s.Events.Publish(ns...)
	}
}

// AssignForms creates one assignment per template id for the worker,
// skipping templates the worker already has, and notifies the worker once
// per created row. Everything runs in one transaction.
func (s *LifecycleService) AssignForms(adminID uint, input assignment.AssignFormsInput) (AssignResult, error) {
	var result AssignResult
	var notes []notification.Notification

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		usr, err := tx.User.GetUserByID(input.CareWorkerID)
		if err != nil {
			return ErrCareWorkerNotFound
		}
		if usr.Role != user.RoleCareWorker {
			return ErrCareWorkerNotFound
		}

		notes = notes[:0]
		for _, templateID := range input.FormTemplateIDs {
			tpl, err := tx.Template.FindActiveByID(templateID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrTemplateNotFound
				}
				return err
			}

			exists, err := tx.Assignment.ExistsForWorkerAndTemplate(input.CareWorkerID, templateID)
			if err != nil {
				return err
			}
			if exists {
				result.Skipped = append(result.Skipped, templateID)
				continue
			}

			schema, err := template.ParseSchema(tpl.FormData)
			if err != nil {
				return ErrBadFormSchema
			}

			a := assignment.FormAssignment{
				CareWorkerID:     input.CareWorkerID,
				FormTemplateID:   templateID,
				AssignedBy:       adminID,
				Status:           assignment.StatusAssigned,
				TotalFieldsCount: schema.FieldCount(),
				DueDate:          input.DueDate,
			}
			if err := tx.Assignment.Create(&a); err != nil {
				return err
			}
			result.Created = append(result.Created, a)
			notes = append(notes, notification.Notification{
				UserID:  input.CareWorkerID,
				Type:    notification.TypeFormAssigned,
				Message: fmt.Sprintf("You have been assigned the form %q", tpl.Name),
			})
		}
		return tx.Notification.CreateBatch(notes)
	})
	if err != nil {
		return AssignResult{}, err
	}
	s.publish(notes...)
	return result, nil
}

// WorkerAssignments lists a worker's assignments joined with template info.
func (s *LifecycleService) WorkerAssignments(workerID uint) ([]assignment.WorkerAssignmentRow, error) {
	return s.Repos.Assignment.ListByWorker(workerID)
}

// StatusRows lists every assignment for the admin assigned-status view.
func (s *LifecycleService) StatusRows() ([]assignment.StatusRow, error) {
	return s.Repos.Assignment.ListStatusRows()
}

// Submissions lists submitted/completed assignments with filters.
func (s *LifecycleService) Submissions(q template.ListSubmissionsQuery) ([]assignment.SubmissionRow, error) {
	return s.Repos.Assignment.ListSubmissions(q)
}

// PendingSignatures lists signature-relevant assignments. workerID 0 means
// all workers.
func (s *LifecycleService) PendingSignatures(workerID uint) ([]assignment.WorkerAssignmentRow, error) {
	return s.Repos.Assignment.ListSignatureRows(workerID)
}

// SignatureHistory returns every signature captured for an assignment,
// newest first. The assignment row only caches the latest image; the
// signatures table keeps the full record.
func (s *LifecycleService) SignatureHistory(assignmentID uint) ([]assignment.Signature, error) {
	if _, err := s.Repos.Assignment.FindByID(assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return s.Repos.Signature.ListByAssignment(assignmentID)
}

// Patch applies the one generic mutation an assignment accepts: due date.
func (s *LifecycleService) Patch(id uint, patch assignment.Patch) error {
	err := s.Repos.Assignment.UpdateDueDate(id, patch.DueDate)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAssignmentNotFound
	}
	return err
}

// UpdateProgress writes one field value and recomputes progress and status.
func (s *LifecycleService) UpdateProgress(workerID uint, input assignment.UpdateProgressInput) (assignment.ProgressResult, error) {
	return s.applyFill(workerID, input.AssignedFormID, func(fields assignment.FieldMap) assignment.FieldMap {
		fields[input.FieldName] = input.FieldValue
		return fields
	})
}

// SaveDraft replaces the whole field map and recomputes progress and status.
func (s *LifecycleService) SaveDraft(workerID uint, input assignment.SaveDraftInput) (assignment.ProgressResult, error) {
	return s.applyFill(workerID, input.AssignedFormID, func(assignment.FieldMap) assignment.FieldMap {
		return input.FilledFormData
	})
}

func (s *LifecycleService) applyFill(workerID, assignmentID uint, mutate func(assignment.FieldMap) assignment.FieldMap) (assignment.ProgressResult, error) {
	a, schema, err := s.loadOwned(workerID, assignmentID)
	if err != nil {
		return assignment.ProgressResult{}, err
	}

	fields, err := parseFieldMap(a.FormData)
	if err != nil {
		return assignment.ProgressResult{}, ErrBadFormData
	}
	fields = mutate(fields)

	raw, err := json.Marshal(fields)
	if err != nil {
		return assignment.ProgressResult{}, ErrBadFormData
	}

	filled := fields.FilledCount()
	total := assignment.TotalFields(a.TotalFieldsCount, schema, fields)
	now := time.Now()

	a.FormData = raw
	a.CompletedFieldsCount = filled
	a.TotalFieldsCount = total
	a.Progress = assignment.Percent(filled, total)
	a.Status = assignment.NextStatus(a.Status, filled)
	a.LastUpdatedAt = &now

	if err := s.casUpdate(&a); err != nil {
		return assignment.ProgressResult{}, err
	}
	return progressResult(a), nil
}

// Submit validates required fields against the template schema, then moves
// the assignment to signature_pending, completed or submitted. The
// assigning admin is notified in the same transaction when the form ends
// up submitted or awaiting signature; a self-completing submission emits
// no notification here (completion is announced by the signing path).
func (s *LifecycleService) Submit(workerID uint, input assignment.SubmitInput) (assignment.SubmitResult, error) {
	a, schema, err := s.loadOwned(workerID, input.AssignedFormID)
	if err != nil {
		return assignment.SubmitResult{}, err
	}

	fields := input.FilledFormData
	if fields == nil {
		fields = assignment.FieldMap{}
	}
	if missing := assignment.MissingRequired(schema, fields); len(missing) > 0 {
		return assignment.SubmitResult{}, &MissingFieldsError{Fields: missing}
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return assignment.SubmitResult{}, ErrBadFormData
	}

	filled := fields.FilledCount()
	total := assignment.TotalFields(a.TotalFieldsCount, schema, fields)
	progress := assignment.Percent(filled, total)
	now := time.Now()

	a.FormData = raw
	a.CompletedFieldsCount = filled
	a.TotalFieldsCount = total
	a.Progress = progress
	a.LastUpdatedAt = &now
	a.SubmittedAt = &now

	switch {
	case input.RequiresSignature:
		a.Status = assignment.StatusSignaturePending
	case progress >= 100:
		a.Status = assignment.StatusCompleted
		a.CompletedAt = &now
		a.Progress = 100
	default:
		a.Status = assignment.StatusSubmitted
	}

	var note *notification.Notification
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Assignment.UpdateLifecycle(&a, a.Revision); err != nil {
			return err
		}
		if err := s.refreshWorkerAggregates(tx, a.CareWorkerID); err != nil {
			return err
		}
		if a.Status == assignment.StatusCompleted {
			return nil
		}
		note, err = s.notifyAssigner(tx, &a, notification.TypeFormSubmitted,
			fmt.Sprintf("Form %q was submitted", templateName(tx, a.FormTemplateID)))
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrStaleAssignment) {
			return assignment.SubmitResult{}, ErrAssignmentConflict
		}
		return assignment.SubmitResult{}, err
	}
	if note != nil {
		s.publish(*note)
	}

	return assignment.SubmitResult{
		AssignedFormID:       a.ID,
		Status:               a.Status,
		CompletedFieldsCount: a.CompletedFieldsCount,
		TotalFieldsCount:     a.TotalFieldsCount,
		Progress:             a.Progress,
		RequiresSignature:    a.Status == assignment.StatusSignaturePending,
	}, nil
}

// Sign captures the worker's own signature on an assignment.
func (s *LifecycleService) Sign(workerID uint, input assignment.SignInput) (assignment.FormAssignment, error) {
	return s.sign(input.AssignedFormID, input.SignatureImage, "draw", workerID)
}

// SubmitSignature is the admin signature-capture path; ownership is not
// enforced.
func (s *LifecycleService) SubmitSignature(input assignment.SubmitSignatureInput) (assignment.FormAssignment, error) {
	sigType := input.SignatureType
	if sigType == "" {
		sigType = "draw"
	}
	return s.sign(input.AssignmentID, input.SignatureData, sigType, 0)
}

// sign is the single signature write path: appends the signature row,
// embeds the payload on the assignment, forces completion and notifies the
// assigner, all in one transaction. ownerID 0 skips the ownership check.
func (s *LifecycleService) sign(assignmentID uint, signatureData, signatureType string, ownerID uint) (assignment.FormAssignment, error) {
	a, err := s.Repos.Assignment.FindByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return assignment.FormAssignment{}, ErrAssignmentNotFound
		}
		return assignment.FormAssignment{}, err
	}
	if ownerID != 0 && a.CareWorkerID != ownerID {
		return assignment.FormAssignment{}, ErrNotYourAssignment
	}
	if !a.Status.CanSign() {
		return assignment.FormAssignment{}, &SignStateError{Current: a.Status}
	}

	now := time.Now()
	a.SignatureData = &signatureData
	a.Status = assignment.StatusCompleted
	a.Progress = 100
	a.CompletedAt = &now
	a.LastUpdatedAt = &now

	var note *notification.Notification
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Assignment.UpdateLifecycle(&a, a.Revision); err != nil {
			return err
		}
		sig := assignment.Signature{
			FormAssignmentID: a.ID,
			SignatureData:    signatureData,
			SignatureType:    signatureType,
		}
		if err := tx.Signature.Create(&sig); err != nil {
			return err
		}
		if err := s.refreshWorkerAggregates(tx, a.CareWorkerID); err != nil {
			return err
		}
		note, err = s.notifyAssigner(tx, &a, notification.TypeFormCompleted,
			fmt.Sprintf("Form %q was signed and completed", templateName(tx, a.FormTemplateID)))
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrStaleAssignment) {
			return assignment.FormAssignment{}, ErrAssignmentConflict
		}
		return assignment.FormAssignment{}, err
	}
	if note != nil {
		s.publish(*note)
	}
	return a, nil
}

func (s *LifecycleService) casUpdate(a *assignment.FormAssignment) error {
	err := s.Repos.Assignment.UpdateLifecycle(a, a.Revision)
	if errors.Is(err, repository.ErrStaleAssignment) {
		return ErrAssignmentConflict
	}
	return err
}

// loadOwned fetches the assignment, checks ownership, and resolves the
// template schema.
func (s *LifecycleService) loadOwned(workerID, assignmentID uint) (assignment.FormAssignment, template.Schema, error) {
	a, err := s.Repos.Assignment.FindByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return assignment.FormAssignment{}, template.Schema{}, ErrAssignmentNotFound
		}
		return assignment.FormAssignment{}, template.Schema{}, err
	}
	if a.CareWorkerID != workerID {
		return assignment.FormAssignment{}, template.Schema{}, ErrNotYourAssignment
	}

	var schema template.Schema
	if tpl, err := s.Repos.Template.FindByID(a.FormTemplateID); err == nil {
		if parsed, err := template.ParseSchema(tpl.FormData); err == nil {
			schema = parsed
		}
	}
	return a, schema, nil
}

// refreshWorkerAggregates recomputes the profile's overall progress and
// pending sign-off count from assignment state.
func (s *LifecycleService) refreshWorkerAggregates(tx *repository.Repos, workerID uint) error {
	profile, err := tx.User.GetProfileByUserID(workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	all := []assignment.Status{
		assignment.StatusAssigned,
		assignment.StatusInProgress,
		assignment.StatusSubmitted,
		assignment.StatusSignaturePending,
		assignment.StatusCompleted,
	}
	total, err := tx.Assignment.CountByWorkerAndStatuses(workerID, all)
	if err != nil {
		return err
	}
	completed, err := tx.Assignment.CountByWorkerAndStatuses(workerID, []assignment.Status{assignment.StatusCompleted})
	if err != nil {
		return err
	}
	pending, err := tx.Assignment.CountByWorkerAndStatuses(workerID, []assignment.Status{
		assignment.StatusSubmitted,
		assignment.StatusSignaturePending,
	})
	if err != nil {
		return err
	}

	profile.PendingSignOffs = int(pending)
	if total > 0 {
		profile.Progress = float64(completed) / float64(total) * 100
	} else {
		profile.Progress = 0
	}
	return tx.User.SaveProfile(&profile)
}

func (s *LifecycleService) notifyAssigner(tx *repository.Repos, a *assignment.FormAssignment, noteType, message string) (*notification.Notification, error) {
	if a.AssignedBy == 0 {
		return nil, nil
	}
	n := notification.Notification{
		UserID:  a.AssignedBy,
		Type:    noteType,
		Message: message,
	}
	if err := tx.Notification.Create(&n); err != nil {
		return nil, err
	}
	return &n, nil
}

func templateName(tx *repository.Repos, templateID uint) string {
	tpl, err := tx.Template.FindByID(templateID)
	if err != nil {
		return "form"
	}
	return tpl.Name
}

func parseFieldMap(raw []byte) (assignment.FieldMap, error) {
	fields := assignment.FieldMap{}
	if len(raw) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func progressResult(a assignment.FormAssignment) assignment.ProgressResult {
	return assignment.ProgressResult{
		AssignedFormID:       a.ID,
		CompletedFieldsCount: a.CompletedFieldsCount,
		TotalFieldsCount:     a.TotalFieldsCount,
		Progress:             a.Progress,
		Status:               a.Status,
	}
}
