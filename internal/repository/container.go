package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User         UserRepo
	Template     TemplateRepo
	Assignment   AssignmentRepo
	Signature    SignatureRepo
	Notification NotificationRepo
	Document     DocumentRepo
	Payroll      PayrollRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:         NewUserRepo(db),
		Template:     NewTemplateRepo(db),
		Assignment:   NewAssignmentRepo(db),
		Signature:    NewSignatureRepo(db),
		Notification: NewNotificationRepo(db),
		Document:     NewDocumentRepo(db),
		Payroll:      NewPayrollRepo(db),
		db:           db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:         r.User.WithTx(tx),
		Template:     r.Template.WithTx(tx),
		Assignment:   r.Assignment.WithTx(tx),
		Signature:    r.Signature.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		Document:     r.Document.WithTx(tx),
		Payroll:      r.Payroll.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn against a transactional copy of every repo; any error
// rolls the whole block back. A Repos built without a database handle
// (mock-backed) runs fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
