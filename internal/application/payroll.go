package application

import (
	"errors"

	"github.com/carebridge/careworker-go/internal/domain/payroll"
	"github.com/carebridge/careworker-go/internal/repository"
	"gorm.io/gorm"
)

var ErrPayrollNotFound = errors.New("payroll record not found")

type PayrollService struct {
	Repos *repository.Repos
}

func NewPayrollService(repos *repository.Repos) *PayrollService {
	return &PayrollService{Repos: repos}
}

func (s *PayrollService) List(q payroll.ListPayrollQuery) ([]payroll.Row, error) {
	return s.Repos.Payroll.List(q)
}

func (s *PayrollService) Get(id uint) (payroll.Payroll, error) {
	p, err := s.Repos.Payroll.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payroll.Payroll{}, ErrPayrollNotFound
		}
		return payroll.Payroll{}, err
	}
	return p, nil
}

func (s *PayrollService) Create(input payroll.CreatePayrollInput) (payroll.Payroll, error) {
	if _, err := s.Repos.User.GetUserByID(input.CareWorkerID); err != nil {
		return payroll.Payroll{}, ErrCareWorkerNotFound
	}

	p := payroll.Payroll{
		CareWorkerID: input.CareWorkerID,
		Region:       input.Region,
		Name:         input.Name,
		ClientNo:     input.ClientNo,
		Date:         input.Date,
		Status:       "Unpaid",
	}
	if input.TotalHours != nil {
		p.TotalHours = *input.TotalHours
	}
	if input.RatePerHour != nil {
		p.RatePerHour = *input.RatePerHour
	}
	if input.TotalAmount != nil {
		p.TotalAmount = *input.TotalAmount
	} else {
		p.TotalAmount = p.TotalHours * p.RatePerHour
	}
	if input.Paid != nil {
		p.Paid = *input.Paid
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
	p.Balance = p.TotalAmount - p.Paid

	if err := s.Repos.Payroll.Create(&p); err != nil {
		return payroll.Payroll{}, err
	}
	return p, nil
}

// Update applies partial changes; Balance is always recomputed, never taken
// from input.
func (s *PayrollService) Update(id uint, input payroll.UpdatePayrollInput) (payroll.Payroll, error) {
	p, err := s.Get(id)
	if err != nil {
		return payroll.Payroll{}, err
	}

	if input.Region != nil {
		p.Region = input.Region
	}
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.ClientNo != nil {
		p.ClientNo = input.ClientNo
	}
	if input.Date != nil {
		p.Date = input.Date
	}
	if input.TotalHours != nil {
		p.TotalHours = *input.TotalHours
	}
	if input.RatePerHour != nil {
		p.RatePerHour = *input.RatePerHour
	}
	if input.TotalAmount != nil {
		p.TotalAmount = *input.TotalAmount
	}
	if input.Paid != nil {
		p.Paid = *input.Paid
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
	p.Balance = p.TotalAmount - p.Paid

	if err := s.Repos.Payroll.Save(&p); err != nil {
		return payroll.Payroll{}, err
	}
	return p, nil
}

func (s *PayrollService) Delete(id uint) error {
	err := s.Repos.Payroll.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPayrollNotFound
	}
	return err
}
