package application

import (
	"testing"

	"github.com/carebridge/careworker-go/internal/domain/payroll"
	"github.com/carebridge/careworker-go/internal/domain/user"
	"github.com/carebridge/careworker-go/internal/repository"
	"github.com/carebridge/careworker-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupPayrollServiceMocks(t *testing.T) (*PayrollService, *mock.MockPayrollRepo, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockPayroll := mock.NewMockPayrollRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		Payroll: mockPayroll,
		User:    mockUser,
	}
	svc := NewPayrollService(repos)
	return svc, mockPayroll, mockUser
}

func ptrFloat(v float64) *float64 { return &v }

// --------------------- Create ---------------------
func TestCreatePayroll_DerivesAmountAndBalance(t *testing.T) {
	svc, mockPayroll, mockUser := setupPayrollServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5}, nil)
	mockPayroll.EXPECT().Create(gomock.Any()).Return(nil)

	p, err := svc.Create(payroll.CreatePayrollInput{
		CareWorkerID: 5,
		Name:         "September wages",
		TotalHours:   ptrFloat(40),
		RatePerHour:  ptrFloat(15.5),
		Paid:         ptrFloat(100),
	})
	assert.NoError(t, err)
	assert.Equal(t, 620.0, p.TotalAmount)
	assert.Equal(t, 520.0, p.Balance)
	assert.Equal(t, "Unpaid", p.Status)
}

func TestCreatePayroll_ExplicitAmountWins(t *testing.T) {
	svc, mockPayroll, mockUser := setupPayrollServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5}, nil)
	mockPayroll.EXPECT().Create(gomock.Any()).Return(nil)

	p, err := svc.Create(payroll.CreatePayrollInput{
		CareWorkerID: 5,
		Name:         "Adjustment",
		TotalHours:   ptrFloat(40),
		RatePerHour:  ptrFloat(15.5),
		TotalAmount:  ptrFloat(700),
	})
	assert.NoError(t, err)
	assert.Equal(t, 700.0, p.TotalAmount)
	assert.Equal(t, 700.0, p.Balance)
}

func TestCreatePayroll_UnknownWorker(t *testing.T) {
	svc, _, mockUser := setupPayrollServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(99)).Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.Create(payroll.CreatePayrollInput{CareWorkerID: 99, Name: "x"})
	assert.Equal(t, ErrCareWorkerNotFound, err)
}

// --------------------- Update ---------------------
func TestUpdatePayroll_BalanceAlwaysRecomputed(t *testing.T) {
	svc, mockPayroll, _ := setupPayrollServiceMocks(t)

	existing := payroll.Payroll{ID: 3, CareWorkerID: 5, TotalAmount: 620, Paid: 100, Balance: 520}
	mockPayroll.EXPECT().FindByID(uint(3)).Return(existing, nil)

	var saved payroll.Payroll
	mockPayroll.EXPECT().Save(gomock.Any()).DoAndReturn(func(p *payroll.Payroll) error {
		saved = *p
		return nil
	})

	p, err := svc.Update(3, payroll.UpdatePayrollInput{Paid: ptrFloat(620)})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, p.Balance)
	assert.Equal(t, 0.0, saved.Balance)
}

func TestUpdatePayroll_NotFound(t *testing.T) {
	svc, mockPayroll, _ := setupPayrollServiceMocks(t)

	mockPayroll.EXPECT().FindByID(uint(99)).Return(payroll.Payroll{}, gorm.ErrRecordNotFound)

	_, err := svc.Update(99, payroll.UpdatePayrollInput{})
	assert.Equal(t, ErrPayrollNotFound, err)
}

// --------------------- Delete ---------------------
func TestDeletePayroll_NotFound(t *testing.T) {
	svc, mockPayroll, _ := setupPayrollServiceMocks(t)

	mockPayroll.EXPECT().Delete(uint(99)).Return(gorm.ErrRecordNotFound)

	assert.Equal(t, ErrPayrollNotFound, svc.Delete(99))
}
