package payroll

import "time"

type CreatePayrollInput struct {
	CareWorkerID uint       `json:"careWorkerId" binding:"required"`
	Region       *string    `json:"region"`
	Name         string     `json:"name" binding:"required"`
	ClientNo     *string    `json:"clientNo"`
	Date         *time.Time `json:"date"`
	TotalHours   *float64   `json:"totalHours"`
	RatePerHour  *float64   `json:"ratePerHour"`
	TotalAmount  *float64   `json:"totalAmount"`
	Paid         *float64   `json:"paid"`
	Status       *string    `json:"status"`
}

type UpdatePayrollInput struct {
	Region      *string    `json:"region"`
	Name        *string    `json:"name"`
	ClientNo    *string    `json:"clientNo"`
	Date        *time.Time `json:"date"`
	TotalHours  *float64   `json:"totalHours"`
	RatePerHour *float64   `json:"ratePerHour"`
	TotalAmount *float64   `json:"totalAmount"`
	Paid        *float64   `json:"paid"`
	Status      *string    `json:"status"`
}

type ListPayrollQuery struct {
	Search string `form:"search"`
	Region string `form:"region"`
	Status string `form:"status"`
}

// Row is the payroll listing projection with worker identity joined in.
type Row struct {
	Payroll
	Email          *string `json:"email"`
	CareWorkerName *string `json:"care_worker_name"`
}
