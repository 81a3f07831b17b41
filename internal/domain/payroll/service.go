package payroll

import "context"

type PayrollService interface {
	// GetPayroll computes the month's payroll view for active employees
	GetPayroll(ctx context.Context, filter PayrollFilter) (PayrollResponse, error)
}
