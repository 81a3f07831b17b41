package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollRepo struct {
	summaries []payroll.AttendanceSummary
	err       error

	from, to time.Time
	local    *string
}

func (f *fakePayrollRepo) GetMonthlySummaries(ctx context.Context, from, to time.Time, local *string) ([]payroll.AttendanceSummary, error) {
	f.from, f.to, f.local = from, to, local
	return f.summaries, f.err
}

var testRates = payroll.Rates{
	LateMinuteRate:  decimal.RequireFromString("10"),
	EarlyMinuteRate: decimal.RequireFromString("5"),
}

func newService(repo *fakePayrollRepo) *PayrollServiceImpl {
	svc := NewPayrollService(repo, testRates).(*PayrollServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 3, 18, 9, 30, 0, 0, time.UTC) }
	return svc
}

func TestGetPayroll_DefaultsToCurrentMonth(t *testing.T) {
	repo := &fakePayrollRepo{}
	svc := newService(repo)

	resp, err := svc.GetPayroll(context.Background(), payroll.PayrollFilter{})
	require.NoError(t, err)

	assert.Equal(t, "2024-03", resp.Month)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), repo.from)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), repo.to)
	assert.NotNil(t, resp.Employees)
	assert.Equal(t, "0.00", resp.TotalNetPay)
}

func TestGetPayroll_Totals(t *testing.T) {
	local := "Palermo"
	repo := &fakePayrollRepo{summaries: []payroll.AttendanceSummary{
		{EmployeeID: "e1", FirstName: "Ana", LastName: "Gómez", BaseSalary: decimal.RequireFromString("300000"), LateMinutes: 30, UnjustifiedAbsences: 1},
		{EmployeeID: "e2", FirstName: "Luis", BaseSalary: decimal.RequireFromString("150000"), EarlyDepartureMinutes: 12},
	}}
	svc := newService(repo)

	resp, err := svc.GetPayroll(context.Background(), payroll.PayrollFilter{Month: "2024-02", Local: &local})
	require.NoError(t, err)

	assert.Equal(t, "2024-02", resp.Month)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), repo.to)
	assert.Equal(t, "Palermo", *repo.local)

	require.Len(t, resp.Employees, 2)
	assert.Equal(t, "Ana Gómez", resp.Employees[0].EmployeeName)
	assert.Equal(t, "300.00", resp.Employees[0].LateDeduction)
	assert.Equal(t, "10000.00", resp.Employees[0].AbsenceDeduction)
	assert.Equal(t, "289700.00", resp.Employees[0].NetPay)
	assert.Equal(t, "60.00", resp.Employees[1].EarlyDeduction)

	assert.Equal(t, "450000.00", resp.TotalBaseSalary)
	assert.Equal(t, "10360.00", resp.TotalDeductions)
	assert.Equal(t, "439640.00", resp.TotalNetPay)
}

func TestGetPayroll_Errors(t *testing.T) {
	svc := newService(&fakePayrollRepo{})
	_, err := svc.GetPayroll(context.Background(), payroll.PayrollFilter{Month: "March"})
	assert.Error(t, err)

	svc = newService(&fakePayrollRepo{err: errors.New("db down")})
	_, err = svc.GetPayroll(context.Background(), payroll.PayrollFilter{})
	assert.Error(t, err)
}
