package employee

import (
	"context"
	"testing"

	"github.com/gastrodesk/backoffice-api/internal/domain/employee"
	"github.com/gastrodesk/backoffice-api/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	anaID  = "11111111-1111-1111-1111-111111111111"
	luisID = "22222222-2222-2222-2222-222222222222"
)

type fakeEmployeeRepo struct {
	employees  []employee.Employee
	lastFilter employee.EmployeeFilter
	getCalls   int
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	f.getCalls++
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	f.lastFilter = filter
	return f.employees, nil
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	var active []employee.Employee
	for _, e := range f.employees {
		if e.IsActive() {
			active = append(active, e)
		}
	}
	return active, nil
}

func newRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: anaID, FirstName: "Ana", LastName: "Gómez", WorkShift: employee.ShiftMorning, Status: employee.StatusActive},
		{ID: luisID, FirstName: "Luis", LastName: "Paz", WorkShift: employee.WorkShift("weekend"), Status: employee.StatusActive},
	}}
}

func TestExpectedHours(t *testing.T) {
	svc := NewEmployeeService(newRepo())

	resp, err := svc.ExpectedHours(context.Background(), anaID)
	require.NoError(t, err)
	assert.Equal(t, anaID, resp.EmployeeID)
	assert.Equal(t, "08:00", resp.ExpectedCheckIn)
	assert.Equal(t, "16:00", resp.ExpectedCheckOut)
	assert.Equal(t, "Mañana", resp.ShiftLabel)

	resp, err = svc.ExpectedHours(context.Background(), luisID)
	require.NoError(t, err)
	assert.Empty(t, resp.ExpectedCheckIn)
	assert.Empty(t, resp.ExpectedCheckOut)

	_, err = svc.ExpectedHours(context.Background(), "33333333-3333-3333-3333-333333333333")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLookupByID_MalformedID(t *testing.T) {
	ids := []string{"missing", "e1", "1", "11111111-1111-1111-1111-11111111111", "'; DROP TABLE employees; --", ""}

	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			repo := newRepo()
			svc := NewEmployeeService(repo)

			_, err := svc.GetEmployee(context.Background(), id)
			assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

			_, err = svc.ExpectedHours(context.Background(), id)
			assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

			assert.Zero(t, repo.getCalls)
		})
	}
}

func TestGetEmployee(t *testing.T) {
	svc := NewEmployeeService(newRepo())

	resp, err := svc.GetEmployee(context.Background(), luisID)
	require.NoError(t, err)
	assert.Equal(t, "Luis Paz", resp.FullName)
}

func TestListEmployees(t *testing.T) {
	repo := newRepo()
	svc := NewEmployeeService(repo)

	local := "Palermo"
	list, err := svc.ListEmployees(context.Background(), employee.EmployeeFilter{Local: &local})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana Gómez", list[0].FullName)
	assert.Equal(t, &local, repo.lastFilter.Local)

	bad := "retired"
	_, err = svc.ListEmployees(context.Background(), employee.EmployeeFilter{Status: &bad})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
