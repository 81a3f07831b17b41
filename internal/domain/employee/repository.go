package employee

import "context"

// EmployeeRepository is read-only; employees are maintained by another system.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	GetActive(ctx context.Context) ([]Employee, error)
}
