package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/payroll"
	"github.com/gastrodesk/backoffice-api/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// GetMonthlySummaries implements payroll.PayrollRepository.
// Employees without a base salary are priced at zero.
func (r *payrollRepository) GetMonthlySummaries(ctx context.Context, from, to time.Time, local *string) ([]payroll.AttendanceSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			e.id, e.first_name, e.last_name, e.local, e.position,
			COALESCE(e.base_salary, 0) AS base_salary,
			COUNT(a.id) AS days_recorded,
			COALESCE(SUM(a.late_minutes), 0) AS late_minutes,
			COALESCE(SUM(a.early_departure_minutes), 0) AS early_departure_minutes,
			COALESCE(SUM(CASE WHEN a.is_absent AND NOT a.is_justified THEN 1 ELSE 0 END), 0) AS unjustified_absences,
			COALESCE(SUM(CASE WHEN a.is_absent AND a.is_justified THEN 1 ELSE 0 END), 0) AS justified_absences
		FROM employees e
		LEFT JOIN attendances a
			ON a.employee_id = e.id AND a.date >= $1 AND a.date < $2
		WHERE e.status = 'active'
		  AND ($3::text IS NULL OR e.local = $3::text)
		GROUP BY e.id
		ORDER BY e.first_name, e.last_name
	`

	rows, err := q.Query(ctx, query, from, to, local)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance summary: %w", err)
	}
	defer rows.Close()

	var summaries []payroll.AttendanceSummary
	for rows.Next() {
		var s payroll.AttendanceSummary
		if err := rows.Scan(
			&s.EmployeeID, &s.FirstName, &s.LastName, &s.Local, &s.Position,
			&s.BaseSalary, &s.DaysRecorded, &s.LateMinutes, &s.EarlyDepartureMinutes,
			&s.UnjustifiedAbsences, &s.JustifiedAbsences,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
