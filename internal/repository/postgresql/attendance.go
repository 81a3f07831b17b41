package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/attendance"
	"github.com/gastrodesk/backoffice-api/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const attendanceSelect = `
	SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out,
		   a.expected_check_in, a.expected_check_out, a.late_minutes, a.early_departure_minutes,
		   a.is_holiday, a.is_absent, a.is_justified, a.notes, a.created_by,
		   a.created_at, a.updated_at,
		   e.first_name, e.last_name
	FROM attendances a
	LEFT JOIN employees e ON e.id = a.employee_id
`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.ExpectedCheckIn, &att.ExpectedCheckOut, &att.LateMinutes, &att.EarlyDepartureMinutes,
		&att.IsHoliday, &att.IsAbsent, &att.IsJustified, &att.Notes, &att.CreatedBy,
		&att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeFirstName, &att.EmployeeLastName,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, check_in, check_out, expected_check_in, expected_check_out,
			late_minutes, early_departure_minutes, is_holiday, is_absent, is_justified,
			notes, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.CheckIn,
		newAttendance.CheckOut,
		newAttendance.ExpectedCheckIn,
		newAttendance.ExpectedCheckOut,
		newAttendance.LateMinutes,
		newAttendance.EarlyDepartureMinutes,
		newAttendance.IsHoliday,
		newAttendance.IsAbsent,
		newAttendance.IsJustified,
		newAttendance.Notes,
		newAttendance.CreatedBy,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAttendanceExists
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	att, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance %s: %w", id, err)
	}
	return att, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time, employeeID *string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := attendanceSelect + `
		WHERE a.date = $1 AND ($2::uuid IS NULL OR a.employee_id = $2::uuid)
		ORDER BY e.first_name NULLS LAST, e.last_name NULLS LAST, a.created_at
	`

	rows, err := q.Query(ctx, query, date, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	attendances := make([]attendance.Attendance, 0)
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attendances, nil
}
