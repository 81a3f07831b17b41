package attendance

import (
	"testing"

	"github.com/gastrodesk/backoffice-api/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAttendanceRequest_Validate(t *testing.T) {
	valid := CreateAttendanceRequest{
		EmployeeID: "123e4567-e89b-12d3-a456-426614174000",
		Date:       "2024-03-01",
		AttendanceInput: AttendanceInput{
			CheckIn:  strPtr("08:15"),
			CheckOut: strPtr("16:00"),
		},
	}
	require.NoError(t, valid.Validate())

	bad := CreateAttendanceRequest{
		EmployeeID: "",
		Date:       "01/03/2024",
		AttendanceInput: AttendanceInput{
			CheckIn:         strPtr("8:15"),
			ExpectedCheckIn: "25:00",
		},
	}
	err := bad.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "check_in")
	assert.Contains(t, fields, "expected_check_in")
	assert.NotContains(t, fields, "check_out")
}

func TestCreateAttendanceRequest_EmptyClocksAllowed(t *testing.T) {
	req := CreateAttendanceRequest{
		EmployeeID:      "123e4567-e89b-12d3-a456-426614174000",
		Date:            "2024-03-01",
		AttendanceInput: AttendanceInput{CheckIn: strPtr(""), IsAbsent: true},
	}
	assert.NoError(t, req.Validate())
}

func TestAttendanceFilter_Validate(t *testing.T) {
	assert.NoError(t, (&AttendanceFilter{}).Validate())
	assert.NoError(t, (&AttendanceFilter{Date: strPtr("2024-03-01"), Status: strPtr("late")}).Validate())
	assert.Error(t, (&AttendanceFilter{Date: strPtr("yesterday")}).Validate())
	assert.Error(t, (&AttendanceFilter{Status: strPtr("Tarde")}).Validate())
	assert.Error(t, (&AttendanceFilter{EmployeeID: strPtr("42")}).Validate())
}
