package attendance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name      string
		absent    bool
		justified bool
		holiday   bool
		late      int
		want      string
	}{
		{"justified absence", true, true, false, 0, "Justificado"},
		{"justified absence on holiday", true, true, true, 30, "Justificado"},
		{"unjustified absence on holiday", true, false, true, 0, "Ausente"},
		{"holiday beats late", false, false, true, 30, "Feriado"},
		{"late", false, false, false, 15, "Tarde"},
		{"late at tolerance is present", false, false, false, 10, "Presente"},
		{"justified without absence is not justified", false, true, false, 0, "Presente"},
		{"justified without absence can still be late", false, true, false, 20, "Tarde"},
		{"present", false, false, false, 0, "Presente"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.absent, tc.justified, tc.holiday, tc.late).Label())
		})
	}
}

func TestStatus_CodesRoundTrip(t *testing.T) {
	for _, s := range []Status{StatusPresent, StatusLate, StatusHoliday, StatusAbsent, StatusJustified} {
		parsed, ok := ParseStatus(s.Code())
		require.True(t, ok, s.Code())
		assert.Equal(t, s, parsed)
	}

	_, ok := ParseStatus("vacation")
	assert.False(t, ok)
}

func TestStatus_MarshalsAsCode(t *testing.T) {
	out, err := json.Marshal(map[string]Status{"status": StatusAbsent})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"absent"}`, string(out))
}

func TestAttendance_StatusAndName(t *testing.T) {
	first, last := "Ana", "Gómez"
	a := Attendance{
		EmployeeFirstName: &first,
		EmployeeLastName:  &last,
		LateMinutes:       25,
	}
	assert.Equal(t, StatusLate, a.Status())
	assert.Equal(t, "Ana Gómez", a.EmployeeName())
	assert.Equal(t, "", Attendance{}.EmployeeName())
}
