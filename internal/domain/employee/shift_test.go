package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedHours(t *testing.T) {
	cases := []struct {
		shift   WorkShift
		wantIn  string
		wantOut string
	}{
		{ShiftMorning, "08:00", "16:00"},
		{ShiftAfternoon, "16:00", "00:00"},
		{ShiftNight, "00:00", "08:00"},
		{ShiftFullTime, "09:00", "18:00"},
		{ShiftPartTime, "18:00", "22:00"},
		{WorkShift("weekend"), "", ""},
		{WorkShift(""), "", ""},
	}

	for _, tc := range cases {
		t.Run(string(tc.shift), func(t *testing.T) {
			in, out := ExpectedHours(tc.shift)
			assert.Equal(t, tc.wantIn, in)
			assert.Equal(t, tc.wantOut, out)
		})
	}
}

func TestWorkShift_Label(t *testing.T) {
	assert.Equal(t, "Mañana", ShiftMorning.Label())
	assert.Equal(t, "Tiempo Completo", ShiftFullTime.Label())
	assert.Equal(t, "weekend", WorkShift("weekend").Label())
}

func TestShiftsCoverTable(t *testing.T) {
	assert.Len(t, Shifts, len(shiftTable))
	for _, s := range Shifts {
		assert.True(t, s.IsValid(), s)
	}
}

func TestEmployee_FullName(t *testing.T) {
	assert.Equal(t, "Ana Gómez", Employee{FirstName: "Ana", LastName: "Gómez"}.FullName())
	assert.Equal(t, "Ana", Employee{FirstName: "Ana"}.FullName())
	assert.Equal(t, "Gómez", Employee{LastName: "Gómez"}.FullName())
}

func TestNewExpectedHoursResponse(t *testing.T) {
	resp := NewExpectedHoursResponse(ShiftNight)
	assert.Equal(t, "night", resp.WorkShift)
	assert.Equal(t, "Noche", resp.ShiftLabel)
	assert.Equal(t, "00:00", resp.ExpectedCheckIn)
	assert.Equal(t, "08:00", resp.ExpectedCheckOut)
}
