package employee

type WorkShift string

const (
	ShiftMorning   WorkShift = "morning"
	ShiftAfternoon WorkShift = "afternoon"
	ShiftNight     WorkShift = "night"
	ShiftFullTime  WorkShift = "full_time"
	ShiftPartTime  WorkShift = "part_time"
)

type shiftHours struct {
	checkIn  string
	checkOut string
	label    string
}

var shiftTable = map[WorkShift]shiftHours{
	ShiftMorning:   {"08:00", "16:00", "Mañana"},
	ShiftAfternoon: {"16:00", "00:00", "Tarde"},
	ShiftNight:     {"00:00", "08:00", "Noche"},
	ShiftFullTime:  {"09:00", "18:00", "Tiempo Completo"},
	ShiftPartTime:  {"18:00", "22:00", "Tiempo Parcial"},
}

// Shifts lists every known shift in display order.
var Shifts = []WorkShift{ShiftMorning, ShiftAfternoon, ShiftNight, ShiftFullTime, ShiftPartTime}

// ExpectedHours returns the scheduled check-in and check-out for a shift.
// Unknown shifts yield two empty strings.
func ExpectedHours(shift WorkShift) (checkIn string, checkOut string) {
	h, ok := shiftTable[shift]
	if !ok {
		return "", ""
	}
	return h.checkIn, h.checkOut
}

// Label returns the Spanish display name, or the raw value for unknown shifts.
func (s WorkShift) Label() string {
	if h, ok := shiftTable[s]; ok {
		return h.label
	}
	return string(s)
}

func (s WorkShift) IsValid() bool {
	_, ok := shiftTable[s]
	return ok
}
