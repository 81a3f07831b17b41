package attendance

// Status is the display classification of an attendance record.
type Status int

const (
	StatusPresent Status = iota
	StatusLate
	StatusHoliday
	StatusAbsent
	StatusJustified
)

var statusLabels = map[Status]string{
	StatusPresent:   "Presente",
	StatusLate:      "Tarde",
	StatusHoliday:   "Feriado",
	StatusAbsent:    "Ausente",
	StatusJustified: "Justificado",
}

var statusCodes = map[Status]string{
	StatusPresent:   "present",
	StatusLate:      "late",
	StatusHoliday:   "holiday",
	StatusAbsent:    "absent",
	StatusJustified: "justified",
}

// Classify picks the first matching status in precedence order:
// justified absence, absence, holiday, late, present.
func Classify(isAbsent, isJustified, isHoliday bool, lateMinutes int) Status {
	switch {
	case isAbsent && isJustified:
		return StatusJustified
	case isAbsent:
		return StatusAbsent
	case isHoliday:
		return StatusHoliday
	case lateMinutes > LateToleranceMinutes:
		return StatusLate
	default:
		return StatusPresent
	}
}

// Label is the Spanish text shown to users.
func (s Status) Label() string {
	return statusLabels[s]
}

// Code is the stable machine-readable identifier.
func (s Status) Code() string {
	return statusCodes[s]
}

func (s Status) String() string {
	return s.Label()
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.Code()), nil
}

// ParseStatus resolves a status code.
func ParseStatus(code string) (Status, bool) {
	for s, c := range statusCodes {
		if c == code {
			return s, true
		}
	}
	return 0, false
}
