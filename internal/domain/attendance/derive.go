package attendance

import "time"

// LateToleranceMinutes is the grace period before a check-in counts as late.
const LateToleranceMinutes = 10

const clockLayout = "15:04"

// ParseClock converts "HH:MM" into minutes since midnight. Empty or malformed
// values report ok=false and are treated as missing by the derivation rules.
func ParseClock(clock string) (minutes int, ok bool) {
	if clock == "" {
		return 0, false
	}
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// LateMinutes returns how many minutes after the expected time the employee
// checked in. Delays within the tolerance count as zero. Both times sit on the
// same calendar day, so shifts that end at midnight are not wrapped.
func LateMinutes(checkIn, expectedCheckIn string, isAbsent bool) int {
	if isAbsent {
		return 0
	}
	actual, ok := ParseClock(checkIn)
	if !ok {
		return 0
	}
	expected, ok := ParseClock(expectedCheckIn)
	if !ok {
		return 0
	}
	diff := actual - expected
	if diff > LateToleranceMinutes {
		return diff
	}
	return 0
}

// EarlyDepartureMinutes returns how many minutes before the expected time the
// employee checked out.
func EarlyDepartureMinutes(checkOut, expectedCheckOut string, isAbsent bool) int {
	if isAbsent {
		return 0
	}
	actual, ok := ParseClock(checkOut)
	if !ok {
		return 0
	}
	expected, ok := ParseClock(expectedCheckOut)
	if !ok {
		return 0
	}
	diff := expected - actual
	if diff > 0 {
		return diff
	}
	return 0
}

// Normalize enforces the absent invariant and recomputes derived minutes.
// Client supplied minute values are always overwritten.
func (a *Attendance) Normalize() {
	if a.IsAbsent {
		a.CheckIn = nil
		a.CheckOut = nil
		a.LateMinutes = 0
		a.EarlyDepartureMinutes = 0
		return
	}
	a.LateMinutes = LateMinutes(deref(a.CheckIn), a.ExpectedCheckIn, false)
	a.EarlyDepartureMinutes = EarlyDepartureMinutes(deref(a.CheckOut), a.ExpectedCheckOut, false)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
