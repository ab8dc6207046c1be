// Package weektime models weekly day ranges and clock-time ranges used by
// doctor agendas. Day ranges may wrap across the week boundary (e.g. Friday
// through Monday); clock times are compared at minute granularity.
package weektime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WeekDaysInRange enumerates the week days from from to to inclusive,
// Sunday=0 through Saturday=6. When from > to the range wraps the week
// boundary: [from..6] followed by [0..to].
func WeekDaysInRange(from, to int) []int {
	var days []int
	if from <= to {
		for d := from; d <= to; d++ {
			days = append(days, d)
		}
		return days
	}
	for d := from; d <= 6; d++ {
		days = append(days, d)
	}
	for d := 0; d <= to; d++ {
		days = append(days, d)
	}
	return days
}

// IsWeekDayInRange reports whether day falls inside the (possibly wrapped)
// range without materializing the day list.
func IsWeekDayInRange(day, from, to int) bool {
	if from <= to {
		return day >= from && day <= to
	}
	return day >= from || day <= to
}

// TimeToMinutes parses a clock time in "HH:MM" or "HH:MM:SS" form into
// minutes since midnight. Seconds are ignored; comparisons happen at minute
// granularity.
func TimeToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock time %q out of range", clock)
	}
	return hours*60 + minutes, nil
}

// IsTimeInRange reports whether clock falls inside [from, to) — the start
// boundary is inclusive and the end boundary exclusive, so an appointment
// starting exactly at to is not in range.
func IsTimeInRange(clock, from, to string) (bool, error) {
	t, err := TimeToMinutes(clock)
	if err != nil {
		return false, err
	}
	lo, err := TimeToMinutes(from)
	if err != nil {
		return false, err
	}
	hi, err := TimeToMinutes(to)
	if err != nil {
		return false, err
	}
	return t >= lo && t < hi, nil
}

// RangesOverlap reports whether two clock-time ranges overlap. Both
// boundaries are treated as open: ranges that merely touch (one ends exactly
// when the other starts) do not overlap.
func RangesOverlap(aFrom, aTo, bFrom, bTo string) (bool, error) {
	aLo, err := TimeToMinutes(aFrom)
	if err != nil {
		return false, err
	}
	aHi, err := TimeToMinutes(aTo)
	if err != nil {
		return false, err
	}
	bLo, err := TimeToMinutes(bFrom)
	if err != nil {
		return false, err
	}
	bHi, err := TimeToMinutes(bTo)
	if err != nil {
		return false, err
	}
	return aLo < bHi && aHi > bLo, nil
}

// NormalizeTime canonicalizes "HH:MM" to "HH:MM:SS". Times already carrying
// seconds are returned unchanged.
func NormalizeTime(clock string) string {
	if len(clock) == 5 {
		return clock + ":00"
	}
	return clock
}

// ClockString formats the wall-clock portion of an instant as "HH:MM:SS".
func ClockString(t time.Time) string {
	return t.Format("15:04:05")
}
