package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the wire format for calendar dates in the session log.
	DateLayout = "2006-01-02"
	// ClockLayout is the wire format for times of day in the session log.
	ClockLayout = "15:04"
)

type SessionType string

const (
	SessionWork   SessionType = "work"
	SessionDayOff SessionType = "day_off"
)

// SessionRecord is a single row of the session log: a logged work interval
// or a day-off marker for one calendar date. Dates are local wall-clock
// dates, never instants; work intervals never span midnight.
type SessionRecord struct {
	ID            string
	Date          string // YYYY-MM-DD
	StartTime     string // HH:MM, empty for day-off records
	EndTime       string // HH:MM, empty for day-off records
	DurationHours float64
	Type          SessionType
}

// EffectiveType resolves the record type, treating legacy rows with no
// explicit type as work.
func (s SessionRecord) EffectiveType() SessionType {
	if s.Type == "" {
		return SessionWork
	}
	return s.Type
}

// IsDayOff reports whether the record marks its date as a day off.
func (s SessionRecord) IsDayOff() bool {
	return s.EffectiveType() == SessionDayOff
}

// Day parses the record date into a local midnight time.Time.
func (s SessionRecord) Day() (time.Time, error) {
	return ParseDate(s.Date)
}

// Validate checks the structural invariants of a record.
func (s SessionRecord) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("session record has no id")
	}
	if _, err := ParseDate(s.Date); err != nil {
		return fmt.Errorf("session %s: invalid date %q", s.ID, s.Date)
	}
	if s.IsDayOff() {
		return nil
	}
	if _, err := DurationBetween(s.StartTime, s.EndTime); err != nil {
		return fmt.Errorf("session %s: %w", s.ID, err)
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD date string into a local midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// DurationBetween computes the decimal-hour duration between two times of
// day given as HH:MM or HH:MM:SS, rounded to 2 decimal places. The end time
// must be strictly after the start time.
func DurationBetween(start, end string) (float64, error) {
	startSec, err := clockSeconds(start)
	if err != nil {
		return 0, err
	}
	endSec, err := clockSeconds(end)
	if err != nil {
		return 0, err
	}
	if endSec <= startSec {
		return 0, fmt.Errorf("end time %s is not after start time %s", end, start)
	}
	return RoundHours(float64(endSec-startSec) / 3600), nil
}

// RoundHours rounds a decimal-hours value to 2 decimal places, the
// resolution every stored duration carries.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// clockSeconds converts HH:MM or HH:MM:SS into seconds since midnight.
func clockSeconds(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time of day %q", clock)
	}
	units := []int{3600, 60, 1}
	var total int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid time of day %q", clock)
		}
		total += v * units[i]
	}
	if total >= 24*3600 {
		return 0, fmt.Errorf("time of day %q out of range", clock)
	}
	return total, nil
}
