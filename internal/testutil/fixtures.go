package testutil

import (
	"fmt"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/google/uuid"
)

// NewWorkSession builds a work record for tests, computing the stored
// duration from the given times. Panics on malformed fixture input.
func NewWorkSession(date, start, end string) domain.SessionRecord {
	dur, err := domain.DurationBetween(start, end)
	if err != nil {
		panic(fmt.Sprintf("bad work session fixture %s %s-%s: %v", date, start, end, err))
	}
	return domain.SessionRecord{
		ID:            uuid.New().String(),
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		DurationHours: dur,
		Type:          domain.SessionWork,
	}
}

// NewDayOff builds a day-off marker record for tests.
func NewDayOff(date string) domain.SessionRecord {
	return domain.SessionRecord{
		ID:   uuid.New().String(),
		Date: date,
		Type: domain.SessionDayOff,
	}
}

// NewLegacySession builds a pre-type-column record: no explicit type,
// which readers must treat as work.
func NewLegacySession(date, start, end string) domain.SessionRecord {
	s := NewWorkSession(date, start, end)
	s.Type = ""
	return s
}
