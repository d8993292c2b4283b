package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationBetween(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    float64
		wantErr bool
	}{
		{name: "full work day", start: "09:00", end: "17:30", want: 8.5},
		{name: "single minute", start: "09:00", end: "09:01", want: 0.02},
		{name: "with seconds", start: "09:00:00", end: "09:45:00", want: 0.75},
		{name: "rounds to two decimals", start: "09:00", end: "09:10", want: 0.17},
		{name: "end equals start", start: "09:00", end: "09:00", wantErr: true},
		{name: "end before start", start: "17:00", end: "09:00", wantErr: true},
		{name: "garbage start", start: "morning", end: "17:00", wantErr: true},
		{name: "out of range hour", start: "09:00", end: "24:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DurationBetween(tt.start, tt.end)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestSessionRecord_EffectiveType(t *testing.T) {
	legacy := SessionRecord{ID: "a", Date: "2024-03-04"}
	assert.Equal(t, SessionWork, legacy.EffectiveType(), "legacy rows with no type are work")
	assert.False(t, legacy.IsDayOff())

	off := SessionRecord{ID: "b", Date: "2024-03-05", Type: SessionDayOff}
	assert.True(t, off.IsDayOff())
}

func TestSessionRecord_Validate(t *testing.T) {
	valid := SessionRecord{ID: "a", Date: "2024-03-04", StartTime: "09:00", EndTime: "17:30", DurationHours: 8.5, Type: SessionWork}
	assert.NoError(t, valid.Validate())

	dayOff := SessionRecord{ID: "b", Date: "2024-03-05", Type: SessionDayOff}
	assert.NoError(t, dayOff.Validate(), "day-off records carry no times")

	tests := []struct {
		name string
		rec  SessionRecord
	}{
		{name: "missing id", rec: SessionRecord{Date: "2024-03-04", StartTime: "09:00", EndTime: "10:00"}},
		{name: "bad date", rec: SessionRecord{ID: "c", Date: "04/03/2024", StartTime: "09:00", EndTime: "10:00"}},
		{name: "inverted interval", rec: SessionRecord{ID: "d", Date: "2024-03-04", StartTime: "17:00", EndTime: "09:00"}},
		{name: "work without times", rec: SessionRecord{ID: "e", Date: "2024-03-04"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.rec.Validate())
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())

	_, err = ParseDate("2023-02-29")
	assert.Error(t, err, "non-leap February 29 must not parse")
}
