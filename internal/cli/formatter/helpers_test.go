package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatFlexBalance(t *testing.T) {
	tests := []struct {
		balance float64
		want    string
	}{
		{2.5, "+2h 30m"},
		{-0.75, "−0h 45m"},
		{0, "+0h 0m"},
		{8.5, "+8h 30m"},
		{-9, "−9h 0m"},
		{0.999, "+1h 0m"}, // minute rounding never shows "0h 60m"
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFlexBalance(tt.balance), "balance %v", tt.balance)
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "8.50", FormatHours(8.5))
	assert.Equal(t, "0.00", FormatHours(0))
}

func TestTime12Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:05", "9:05 AM"},
		{"15:04", "3:04 PM"},
		{"00:30", "12:30 AM"},
		{"12:00", "12:00 PM"},
		{"15:04:59", "3:04 PM"},
		{"", ""},
		{"junk", "junk"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Time12Hour(tt.in), "input %q", tt.in)
	}
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00:07", FormatElapsed(7*time.Second))
	assert.Equal(t, "01:30:00", FormatElapsed(90*time.Minute))
	assert.Equal(t, "27:00:00", FormatElapsed(27*time.Hour), "no wrap at 24h")
	assert.Equal(t, "00:00:00", FormatElapsed(-time.Second))
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"DATE", "HOURS"},
		[][]string{
			{"2024-03-04", "8.50"},
			{"2024-03-05", "10.00"},
		},
		1,
	)

	lines := splitLines(out)
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[2], " 8.50", "numeric column is right-aligned")
	assert.Contains(t, lines[3], "10.00")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func splitLines(s string) []string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
