package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// FormatHours renders decimal hours with two decimals, e.g. "8.50".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}

// FormatFlexBalance renders a signed balance as hours and minutes,
// "+2h 30m" or "−0h 45m". Deficits use U+2212 MINUS SIGN so the sign
// lines up with "+" in tables.
func FormatFlexBalance(balance float64) string {
	sign := "+"
	if balance < 0 {
		sign = "−"
	}
	abs := math.Abs(balance)
	hours := int(abs)
	minutes := int(math.Round((abs - float64(hours)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return fmt.Sprintf("%s%dh %dm", sign, hours, minutes)
}

// Balance renders a signed balance with surplus/deficit coloring applied.
func Balance(balance float64) string {
	return BalanceStyle(balance).Render(FormatFlexBalance(balance))
}

// Time12Hour converts an HH:MM or HH:MM:SS time of day to a 12-hour
// display form like "3:04 PM". Blank stays blank (day-off rows).
func Time12Hour(clock string) string {
	if clock == "" {
		return ""
	}
	parts := strings.SplitN(clock, ":", 3)
	if len(parts) < 2 {
		return clock
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return clock
	}
	meridiem := "AM"
	if h >= 12 {
		meridiem = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%s %s", h, parts[1], meridiem)
}

// FormatElapsed renders a duration as a ticking HH:MM:SS readout.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
