package flex

import (
	"fmt"
	"time"
)

// WeekBucket identifies one ISO-8601 week by number and its Monday–Sunday
// date boundaries.
type WeekBucket struct {
	WeekNumber int
	StartDate  time.Time
	EndDate    time.Time
}

// maxMonthWeekWalk caps the week walk over a single month. No month touches
// more than 6 ISO weeks, so hitting the cap means wrap-around went wrong;
// the walk stops rather than loops.
const maxMonthWeekWalk = 10

// ISOWeek returns the ISO-8601 week number of d. The week containing the
// date's Thursday determines both the week-numbering year and the number;
// week 1 is the week containing the year's first Thursday.
func ISOWeek(d time.Time) int {
	_, week := d.ISOWeek()
	return week
}

// ISOWeekYear returns the ISO week-numbering year d belongs to, which
// differs from the calendar year near year boundaries (Dec 31 2018 is in
// week 1 of 2019).
func ISOWeekYear(d time.Time) int {
	year, _ := d.ISOWeek()
	return year
}

// ISOWeekStart returns the Monday of the given ISO week of the given ISO
// week-numbering year. It is the inverse of ISOWeek composed with
// ISOWeekYear: ISOWeek(ISOWeekStart(y, w)) == w for every valid pair.
func ISOWeekStart(year, week int) time.Time {
	// January 4 always falls inside week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.Local)
	mondayWeek1 := jan4.AddDate(0, 0, 1-isoWeekday(jan4))
	return mondayWeek1.AddDate(0, 0, (week-1)*7)
}

// isoWeekday maps Go's Sunday-based weekday to ISO Monday=1..Sunday=7.
func isoWeekday(d time.Time) int {
	if wd := int(d.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

// isoWeeksInYear returns 52 or 53. December 28 is always inside the last
// week of its ISO year.
func isoWeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.Local).ISOWeek()
	return week
}

// WeeksOverlappingMonth enumerates, in chronological order, the ISO weeks
// attributed to the given month by the Thursday rule: a week belongs to the
// month containing its Thursday, the majority-day rule implicit in ISO
// numbering. A week starting in December whose Thursday falls in January
// therefore belongs to January of the next year.
//
// The walk starts at the week containing the month's first day and advances
// week numbers forward, wrapping 52/53 into week 1 of the next year, until a
// week starts past the month's last day.
func WeeksOverlappingMonth(year int, month time.Month) []WeekBucket {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, -1)

	// ISOWeek already attributes the first day to the correct week year,
	// e.g. Jan 1 may sit in week 52/53 of the previous year.
	walkYear, walkWeek := monthStart.ISOWeek()

	var weeks []WeekBucket
	for i := 0; i < maxMonthWeekWalk; i++ {
		start := ISOWeekStart(walkYear, walkWeek)
		if start.After(monthEnd) {
			break
		}
		thursday := start.AddDate(0, 0, 3)
		if thursday.Month() == month && thursday.Year() == year {
			weeks = append(weeks, WeekBucket{
				WeekNumber: walkWeek,
				StartDate:  start,
				EndDate:    start.AddDate(0, 0, 6),
			})
		}
		walkWeek++
		if walkWeek > isoWeeksInYear(walkYear) {
			walkWeek = 1
			walkYear++
		}
	}
	return weeks
}

// FormatDateRange renders a human label for an inclusive date range:
// "Mar 4–10" within one month, "Jan 29 – Feb 4" across months. Display
// only, no business meaning.
func FormatDateRange(start, end time.Time) string {
	if start.Month() == end.Month() {
		return fmt.Sprintf("%s %d–%d", start.Format("Jan"), start.Day(), end.Day())
	}
	return fmt.Sprintf("%s %d – %s %d", start.Format("Jan"), start.Day(), end.Format("Jan"), end.Day())
}
