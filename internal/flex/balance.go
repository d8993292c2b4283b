package flex

import (
	"math"
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
)

// PeriodTotals aggregates one inclusive date range: total worked hours,
// the signed flex balance against the daily target, and the number of
// records skipped because their date could not be parsed.
type PeriodTotals struct {
	TotalHours     float64
	Balance        float64
	SkippedRecords int
}

// WeekSummary couples a month-attributed ISO week with its aggregated
// totals.
type WeekSummary struct {
	WeekBucket
	TotalHours float64
	Balance    float64
}

// GroupByDate buckets records by their calendar date string, preserving
// per-date record order.
func GroupByDate(records []domain.SessionRecord) map[string][]domain.SessionRecord {
	grouped := make(map[string][]domain.SessionRecord)
	for _, r := range records {
		grouped[r.Date] = append(grouped[r.Date], r)
	}
	return grouped
}

// DailyBalance computes the signed balance of one date's records against
// the daily target. A day-off record zeroes the day unconditionally, even
// alongside work records and regardless of how many day-off duplicates
// exist. A date with no work records is a full-day deficit of -target.
func DailyBalance(recordsForDate []domain.SessionRecord, target float64) (float64, error) {
	if err := validateTarget(target); err != nil {
		return 0, err
	}
	for _, r := range recordsForDate {
		if r.IsDayOff() {
			return 0, nil
		}
	}
	return workedHours(recordsForDate) - target, nil
}

// PeriodBalance aggregates all records whose date falls inside the
// inclusive [start, end] range. Only dates that appear in the filtered set
// contribute; a date with no records is skipped, not charged a deficit.
// Records with unparseable dates are skipped and counted rather than
// aborting the whole aggregation.
func PeriodBalance(records []domain.SessionRecord, start, end time.Time, target float64) (PeriodTotals, error) {
	if err := validateTarget(target); err != nil {
		return PeriodTotals{}, err
	}
	start, end = dayFloor(start), dayFloor(end)
	if start.After(end) {
		return PeriodTotals{}, ErrInvalidRange
	}

	var totals PeriodTotals
	inRange := make([]domain.SessionRecord, 0, len(records))
	for _, r := range records {
		day, err := r.Day()
		if err != nil {
			totals.SkippedRecords++
			continue
		}
		if day.Before(start) || day.After(end) {
			continue
		}
		inRange = append(inRange, r)
	}

	for _, dayRecords := range GroupByDate(inRange) {
		dayBalance, err := DailyBalance(dayRecords, target)
		if err != nil {
			return PeriodTotals{}, err
		}
		totals.TotalHours += workedHours(dayRecords)
		totals.Balance += dayBalance
	}
	return totals, nil
}

// MonthlySummary partitions the month into its ISO weeks and aggregates
// each week's range, in ascending week order. Records with unparseable
// dates are counted once for the whole month, not once per week, and
// returned alongside the summaries.
func MonthlySummary(records []domain.SessionRecord, year int, month time.Month, target float64) ([]WeekSummary, int, error) {
	if err := validateTarget(target); err != nil {
		return nil, 0, err
	}

	var skipped int
	parseable := make([]domain.SessionRecord, 0, len(records))
	for _, r := range records {
		if _, err := r.Day(); err != nil {
			skipped++
			continue
		}
		parseable = append(parseable, r)
	}

	buckets := WeeksOverlappingMonth(year, month)
	summaries := make([]WeekSummary, 0, len(buckets))
	for _, b := range buckets {
		totals, err := PeriodBalance(parseable, b.StartDate, b.EndDate, target)
		if err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, WeekSummary{
			WeekBucket: b,
			TotalHours: totals.TotalHours,
			Balance:    totals.Balance,
		})
	}
	return summaries, skipped, nil
}

// workedHours sums work-record durations; day-off rows carry no weight.
func workedHours(records []domain.SessionRecord) float64 {
	var sum float64
	for _, r := range records {
		if r.EffectiveType() == domain.SessionWork {
			sum += r.DurationHours
		}
	}
	return sum
}

func validateTarget(target float64) error {
	if math.IsNaN(target) || math.IsInf(target, 0) || target <= 0 {
		return ErrInvalidTarget
	}
	return nil
}

// dayFloor truncates t to local midnight so range bounds compare at day
// granularity.
func dayFloor(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
