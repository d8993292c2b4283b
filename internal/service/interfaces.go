package service

import (
	"context"
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/flex"
	"github.com/alexanderramin/tempus/internal/store"
)

type SessionService interface {
	// Log records a manually entered work session.
	Log(ctx context.Context, date, start, end string) (domain.SessionRecord, error)
	// LogDayOff marks a date as a day off; refuses a date already marked.
	LogDayOff(ctx context.Context, date string) (domain.SessionRecord, error)
	List(ctx context.Context) ([]domain.SessionRecord, error)
	Edit(ctx context.Context, id string, changes store.SessionChanges) (domain.SessionRecord, error)
	Delete(ctx context.Context, id string) error
	// Import merges records from another session CSV into the log.
	Import(ctx context.Context, path string) (store.MergeResult, error)
}

// TimerStatus describes the running timer, if any.
type TimerStatus struct {
	Running   bool
	StartedAt time.Time
	Elapsed   time.Duration
}

type TimerService interface {
	Start(ctx context.Context) (time.Time, error)
	// Stop finishes the running timer and appends the resulting session.
	Stop(ctx context.Context) (domain.SessionRecord, error)
	Discard(ctx context.Context) error
	Status(ctx context.Context) (TimerStatus, error)
}

// PeriodReport is one reporting window with its aggregated totals.
type PeriodReport struct {
	Start    time.Time
	End      time.Time
	Target   float64
	Sessions int // work records inside the window
	Totals   flex.PeriodTotals
}

// MonthlyReport is the per-ISO-week breakdown of one calendar month.
type MonthlyReport struct {
	Year           int
	Month          time.Month
	Target         float64
	Weeks          []flex.WeekSummary
	SkippedRecords int // records with unparseable dates, counted once
}

type ReportService interface {
	Period(ctx context.Context, start, end time.Time) (PeriodReport, error)
	Monthly(ctx context.Context, year int, month time.Month) (MonthlyReport, error)
}
