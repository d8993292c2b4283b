package service

import (
	"context"
	"time"

	"github.com/alexanderramin/tempus/internal/config"
	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/flex"
	"github.com/alexanderramin/tempus/internal/store"
)

type reportService struct {
	sessions store.SessionStore
	cfg      *config.Config
}

func NewReportService(sessions store.SessionStore, cfg *config.Config) ReportService {
	return &reportService{sessions: sessions, cfg: cfg}
}

func (s *reportService) Period(ctx context.Context, start, end time.Time) (PeriodReport, error) {
	records, err := s.sessions.List(ctx)
	if err != nil {
		return PeriodReport{}, err
	}

	target := s.cfg.DailyTarget()
	totals, err := flex.PeriodBalance(records, start, end, target)
	if err != nil {
		return PeriodReport{}, err
	}

	report := PeriodReport{Start: start, End: end, Target: target, Totals: totals}
	startStr, endStr := start.Format(domain.DateLayout), end.Format(domain.DateLayout)
	for _, r := range records {
		if r.EffectiveType() == domain.SessionWork && r.Date >= startStr && r.Date <= endStr {
			report.Sessions++
		}
	}
	return report, nil
}

func (s *reportService) Monthly(ctx context.Context, year int, month time.Month) (MonthlyReport, error) {
	records, err := s.sessions.List(ctx)
	if err != nil {
		return MonthlyReport{}, err
	}

	target := s.cfg.DailyTarget()
	weeks, skipped, err := flex.MonthlySummary(records, year, month, target)
	if err != nil {
		return MonthlyReport{}, err
	}
	return MonthlyReport{
		Year:           year,
		Month:          month,
		Target:         target,
		Weeks:          weeks,
		SkippedRecords: skipped,
	}, nil
}
