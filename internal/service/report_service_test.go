package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alexanderramin/tempus/internal/config"
	"github.com/alexanderramin/tempus/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReportConfig(t *testing.T, target float64) *config.Config {
	t.Helper()
	t.Setenv("TEMPUS_TARGET", "")
	cfg := &config.Config{Dir: t.TempDir()}
	require.NoError(t, cfg.SetDailyTarget(target))
	return cfg
}

func TestReportService_Period(t *testing.T) {
	ctx := context.Background()
	st := newTestSessionStore(t)
	for _, rec := range []struct{ date, start, end string }{
		{"2024-03-04", "09:00", "17:30"},
	} {
		r := testutil.NewWorkSession(rec.date, rec.start, rec.end)
		require.NoError(t, st.Append(ctx, &r))
	}
	off := testutil.NewDayOff("2024-03-05")
	require.NoError(t, st.Append(ctx, &off))

	svc := NewReportService(st, newTestReportConfig(t, 8))

	report, err := svc.Period(ctx,
		time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local),
		time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, 8.0, report.Target)
	assert.Equal(t, 1, report.Sessions, "day-off rows are not sessions")
	assert.InDelta(t, 8.5, report.Totals.TotalHours, 1e-9)
	assert.InDelta(t, 0.5, report.Totals.Balance, 1e-9)
}

func TestReportService_PeriodInvalidRange(t *testing.T) {
	svc := NewReportService(newTestSessionStore(t), newTestReportConfig(t, 8))
	_, err := svc.Period(context.Background(),
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local),
		time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local))
	assert.Error(t, err)
}

func TestReportService_Monthly(t *testing.T) {
	ctx := context.Background()
	st := newTestSessionStore(t)
	rec := testutil.NewWorkSession("2024-02-06", "09:00", "19:00")
	require.NoError(t, st.Append(ctx, &rec))

	svc := NewReportService(st, newTestReportConfig(t, 8))

	report, err := svc.Monthly(ctx, 2024, time.February)
	require.NoError(t, err)
	assert.Equal(t, time.February, report.Month)
	require.Len(t, report.Weeks, 5)
	assert.InDelta(t, 10, report.Weeks[1].TotalHours, 1e-9)
	assert.InDelta(t, 2, report.Weeks[1].Balance, 1e-9)
	assert.Zero(t, report.SkippedRecords)
}

func TestReportService_MonthlySurfacesMalformedRecords(t *testing.T) {
	ctx := context.Background()
	st := newTestSessionStore(t)

	// A hand-edited log can carry dates the parser rejects.
	raw := "id,date,start_time,end_time,duration_hours,type\n" +
		"edited-by-hand,06/02/2024,09:00,17:00,8,work\n"
	require.NoError(t, os.WriteFile(st.Path(), []byte(raw), 0o600))

	rec := testutil.NewWorkSession("2024-02-06", "09:00", "19:00")
	require.NoError(t, st.Append(ctx, &rec))

	svc := NewReportService(st, newTestReportConfig(t, 8))

	report, err := svc.Monthly(ctx, 2024, time.February)
	require.NoError(t, err)
	assert.Equal(t, 1, report.SkippedRecords)
	assert.InDelta(t, 10, report.Weeks[1].TotalHours, 1e-9)
}
