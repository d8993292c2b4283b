package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/tempus/internal/testutil"
	"github.com/alexanderramin/tempus/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerService_StartStatusStop(t *testing.T) {
	ctx := context.Background()
	st := newTestSessionStore(t)

	now := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.Local)
	clock := timer.New(filepath.Join(t.TempDir(), "timer.json"),
		timer.WithClock(func() time.Time { return now }))
	svc := NewTimerService(clock, st)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Running)

	started, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.True(t, now.Equal(started))

	now = now.Add(90 * time.Minute)
	status, err = svc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Running)
	assert.Equal(t, 90*time.Minute, status.Elapsed)

	rec, err := svc.Stop(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", rec.Date)
	assert.Equal(t, "09:00", rec.StartTime)
	assert.Equal(t, "10:30", rec.EndTime)
	assert.NotEmpty(t, rec.ID, "stop logs the session")

	records, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.InDelta(t, 1.5, records[0].DurationHours, 1e-9)
}

func TestTimerService_StopKeepsTimerWhenAppendFails(t *testing.T) {
	ctx := context.Background()
	st := newTestSessionStore(t)

	now := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.Local)
	clock := timer.New(filepath.Join(t.TempDir(), "timer.json"),
		timer.WithClock(func() time.Time { return now }))

	broken := NewTimerService(clock, &testutil.FailingAppendStore{
		SessionStore: st,
		Err:          errors.New("disk full"),
	})

	_, err := broken.Start(ctx)
	require.NoError(t, err)
	now = now.Add(8 * time.Hour)

	_, err = broken.Stop(ctx)
	require.ErrorContains(t, err, "disk full")

	// A failed stop must keep the interval so the stop can be retried.
	status, err := broken.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Running, "timer state survives a failed append")
	assert.Equal(t, 8*time.Hour, status.Elapsed)

	// Retrying against a healthy store logs the full interval once.
	rec, err := NewTimerService(clock, st).Stop(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 8, rec.DurationHours, 1e-9)

	records, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	status, err = broken.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Running, "successful stop clears the timer")
}

func TestTimerService_StopWithoutStart(t *testing.T) {
	clock := timer.New(filepath.Join(t.TempDir(), "timer.json"))
	svc := NewTimerService(clock, newTestSessionStore(t))

	_, err := svc.Stop(context.Background())
	assert.ErrorIs(t, err, timer.ErrNotRunning)
}

func TestTimerService_Discard(t *testing.T) {
	ctx := context.Background()
	st := newTestSessionStore(t)
	clock := timer.New(filepath.Join(t.TempDir(), "timer.json"))
	svc := NewTimerService(clock, st)

	_, err := svc.Start(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Discard(ctx))

	records, err := st.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records, "discard logs nothing")
}
