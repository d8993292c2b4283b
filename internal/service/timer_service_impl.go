package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/store"
	"github.com/alexanderramin/tempus/internal/timer"
)

type timerService struct {
	clock    *timer.Timer
	sessions store.SessionStore
}

func NewTimerService(clock *timer.Timer, sessions store.SessionStore) TimerService {
	return &timerService{clock: clock, sessions: sessions}
}

func (s *timerService) Start(ctx context.Context) (time.Time, error) {
	return s.clock.Start()
}

func (s *timerService) Stop(ctx context.Context) (domain.SessionRecord, error) {
	rec, err := s.clock.Finish()
	if err != nil {
		return domain.SessionRecord{}, err
	}
	// Append first, clear second: a failed append keeps the timer running so
	// the stop can be retried without losing the tracked interval.
	if err := s.sessions.Append(ctx, &rec); err != nil {
		return domain.SessionRecord{}, err
	}
	if err := s.clock.Discard(); err != nil {
		return domain.SessionRecord{}, err
	}
	return rec, nil
}

func (s *timerService) Discard(ctx context.Context) error {
	return s.clock.Discard()
}

func (s *timerService) Status(ctx context.Context) (TimerStatus, error) {
	elapsed, err := s.clock.Elapsed()
	if errors.Is(err, timer.ErrNotRunning) {
		return TimerStatus{}, nil
	}
	if err != nil {
		return TimerStatus{}, err
	}
	started, _, err := s.clock.StartedAt()
	if err != nil {
		return TimerStatus{}, err
	}
	return TimerStatus{Running: true, StartedAt: started, Elapsed: elapsed}, nil
}
