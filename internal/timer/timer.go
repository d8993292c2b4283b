package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
)

var (
	// ErrAlreadyRunning indicates a start instant is already persisted.
	ErrAlreadyRunning = errors.New("a timer is already running")

	// ErrNotRunning indicates there is no persisted start instant.
	ErrNotRunning = errors.New("no timer is running")

	// ErrTooShort indicates the stopped interval rounds to less than a
	// minute and cannot form a valid session.
	ErrTooShort = errors.New("session is shorter than a minute")
)

// state is the persisted shape of timer.json.
type state struct {
	StartedAt time.Time `json:"started_at"`
}

// Timer is the start/stop elapsed-time clock. The start instant lives in a
// small state file so a running timer survives process exits; stopping
// turns the interval into a finished session record for the log.
type Timer struct {
	path string
	now  func() time.Time
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock substitutes the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) { t.now = now }
}

func New(path string, opts ...Option) *Timer {
	t := &Timer{path: path, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start persists the current instant as the running timer's start.
func (t *Timer) Start() (time.Time, error) {
	if _, ok, err := t.StartedAt(); err != nil {
		return time.Time{}, err
	} else if ok {
		return time.Time{}, ErrAlreadyRunning
	}

	started := t.now()
	if err := os.MkdirAll(filepath.Dir(t.path), 0o700); err != nil {
		return time.Time{}, fmt.Errorf("creating data directory: %w", err)
	}
	data, err := json.Marshal(state{StartedAt: started})
	if err != nil {
		return time.Time{}, fmt.Errorf("serializing timer state: %w", err)
	}
	if err := os.WriteFile(t.path, data, 0o600); err != nil {
		return time.Time{}, fmt.Errorf("writing timer state: %w", err)
	}
	return started, nil
}

// StartedAt reads the persisted start instant, if any.
func (t *Timer) StartedAt() (time.Time, bool, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("reading timer state: %w", err)
	}
	var s state
	if err := json.Unmarshal(data, &s); err != nil || s.StartedAt.IsZero() {
		// A corrupt state file is treated as no running timer.
		return time.Time{}, false, nil
	}
	return s.StartedAt, true, nil
}

// Elapsed returns how long the timer has been running.
func (t *Timer) Elapsed() (time.Duration, error) {
	started, ok, err := t.StartedAt()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotRunning
	}
	return t.now().Sub(started), nil
}

// Finish turns the running interval into a finished work session attributed
// to the start instant's calendar date. An interval crossing midnight is
// clipped to 23:59 of the start date, since sessions never span days.
//
// Finish does not clear the timer state. Callers clear it with Discard once
// the record is safely stored, so a failed store keeps the interval and the
// stop can be retried.
func (t *Timer) Finish() (domain.SessionRecord, error) {
	started, ok, err := t.StartedAt()
	if err != nil {
		return domain.SessionRecord{}, err
	}
	if !ok {
		return domain.SessionRecord{}, ErrNotRunning
	}

	ended := t.now()
	if ended.Year() != started.Year() || ended.YearDay() != started.YearDay() {
		y, m, d := started.Date()
		ended = time.Date(y, m, d, 23, 59, 0, 0, started.Location())
	}

	rec := domain.SessionRecord{
		Date:      started.Format(domain.DateLayout),
		StartTime: started.Format(domain.ClockLayout),
		EndTime:   ended.Format(domain.ClockLayout),
		Type:      domain.SessionWork,
	}
	if rec.EndTime == rec.StartTime {
		return domain.SessionRecord{}, ErrTooShort
	}
	return rec, nil
}

// Discard clears a running timer without logging anything.
func (t *Timer) Discard() error {
	_, ok, err := t.StartedAt()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotRunning
	}
	if err := os.Remove(t.path); err != nil {
		return fmt.Errorf("clearing timer state: %w", err)
	}
	return nil
}
