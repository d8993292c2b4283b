package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/store"
)

type sessionService struct {
	sessions store.SessionStore
}

func NewSessionService(sessions store.SessionStore) SessionService {
	return &sessionService{sessions: sessions}
}

func (s *sessionService) Log(ctx context.Context, date, start, end string) (domain.SessionRecord, error) {
	rec := domain.SessionRecord{
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Type:      domain.SessionWork,
	}
	if err := s.sessions.Append(ctx, &rec); err != nil {
		return domain.SessionRecord{}, err
	}
	return rec, nil
}

func (s *sessionService) LogDayOff(ctx context.Context, date string) (domain.SessionRecord, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return domain.SessionRecord{}, err
	}

	records, err := s.sessions.List(ctx)
	if err != nil {
		return domain.SessionRecord{}, err
	}
	for _, r := range records {
		if r.Date == date && r.IsDayOff() {
			return domain.SessionRecord{}, fmt.Errorf("%s is already marked as a day off", date)
		}
	}

	rec := domain.SessionRecord{Date: date, Type: domain.SessionDayOff}
	if err := s.sessions.Append(ctx, &rec); err != nil {
		return domain.SessionRecord{}, err
	}
	return rec, nil
}

func (s *sessionService) List(ctx context.Context) ([]domain.SessionRecord, error) {
	return s.sessions.List(ctx)
}

func (s *sessionService) Edit(ctx context.Context, id string, changes store.SessionChanges) (domain.SessionRecord, error) {
	return s.sessions.Update(ctx, id, changes)
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

func (s *sessionService) Import(ctx context.Context, path string) (store.MergeResult, error) {
	return s.sessions.MergeFrom(ctx, path)
}
