package testutil

import (
	"context"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/store"
)

// FailingAppendStore wraps a SessionStore and injects an error on every
// Append call. Reads and the other mutations pass through. This enables
// tests of callers that must keep their own state consistent when the
// session log cannot be written.
type FailingAppendStore struct {
	store.SessionStore
	Err error
}

func (s *FailingAppendStore) Append(ctx context.Context, rec *domain.SessionRecord) error {
	return s.Err
}
