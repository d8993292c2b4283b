package store

import (
	"context"
	"errors"

	"github.com/alexanderramin/tempus/internal/domain"
)

// ErrNotFound indicates the requested session id does not exist in the log.
var ErrNotFound = errors.New("session not found")

// SessionChanges carries the fields of an edit; nil means "keep".
type SessionChanges struct {
	Date      *string
	StartTime *string
	EndTime   *string
	Type      *domain.SessionType
}

// MergeResult summarizes a merge-import of another session file.
type MergeResult struct {
	SourcePath string
	NewCount   int
	Total      int
}

// SessionStore is the session record collaborator: an ordered collection of
// records with whole-file read-modify-write mutations. Implementations must
// serialize mutations so concurrent operations never interleave a
// read-modify-write cycle.
type SessionStore interface {
	// List returns all records in stored order.
	List(ctx context.Context) ([]domain.SessionRecord, error)
	// Append adds a record, assigning an id when blank and computing the
	// stored duration for work records.
	Append(ctx context.Context, rec *domain.SessionRecord) error
	// Update applies changes to the record with the given id, recomputing
	// the duration whenever a time or date field moved.
	Update(ctx context.Context, id string, changes SessionChanges) (domain.SessionRecord, error)
	// Delete removes the record with the given id.
	Delete(ctx context.Context, id string) error
	// MergeFrom imports records from another session file, deduplicating
	// by id and re-sorting the log by date then start time.
	MergeFrom(ctx context.Context, path string) (MergeResult, error)
}
