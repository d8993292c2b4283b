package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/google/uuid"
)

// columns is the canonical on-disk column order. Files written before the
// day-off feature lack the trailing type column and are read as all-work.
var columns = []string{"id", "date", "start_time", "end_time", "duration_hours", "type"}

// CSVStore keeps the session log in a user-owned flat CSV file. Every
// mutation re-reads the file, applies its change in memory, and commits the
// full result through an atomic rename; a mutex serializes mutations.
type CSVStore struct {
	path string
	mu   sync.Mutex
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Path returns the location of the underlying CSV file.
func (s *CSVStore) Path() string {
	return s.path
}

// Init creates the log file with its header when it does not exist yet.
// Idempotent: an existing file is left untouched.
func (s *CSVStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	return s.writeAll(nil)
}

func (s *CSVStore) List(ctx context.Context) ([]domain.SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

func (s *CSVStore) Append(ctx context.Context, rec *domain.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return err
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.IsDayOff() {
		rec.StartTime, rec.EndTime = "", ""
		rec.DurationHours = 0
	} else {
		dur, err := domain.DurationBetween(rec.StartTime, rec.EndTime)
		if err != nil {
			return err
		}
		rec.DurationHours = dur
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	return s.writeAll(append(records, *rec))
}

func (s *CSVStore) Update(ctx context.Context, id string, changes SessionChanges) (domain.SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return domain.SessionRecord{}, err
	}

	idx := -1
	for i, r := range records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.SessionRecord{}, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}

	rec := records[idx]
	rec.Date = domain.StrFromPtrWithDefault(rec.Date, changes.Date)
	rec.StartTime = domain.StrFromPtrWithDefault(rec.StartTime, changes.StartTime)
	rec.EndTime = domain.StrFromPtrWithDefault(rec.EndTime, changes.EndTime)
	if changes.Type != nil {
		rec.Type = *changes.Type
	}

	if rec.IsDayOff() {
		rec.StartTime, rec.EndTime = "", ""
		rec.DurationHours = 0
	} else if changes.StartTime != nil || changes.EndTime != nil || changes.Type != nil {
		dur, err := domain.DurationBetween(rec.StartTime, rec.EndTime)
		if err != nil {
			return domain.SessionRecord{}, err
		}
		rec.DurationHours = dur
	}
	if err := rec.Validate(); err != nil {
		return domain.SessionRecord{}, err
	}

	records[idx] = rec
	if err := s.writeAll(records); err != nil {
		return domain.SessionRecord{}, err
	}
	return rec, nil
}

func (s *CSVStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return s.writeAll(kept)
}

func (s *CSVStore) MergeFrom(ctx context.Context, path string) (MergeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	imported, err := readFile(path)
	if err != nil {
		return MergeResult{}, fmt.Errorf("reading import file: %w", err)
	}

	current, err := s.readAll()
	if err != nil {
		return MergeResult{}, err
	}

	existing := make(map[string]bool, len(current))
	for _, r := range current {
		existing[r.ID] = true
	}

	result := MergeResult{SourcePath: path, Total: len(current)}
	merged := current
	for _, r := range imported {
		if existing[r.ID] {
			continue
		}
		existing[r.ID] = true
		merged = append(merged, r)
		result.NewCount++
	}
	if result.NewCount == 0 {
		return result, nil
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Date != merged[j].Date {
			return merged[i].Date < merged[j].Date
		}
		return merged[i].StartTime < merged[j].StartTime
	})

	result.Total = len(merged)
	return result, s.writeAll(merged)
}

func (s *CSVStore) readAll() ([]domain.SessionRecord, error) {
	return readFile(s.path)
}

// readFile parses a session CSV by header name, so legacy files without the
// type column load cleanly. Rows missing an id or date are skipped, and an
// unreadable duration falls back to 0, mirroring how the log has always
// tolerated hand-edited files.
func readFile(path string) ([]domain.SessionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("session log %s does not exist", path)
		}
		return nil, fmt.Errorf("opening session log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing session log %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[name] = i
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []domain.SessionRecord
	for _, row := range rows[1:] {
		id, date := field(row, "id"), field(row, "date")
		if id == "" || date == "" {
			continue
		}
		dur, _ := strconv.ParseFloat(field(row, "duration_hours"), 64)
		records = append(records, domain.SessionRecord{
			ID:            id,
			Date:          date,
			StartTime:     field(row, "start_time"),
			EndTime:       field(row, "end_time"),
			DurationHours: dur,
			Type:          domain.SessionType(field(row, "type")),
		})
	}
	return records, nil
}

// writeAll commits the full record set as one atomic replacement: write to
// a temp file in the same directory, then rename over the log.
func (s *CSVStore) writeAll(records []domain.SessionRecord) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".sessions-*.csv")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(columns); err != nil {
		tmp.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.ID,
			r.Date,
			r.StartTime,
			r.EndTime,
			strconv.FormatFloat(r.DurationHours, 'f', -1, 64),
			string(r.Type),
		}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("writing session %s: %w", r.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flushing session log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing session log: %w", err)
	}
	return nil
}
