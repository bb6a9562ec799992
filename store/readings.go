package store

import (
	"strings"
	"sync"
	"time"

	"locator-go/locate"
)

// DeviceReading is one reported scan from a mobile device. ID is the device
// identifier and doubles as the record key for upserts; the log may hold
// several records with the same ID at once.
type DeviceReading struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Signals []locate.Signal `json:"signals"`
	Date    string          `json:"date"`
	LevelID string          `json:"levelId"`
}

// Time parses the reading's ISO-8601 timestamp.
func (r DeviceReading) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, r.Date)
}

// Validate checks that the required fields are present: id, signals, date and
// levelId. Signals is a presence check only; an empty but present list
// passes. Name is optional.
func (r DeviceReading) Validate() error {
	var missing []string
	if r.ID == "" {
		missing = append(missing, "id")
	}
	if r.Signals == nil {
		missing = append(missing, "signals")
	}
	if r.Date == "" {
		missing = append(missing, "date")
	}
	if r.LevelID == "" {
		missing = append(missing, "levelId")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// ValidationError reports the required reading fields missing from a
// submission. It never accompanies a mutation.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "device reading missing required fields: " + strings.Join(e.Missing, ", ")
}

// UpsertResult reports whether an upsert created a new record or replaced an
// existing one.
type UpsertResult int

const (
	Created UpsertResult = iota
	Updated
)

func (u UpsertResult) String() string {
	if u == Updated {
		return "updated"
	}
	return "created"
}

// Store is the in-memory device reading log, kept in insertion order.
// Writes are serialized by the mutex; reads copy the backing slice under the
// read lock so a concurrent write can never tear an iteration.
type Store struct {
	mu       sync.RWMutex
	readings []DeviceReading
}

// NewStore returns an empty reading log.
func NewStore() *Store {
	return &Store{}
}

// Append validates the reading and appends it unconditionally, even when a
// record with the same id already exists. On validation failure nothing is
// mutated.
func (s *Store) Append(r DeviceReading) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.readings = append(s.readings, r)
	s.mu.Unlock()
	return nil
}

// Upsert replaces the first record in insertion order whose id matches,
// keeping its position in the log; any later duplicate with the same id is
// left untouched. A reading with an unseen id is appended. The match ignores
// levelId.
func (s *Store) Upsert(r DeviceReading) (UpsertResult, error) {
	if err := r.Validate(); err != nil {
		return Created, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.readings {
		if s.readings[i].ID == r.ID {
			s.readings[i] = r
			return Updated, nil
		}
	}
	s.readings = append(s.readings, r)
	return Created, nil
}

// All returns a snapshot of the log in insertion order.
func (s *Store) All() []DeviceReading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]DeviceReading, len(s.readings))
	copy(out, s.readings)
	return out
}

// FilterByLevel returns a snapshot of the records whose levelId equals the
// given id exactly.
func (s *Store) FilterByLevel(levelID string) []DeviceReading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []DeviceReading{}
	for _, r := range s.readings {
		if r.LevelID == levelID {
			out = append(out, r)
		}
	}
	return out
}

// Len reports the number of records in the log.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.readings)
}
