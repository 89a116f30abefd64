// ABOUTME: Journal store owning the ordered entry collection and its persistence.
// ABOUTME: Loads once from a named KV key and overwrites the key after every successful add.
package journal

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/2389-research/brightmind/internal/models"
	"github.com/2389-research/brightmind/internal/storage"
)

// DefaultKey is the storage key holding the serialized collection.
const DefaultKey = "brightmind_journal"

// ErrPersist wraps failures to write the collection back to storage.
// The in-memory collection is still updated when this is returned.
var ErrPersist = errors.New("failed to persist journal")

// Store holds journal entries newest-first.
type Store struct {
	mu      sync.RWMutex
	kv      storage.KV
	key     string
	entries []*models.JournalEntry
	lastID  int64
	now     func() time.Time
	warn    io.Writer
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for new entries and streaks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithWarnings sends load problems to w. By default they are discarded.
func WithWarnings(w io.Writer) Option {
	return func(s *Store) {
		s.warn = w
	}
}

// Open creates a store over kv and loads the collection under key.
// An empty key selects DefaultKey.
func Open(kv storage.KV, key string, opts ...Option) (*Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("key-value store is required")
	}
	if key == "" {
		key = DefaultKey
	}
	s := &Store{
		kv:   kv,
		key:  key,
		now:  time.Now,
		warn: io.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s, nil
}

// load reads the persisted collection. Missing or corrupt data leaves the store empty.
func (s *Store) load() {
	s.entries = nil
	s.lastID = 0

	data, ok, err := s.kv.Get(s.key)
	if err != nil {
		_, _ = fmt.Fprintf(s.warn, "Warning: failed to read journal, starting empty: %v\n", err)
		return
	}
	if !ok {
		return
	}

	entries, err := Decode(data)
	if err != nil {
		_, _ = fmt.Fprintf(s.warn, "Warning: ignoring unreadable journal data: %v\n", err)
		return
	}
	s.entries = entries
	for _, e := range entries {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
}

// Add saves a new entry at the head of the collection and persists the whole collection.
// Blank text is a no-op and returns a nil entry. An empty mood is stored as unspecified.
// If persisting fails the entry is kept in memory and an error wrapping ErrPersist is returned.
func (s *Store) Add(text string, mood models.Mood) (*models.JournalEntry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if mood == "" {
		mood = models.MoodUnspecified
	}
	if mood != models.MoodUnspecified && !mood.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidMood, mood)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().Truncate(time.Millisecond)
	entry := models.NewJournalEntry(s.nextID(now), text, mood, now)

	entries := make([]*models.JournalEntry, 0, len(s.entries)+1)
	entries = append(entries, entry)
	entries = append(entries, s.entries...)
	s.entries = entries

	if err := s.persist(); err != nil {
		return entry, err
	}
	return entry, nil
}

// nextID derives an id from the creation time, bumped past the last issued id so ids
// stay strictly increasing even within one millisecond.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) persist() error {
	data, err := Encode(s.entries)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := s.kv.Set(s.key, data); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// List returns the entries newest-first. The slice is a copy; entries must not be mutated.
func (s *Store) List() []*models.JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*models.JournalEntry(nil), s.entries...)
}

// Count returns the number of entries.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Recent returns at most limit entries, newest-first. A non-positive limit returns none.
func (s *Store) Recent(limit int) []*models.JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		return nil
	}
	if limit > len(s.entries) {
		limit = len(s.entries)
	}
	return append([]*models.JournalEntry(nil), s.entries[:limit]...)
}

// MoodBreakdown counts entries per key. Every key is present in the result, and
// entries whose mood is not among keys are not counted.
func (s *Store) MoodBreakdown(keys []models.Mood) map[models.Mood]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[models.Mood]int, len(keys))
	for _, k := range keys {
		counts[k] = 0
	}
	for _, e := range s.entries {
		if _, ok := counts[e.Mood]; ok {
			counts[e.Mood]++
		}
	}
	return counts
}

// Streak returns the current journaling streak as of the store clock.
func (s *Store) Streak() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeStreak(s.entries, s.now())
}

// Key returns the storage key backing this store.
func (s *Store) Key() string {
	return s.key
}
