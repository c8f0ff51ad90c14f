// Package settings is the operator configuration the service menu edits:
// a closed set of keys, each with an enumerated set of values.
package settings

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"
)

// SaveTimeout bounds a background save started by Update.
const SaveTimeout = 10 * time.Second

var ErrUnknownKey = errors.New("unknown setting")

type InvalidValueError struct {
	Key   Key
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for setting %s", e.Value, e.Key)
}

// Store persists the raw key/value map.
type Store interface {
	Load(ctx context.Context) (map[string]string, error)
	Save(ctx context.Context, values map[string]string) error
}

type Reader interface {
	Get(key Key) string
}

type Writer interface {
	Set(ctx context.Context, key Key, value string) error
	Update(key Key, value string, done func(error)) error
}

type ReadWriter interface {
	Reader
	Writer
}

var _ ReadWriter = (*Settings)(nil)

// Settings is the loaded configuration. Values are always valid: whatever was
// invalid or missing on load has been replaced with its default.
type Settings struct {
	mu     sync.RWMutex
	values map[string]string

	// saveMu is held from snapshot to Save so the store sees writes in order
	// and the last save always carries the newest values.
	saveMu      sync.Mutex
	store       Store
	saveTimeout time.Duration
}

// Load reads the store and fills in defaults. Keys it does not know about are
// kept and written back on the next Set. If the store cannot be read, the
// returned Settings holds defaults and is still usable.
func Load(ctx context.Context, store Store) (*Settings, error) {
	s := &Settings{store: store, values: Defaults(), saveTimeout: SaveTimeout}

	stored, err := store.Load(ctx)
	if err != nil {
		return s, fmt.Errorf("load settings: %w", err)
	}

	for k, v := range stored {
		d, known := Lookup(Key(k))
		if known && !d.Valid(v) {
			continue
		}
		s.values[k] = v
	}
	return s, nil
}

// Get returns the value of key, or "" for a key that does not exist.
func (s *Settings) Get(key Key) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[string(key)]
}

// Set validates value and saves the whole map. The new value stays in effect
// even if saving fails.
func (s *Settings) Set(ctx context.Context, key Key, value string) error {
	if err := s.apply(key, value); err != nil {
		return err
	}
	return s.persist(ctx)
}

// Update is Set for callers that cannot wait on the store. It validates and
// applies value before returning, then saves in the background with
// SaveTimeout. done, when not nil, is called from that goroutine with the
// save result.
func (s *Settings) Update(key Key, value string, done func(error)) error {
	if err := s.apply(key, value); err != nil {
		return err
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
		defer cancel()
		err := s.persist(ctx)
		if done != nil {
			done(err)
		}
	}()
	return nil
}

func (s *Settings) apply(key Key, value string) error {
	d, ok := Lookup(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if !d.Valid(value) {
		return &InvalidValueError{Key: key, Value: value}
	}

	s.mu.Lock()
	s.values[string(key)] = value
	s.mu.Unlock()
	return nil
}

func (s *Settings) persist(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if err := s.store.Save(ctx, s.All()); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// All returns a copy of every stored value, unknown keys included.
func (s *Settings) All() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}

// Static is a fixed Reader, handy where nothing is ever persisted.
type Static map[Key]string

func (m Static) Get(key Key) string {
	if v, ok := m[key]; ok {
		return v
	}
	if d, ok := Lookup(key); ok {
		return d.Default
	}
	return ""
}
