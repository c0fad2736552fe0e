// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe settings store with validated updates and reload propagation.

package control

import (
	"fmt"
	"slices"
	"sync"

	"go.uber.org/multierr"

	"github.com/momentics/hioload-containers/api"
	"github.com/momentics/hioload-containers/logging"
)

// Settings is the runtime configuration of the demo programs and the
// logging threshold. LogLevel is one of debug, info, warn, error or fatal.
// RingSize is the number of ring slots, so capacity is RingSize-1. Fill is
// how many values the demos push.
type Settings struct {
	LogLevel    string
	Development bool
	RingSize    int
	Fill        int
}

// DefaultSettings mirrors the logging default (debug) and a small ring.
func DefaultSettings() Settings {
	return Settings{
		LogLevel: "debug",
		RingSize: 5,
		Fill:     10,
	}
}

// Validate reports every invalid field at once.
func (s Settings) Validate() error {
	var err error
	if _, perr := logging.ParseLevel(s.LogLevel); perr != nil {
		err = multierr.Append(err, fmt.Errorf("log level %q: %w", s.LogLevel, api.ErrInvalidArgument))
	}
	if s.RingSize < 2 {
		err = multierr.Append(err, fmt.Errorf("ring size %d: %w", s.RingSize, api.ErrInvalidCapacity))
	}
	if s.Fill < 0 {
		err = multierr.Append(err, fmt.Errorf("fill %d: %w", s.Fill, api.ErrInvalidArgument))
	}
	return err
}

// Store holds the current Settings and notifies listeners on change.
type Store struct {
	mu        sync.RWMutex
	settings  Settings
	listeners []func(Settings)
}

// NewStore initializes a store with the given settings.
func NewStore(initial Settings) (*Store, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	return &Store{settings: initial}, nil
}

// Snapshot returns a copy of the current settings.
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update applies fn to a copy of the settings, validates the result and, if
// valid, stores it and dispatches reload listeners synchronously.
func (s *Store) Update(fn func(*Settings)) error {
	s.mu.Lock()
	next := s.settings
	fn(&next)
	if err := next.Validate(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.settings = next
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	return nil
}

// OnReload registers a listener hook called on settings changes.
func (s *Store) OnReload(fn func(Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// BindLogging applies the current log settings and keeps the process logger
// in sync with later updates.
func BindLogging(s *Store) {
	apply := func(cfg Settings) {
		// Validate already accepted the level.
		lvl, _ := logging.ParseLevel(cfg.LogLevel)
		logging.SetLevel(lvl)
	}
	logging.Init(s.Snapshot().Development)
	apply(s.Snapshot())
	s.OnReload(apply)
}
