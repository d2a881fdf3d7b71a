package syncstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pijat_jogja/internal/notify"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// ErrEmpty is returned by a loader when the gateway answered but had nothing to publish.
// The store then publishes the default value with a warning instead of an error.
var ErrEmpty = errors.New("no data available")

// DefaultLoadTimeout bounds a single load when Config.Timeout is zero
const DefaultLoadTimeout = 10 * time.Second

// Loader fetches the current value from the gateway
type Loader[T any] func(ctx context.Context) (T, error)

// Snapshot is what views read from a store
type Snapshot[T any] struct {
	Value    T         `json:"data"`
	Loading  bool      `json:"loading"`
	Error    string    `json:"error,omitempty"`
	Warning  string    `json:"warning,omitempty"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Config describes one synchronized record
type Config[T any] struct {
	Name         string
	Load         Loader[T]
	Default      func() T
	EmptyWarning string
	// Schedule is a cron spec such as "@every 30s"; empty disables the timer.
	Schedule string
	// Topic is reloaded once per signal when Notifier is set.
	Topic    notify.Topic
	Notifier notify.Notifier
	// Reloaded is told the topic again once the signal's reload has been published.
	Reloaded notify.Notifier
	Timeout  time.Duration
}

// Store caches a gateway-backed record and keeps it fresh by timer and signal.
// The published value is never absent: before the first load and after any
// failed load it is the default value.
type Store[T any] struct {
	cfg Config[T]

	mu      sync.RWMutex
	snap    Snapshot[T]
	stopped bool

	cron      *cron.Cron
	cancelSub func()
	wg        sync.WaitGroup
}

// New creates a store publishing the default value in loading state
func New[T any](cfg Config[T]) *Store[T] {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultLoadTimeout
	}
	return &Store[T]{
		cfg:  cfg,
		snap: Snapshot[T]{Value: cfg.Default(), Loading: true},
	}
}

// Init performs the first load, then starts the timer and the signal subscription
func (s *Store[T]) Init(ctx context.Context) error {
	s.Load(ctx)

	if s.cfg.Schedule != "" {
		c := cron.New()
		if _, err := c.AddFunc(s.cfg.Schedule, func() { s.Load(context.Background()) }); err != nil {
			return fmt.Errorf("invalid %s refresh schedule %q: %w", s.cfg.Name, s.cfg.Schedule, err)
		}
		c.Start()
		s.cron = c
	}

	if s.cfg.Notifier != nil {
		signals, cancel := s.cfg.Notifier.Subscribe(s.cfg.Topic)
		s.cancelSub = cancel
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for sig := range signals {
				log.Debug().Str("store", s.cfg.Name).Str("topic", string(sig.Topic)).Msg("Reloading on signal")
				s.Load(context.Background())
				s.announce(sig.Topic)
			}
		}()
	}

	log.Info().Str("store", s.cfg.Name).Str("schedule", s.cfg.Schedule).Str("topic", string(s.cfg.Topic)).Msg("Store initialized")
	return nil
}

// Load fetches the record and replaces the published snapshot.
// Results arriving after Teardown are discarded.
func (s *Store[T]) Load(ctx context.Context) Snapshot[T] {
	if s.isStopped() {
		return s.Snapshot()
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	value, err := s.cfg.Load(ctx)
	next := Snapshot[T]{Value: value, LoadedAt: time.Now()}
	switch {
	case err == nil:
	case errors.Is(err, ErrEmpty):
		log.Warn().Str("store", s.cfg.Name).Msg(s.cfg.EmptyWarning)
		next.Value = s.cfg.Default()
		next.Warning = s.cfg.EmptyWarning
	default:
		log.Error().Err(err).Str("store", s.cfg.Name).Msg("Failed to load, using defaults")
		next.Value = s.cfg.Default()
		next.Error = err.Error()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return s.snap
	}
	s.snap = next
	return next
}

// Refresh is an explicit reload
func (s *Store[T]) Refresh(ctx context.Context) Snapshot[T] {
	return s.Load(ctx)
}

func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Teardown stops the timer and the subscription. In-flight loads finish but are not published.
func (s *Store[T]) Teardown() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	if s.cron != nil {
		s.cron.Stop()
	}
	if s.cancelSub != nil {
		s.cancelSub()
	}
	s.wg.Wait()
}

// announce tells Reloaded that the snapshot for topic is current
func (s *Store[T]) announce(topic notify.Topic) {
	if s.cfg.Reloaded == nil || s.isStopped() {
		return
	}
	if err := s.cfg.Reloaded.Publish(context.Background(), notify.NewSignal(topic)); err != nil {
		log.Warn().Err(err).Str("store", s.cfg.Name).Msg("Failed to announce reload")
	}
}

func (s *Store[T]) isStopped() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stopped
}
