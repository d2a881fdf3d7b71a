package notify

import (
	"context"
	"sync"
	"time"
)

// Topic names a kind of change
type Topic string

const (
	TopicSettingsChanged Topic = "settings-changed"
	TopicFooterChanged   Topic = "footer-changed"
	TopicPricingChanged  Topic = "pricing-changed"

	// TopicAll subscribes to every topic
	TopicAll Topic = ""
)

// Signal tells subscribers that something changed and should be refetched.
// It never carries the changed data.
type Signal struct {
	Topic Topic `json:"topic"`
	At    int64 `json:"at"` // unix milliseconds
}

// NewSignal stamps a signal with the current time
func NewSignal(topic Topic) Signal {
	return Signal{Topic: topic, At: time.Now().UnixMilli()}
}

// Notifier is the publish/subscribe port used by services, stores and the signal feed
type Notifier interface {
	Publish(ctx context.Context, sig Signal) error
	// Subscribe returns a channel of signals for topic and a cancel func that closes it.
	Subscribe(topic Topic) (<-chan Signal, func())
}

// subscriber queues signals without bound so a slow consumer still sees every one
type subscriber struct {
	topic Topic
	out   chan Signal
	wake  chan struct{}
	done  chan struct{}

	mu    sync.Mutex
	queue []Signal
}

func newSubscriber(topic Topic) *subscriber {
	s := &subscriber{
		topic: topic,
		out:   make(chan Signal),
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *subscriber) push(sig Signal) {
	s.mu.Lock()
	s.queue = append(s.queue, sig)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// run hands queued signals to out in publish order until the subscription is cancelled
func (s *subscriber) run() {
	defer close(s.out)
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.mu.Unlock()
			select {
			case <-s.wake:
				continue
			case <-s.done:
				return
			}
		}
		sig := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		select {
		case s.out <- sig:
		case <-s.done:
			return
		}
	}
}

// LocalBus delivers signals to subscribers of this process
type LocalBus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]*subscriber
}

// NewLocalBus creates an empty in-process bus
func NewLocalBus() *LocalBus {
	return &LocalBus{subs: make(map[int]*subscriber)}
}

// Publish never blocks and never drops: each matching subscriber queues the signal.
func (b *LocalBus) Publish(_ context.Context, sig Signal) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		if sub.topic != TopicAll && sub.topic != sig.Topic {
			continue
		}
		sub.push(sig)
	}
	return nil
}

// Subscribe returns the signals for topic. Signals still queued at cancel are discarded.
func (b *LocalBus) Subscribe(topic Topic) (<-chan Signal, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	sub := newSubscriber(topic)
	b.subs[id] = sub

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(sub.done)
		})
	}
	return sub.out, cancel
}

// Pending returns the number of signals queued but not yet received, over all subscribers
func (b *LocalBus) Pending() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for _, sub := range b.subs {
		n += sub.pending()
	}
	return n
}

// SubscriberCount returns the number of live subscriptions
func (b *LocalBus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
