package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Signal) Signal {
	t.Helper()
	select {
	case sig := <-ch:
		return sig
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for signal")
		return Signal{}
	}
}

func assertNoSignal(t *testing.T, ch <-chan Signal) {
	t.Helper()
	select {
	case sig := <-ch:
		t.Fatalf("unexpected signal %+v", sig)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestLocalBus_DeliversByTopic(t *testing.T) {
	bus := NewLocalBus()
	settings, cancelSettings := bus.Subscribe(TopicSettingsChanged)
	defer cancelSettings()
	footer, cancelFooter := bus.Subscribe(TopicFooterChanged)
	defer cancelFooter()
	all, cancelAll := bus.Subscribe(TopicAll)
	defer cancelAll()

	sig := NewSignal(TopicSettingsChanged)
	require.NoError(t, bus.Publish(context.Background(), sig))

	assert.Equal(t, sig, receive(t, settings))
	assert.Equal(t, sig, receive(t, all))
	assertNoSignal(t, footer)
}

func TestLocalBus_OneDeliveryPerPublish(t *testing.T) {
	bus := NewLocalBus()
	ch, cancel := bus.Subscribe(TopicPricingChanged)
	defer cancel()

	for i := 0; i < 3; i++ {
		require.NoError(t, bus.Publish(context.Background(), NewSignal(TopicPricingChanged)))
	}

	for i := 0; i < 3; i++ {
		receive(t, ch)
	}
	assertNoSignal(t, ch)
}

func TestLocalBus_CancelClosesChannel(t *testing.T) {
	bus := NewLocalBus()
	ch, cancel := bus.Subscribe(TopicSettingsChanged)
	assert.Equal(t, 1, bus.SubscriberCount())

	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, 0, bus.SubscriberCount())
	assert.NoError(t, bus.Publish(context.Background(), NewSignal(TopicSettingsChanged)))
}

func TestLocalBus_SlowSubscriberGetsEverySignal(t *testing.T) {
	bus := NewLocalBus()
	ch, cancel := bus.Subscribe(TopicSettingsChanged)
	defer cancel()

	const burst = 100
	done := make(chan struct{})
	go func() {
		for i := 0; i < burst; i++ {
			_ = bus.Publish(context.Background(), Signal{Topic: TopicSettingsChanged, At: int64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a subscriber that is not reading")
	}
	// the delivery goroutine may already hold the first signal
	assert.GreaterOrEqual(t, bus.Pending(), burst-1)

	for i := 0; i < burst; i++ {
		assert.Equal(t, int64(i), receive(t, ch).At)
	}
	assertNoSignal(t, ch)
	assert.Zero(t, bus.Pending())
}
