package eventbus

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAndReceive(t *testing.T) {
	bus := New()

	require.NoError(t, bus.SendToCore(SendIntentEvent{Intent: "show pnl"}))
	event := <-bus.UIToCore()
	intent, ok := event.(SendIntentEvent)
	require.True(t, ok)
	assert.Equal(t, "show pnl", intent.Intent)

	require.NoError(t, bus.SendToUI(StateUpdateEvent{Processing: true}))
	core := <-bus.CoreToUI()
	update, ok := core.(StateUpdateEvent)
	require.True(t, ok)
	assert.True(t, update.Processing)
}

func TestFullChannelDoesNotBlock(t *testing.T) {
	bus := New()
	var failures []BusError
	bus.SetErrorCallback(func(e BusError) { failures = append(failures, e) })

	for i := 0; i < 64; i++ {
		require.NoError(t, bus.SendToCore(SendIntentEvent{}))
	}
	err := bus.SendToCore(SendIntentEvent{})
	require.Error(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "SendToCore", failures[0].Operation)
}

func TestConcurrentSends(t *testing.T) {
	bus := New()

	// The sequencer emit callback, the run goroutine and the voice status
	// callback all push UI updates concurrently; the breaker must stay
	// race-free under that load.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range bus.CoreToUI() {
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = bus.SendToUI(StateUpdateEvent{Processing: true})
			}
		}()
	}
	wg.Wait()

	bus.Close()
	<-done
}

func TestBreakerTripsAfterRepeatedFailures(t *testing.T) {
	bus := New()

	// Fill the channel, then fail enough times to trip the breaker.
	for i := 0; i < 64; i++ {
		require.NoError(t, bus.SendToCore(SendIntentEvent{}))
	}
	for i := 0; i < 5; i++ {
		assert.Error(t, bus.SendToCore(SendIntentEvent{}))
	}

	// Draining no longer helps until the breaker resets.
	<-bus.UIToCore()
	err := bus.SendToCore(SendIntentEvent{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "breaker open")
}
