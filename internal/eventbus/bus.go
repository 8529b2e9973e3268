// Package eventbus carries events between the desk UI and the agent core
// over buffered channels. Sends never block: a full channel is reported as
// an error, and repeated failures trip a breaker so a wedged side cannot
// spin the other.
package eventbus

import (
	"errors"
	"sync"
	"time"

	"github.com/finhub-dev/finhub/internal/model"
)

// UIEvent is an event sent from the UI to the agent core.
type UIEvent interface {
	UIEvent()
}

// CoreEvent is an event sent from the agent core to the UI.
type CoreEvent interface {
	CoreEvent()
}

// SendIntentEvent - the user submitted an intent from the desk panel.
type SendIntentEvent struct {
	Intent string
}

func (e SendIntentEvent) UIEvent() {}

// StopRunEvent - the user stopped the in-flight run (panel closed or Esc).
type StopRunEvent struct {
	RunID string
}

func (e StopRunEvent) UIEvent() {}

// ToggleVoiceEvent - the user toggled the voice/avatar session.
type ToggleVoiceEvent struct{}

func (e ToggleVoiceEvent) UIEvent() {}

// StateUpdateEvent - the core pushes its current transcript and run state.
type StateUpdateEvent struct {
	Messages   []model.Message
	Run        *model.Run
	Processing bool
	Err        error
}

func (e StateUpdateEvent) CoreEvent() {}

// VoiceStatusEvent - the voice session changed status.
type VoiceStatusEvent struct {
	Status string // idle, connecting, connected
	Detail string
}

func (e VoiceStatusEvent) CoreEvent() {}

// BusError describes a failed send.
type BusError struct {
	Operation string
	Err       error
	At        time.Time
}

func (e BusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

// breaker trips after consecutive send failures and resets after a quiet
// period. Both bus directions share one breaker, and sends arrive from
// several goroutines, so its counters are mutex-guarded.
type breaker struct {
	maxFailures int
	resetAfter  time.Duration

	mu          sync.Mutex
	failures    int
	lastFailure time.Time
	open        bool
}

func (b *breaker) tripped() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.open && time.Since(b.lastFailure) > b.resetAfter {
		b.open = false
		b.failures = 0
	}
	return b.open
}

func (b *breaker) success() {
	b.mu.Lock()
	b.failures = 0
	b.open = false
	b.mu.Unlock()
}

func (b *breaker) failure() {
	b.mu.Lock()
	b.failures++
	b.lastFailure = time.Now()
	if b.failures >= b.maxFailures {
		b.open = true
	}
	b.mu.Unlock()
}

// Bus is the two-way channel pair between UI and core.
type Bus struct {
	uiToCore chan UIEvent
	coreToUI chan CoreEvent
	onError  func(BusError)
	breaker  *breaker
}

// New creates a Bus with default buffer sizes.
func New() *Bus {
	return &Bus{
		uiToCore: make(chan UIEvent, 64),
		coreToUI: make(chan CoreEvent, 64),
		breaker:  &breaker{maxFailures: 5, resetAfter: 30 * time.Second},
	}
}

// SetErrorCallback registers a handler for send failures.
func (b *Bus) SetErrorCallback(fn func(BusError)) {
	b.onError = fn
}

// SendToCore delivers a UI event to the core without blocking.
func (b *Bus) SendToCore(event UIEvent) error {
	if b.breaker.tripped() {
		err := errors.New("event bus breaker open")
		b.report("SendToCore", err)
		return err
	}

	select {
	case b.uiToCore <- event:
		b.breaker.success()
		return nil
	default:
		err := errors.New("ui-to-core channel full")
		b.report("SendToCore", err)
		return err
	}
}

// SendToUI delivers a core event to the UI without blocking.
func (b *Bus) SendToUI(event CoreEvent) error {
	if b.breaker.tripped() {
		err := errors.New("event bus breaker open")
		b.report("SendToUI", err)
		return err
	}

	select {
	case b.coreToUI <- event:
		b.breaker.success()
		return nil
	default:
		err := errors.New("core-to-ui channel full")
		b.report("SendToUI", err)
		return err
	}
}

// UIToCore is the core's receive side.
func (b *Bus) UIToCore() <-chan UIEvent {
	return b.uiToCore
}

// CoreToUI is the UI's receive side.
func (b *Bus) CoreToUI() <-chan CoreEvent {
	return b.coreToUI
}

// Close closes both channels. Only the owner of the bus may call this, after
// both sides have stopped sending.
func (b *Bus) Close() {
	close(b.uiToCore)
	close(b.coreToUI)
}

func (b *Bus) report(op string, err error) {
	b.breaker.failure()
	if b.onError != nil {
		b.onError(BusError{Operation: op, Err: err, At: time.Now()})
	}
}
