package agent

import (
	"sync"
	"time"

	"github.com/finhub-dev/finhub/internal/model"
)

// Clock abstracts timer scheduling so event sequences are deterministic
// under test.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// NewClock returns the wall clock.
func NewClock() Clock { return realClock{} }

// Sequencer reveals a run's pending activity events one at a time: an
// ordered event list and a single current index, advanced on clock ticks.
// Stop cancels the remainder of the sequence at any point, which is how a
// closed desk panel abandons an in-flight animation.
type Sequencer struct {
	clock    Clock
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
}

// NewSequencer creates a Sequencer that spaces events by interval.
func NewSequencer(clock Clock, interval time.Duration) *Sequencer {
	return &Sequencer{clock: clock, interval: interval}
}

// Play emits events in order through emit, one per tick. Starting a new
// sequence cancels any previous one. The returned channel closes when the
// sequence finishes or is stopped.
func (s *Sequencer) Play(events []model.ActivityEvent, emit func(model.ActivityEvent)) <-chan struct{} {
	s.Stop()

	stop := make(chan struct{})
	s.mu.Lock()
	s.stop = stop
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for next := 0; next < len(events); next++ {
			select {
			case <-s.clock.After(s.interval):
				emit(events[next])
			case <-stop:
				return
			}
		}
	}()
	return done
}

// Stop cancels the current sequence, if any. Safe to call repeatedly.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}
