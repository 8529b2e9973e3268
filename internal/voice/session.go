// Package voice manages the avatar/voice session: a small status machine
// (idle, connecting, connected) around a pluggable dialer, with a bounded
// handshake and transcript forwarding into the desk session.
package voice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Status is the session's connection state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusConnecting Status = "connecting"
	StatusConnected  Status = "connected"
)

// ErrConnectTimeout reports a handshake that outran its deadline.
var ErrConnectTimeout = errors.New("voice connect timed out")

// ErrBusy reports a Connect while a session is already up or in progress.
var ErrBusy = errors.New("voice session already active")

// Dialer performs the avatar handshake and teardown. Implementations wrap
// the streaming SDK and must honor ctx cancellation in Dial.
type Dialer interface {
	Dial(ctx context.Context) error
	Hangup() error
}

// Session is the voice/avatar connection. Callbacks fire on status changes
// and on transcript utterances; both may be nil.
type Session struct {
	dialer      Dialer
	timeout     time.Duration
	onStatus    func(status Status, detail string)
	onUtterance func(text string, final bool)

	mu     sync.Mutex
	status Status
}

// NewSession creates an idle Session. A non-positive timeout falls back to
// 15 seconds, the handshake bound the product has always shipped with.
func NewSession(dialer Dialer, timeout time.Duration, onStatus func(Status, string), onUtterance func(string, bool)) *Session {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Session{
		dialer:      dialer,
		timeout:     timeout,
		onStatus:    onStatus,
		onUtterance: onUtterance,
		status:      StatusIdle,
	}
}

// Status returns the current connection state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Connect performs the handshake. On any failure, including timeout, the
// session rolls back to idle.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	if s.status != StatusIdle {
		s.mu.Unlock()
		return ErrBusy
	}
	s.status = StatusConnecting
	s.mu.Unlock()
	s.notify(StatusConnecting, "")

	dialCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.dialer.Dial(dialCtx); err != nil {
		if errors.Is(dialCtx.Err(), context.DeadlineExceeded) {
			err = ErrConnectTimeout
		}
		s.setStatus(StatusIdle)
		s.notify(StatusIdle, err.Error())
		return fmt.Errorf("connecting voice session: %w", err)
	}

	// Close may have run while the handshake was in flight. The session is
	// already idle and notified; tear the fresh dial down instead of
	// promoting it.
	s.mu.Lock()
	if s.status != StatusConnecting {
		s.mu.Unlock()
		if err := s.dialer.Hangup(); err != nil {
			return fmt.Errorf("closing voice session: %w", err)
		}
		return nil
	}
	s.status = StatusConnected
	s.mu.Unlock()

	s.notify(StatusConnected, "")
	return nil
}

// Close hangs up and returns the session to idle. Safe to call when already
// idle.
func (s *Session) Close() error {
	s.mu.Lock()
	wasIdle := s.status == StatusIdle
	s.status = StatusIdle
	s.mu.Unlock()

	if wasIdle {
		return nil
	}
	s.notify(StatusIdle, "")
	if err := s.dialer.Hangup(); err != nil {
		return fmt.Errorf("closing voice session: %w", err)
	}
	return nil
}

// Feed forwards an utterance from the stream. Utterances arriving outside a
// connected session are dropped.
func (s *Session) Feed(text string, final bool) {
	if s.Status() != StatusConnected {
		return
	}
	if s.onUtterance != nil {
		s.onUtterance(text, final)
	}
}

func (s *Session) setStatus(status Status) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

func (s *Session) notify(status Status, detail string) {
	if s.onStatus != nil {
		s.onStatus(status, detail)
	}
}
